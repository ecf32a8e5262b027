package agents

import (
	"context"

	"github.com/reusee/mend/cmds"
	"github.com/reusee/mend/dialogs"
	"github.com/reusee/mend/generators"
	"github.com/reusee/mend/logs"
	"github.com/reusee/mend/procs"
	"github.com/reusee/mend/trajectories"
)

var tapDispatch = cmds.Switch("-tap-dispatch")

// awaitProposal asks the model for the next step. It is also the state
// that decides whether the run is over: the completion flag or the step
// bound end it.
type awaitProposal struct{}

var _ procs.Proc[*Run] = awaitProposal{}

func (awaitProposal) Run(run *Run) (procs.Proc[*Run], error) {
	if run.env.Completed {
		return nil, nil
	}
	if run.maxSteps > 0 && run.stepNumber >= run.maxSteps {
		run.logger.InfoContext(run.ctx, "step bound reached",
			"steps", run.stepNumber,
		)
		return nil, nil
	}

	run.stepNumber++
	ctx, _ := run.newSpan(run.ctx, "")

	response, err := run.generator.Generate(ctx, generators.Request{
		System:   run.systemPrompt,
		Contents: run.log.Render(run.window),
		Funcs:    run.registry.Decls(),
	})
	if err != nil {
		return nil, logs.WrapSpan(ctx, err)
	}

	calls := response.Content.FuncCalls()
	if len(calls) != 1 || response.StopReason != "tool_use" {
		return nil, logs.WrapSpan(ctx, &ProtocolError{
			StopReason: response.StopReason,
			NumCalls:   len(calls),
		})
	}
	call := calls[0]

	return dispatching{
		ctx: ctx,
		proposal: dialogs.Proposal{
			Rationale: response.Content.JoinedText(),
			CallID:    call.ID,
			ToolName:  call.Name,
			Arguments: call.Args,
		},
	}, nil
}

type dispatching struct {
	ctx      context.Context
	proposal dialogs.Proposal
}

var _ procs.Proc[*Run] = dispatching{}

func (d dispatching) Run(run *Run) (procs.Proc[*Run], error) {
	if *tapDispatch {
		run.tap(d.ctx, "before dispatch", map[string]any{
			"step":      run.stepNumber,
			"tool":      d.proposal.ToolName,
			"arguments": d.proposal.Arguments,
		})
	}

	outcome, err := run.registry.Dispatch(d.ctx, run.env, d.proposal)
	if err != nil {
		return nil, logs.WrapSpan(d.ctx, err)
	}

	// no further step is asked for once the run completes
	if !run.env.Completed {
		outcome.Instruction = run.instruction
	}

	return recording{
		ctx:      d.ctx,
		proposal: d.proposal,
		outcome:  outcome,
	}, nil
}

type recording struct {
	ctx      context.Context
	proposal dialogs.Proposal
	outcome  *dialogs.Outcome
}

var _ procs.Proc[*Run] = recording{}

func (r recording) Run(run *Run) (procs.Proc[*Run], error) {
	if err := run.log.AppendExchange(&r.proposal, r.outcome); err != nil {
		return nil, logs.WrapSpan(r.ctx, err)
	}

	run.trajectory.Append(trajectories.Record{
		StepNumber:        run.stepNumber,
		Thought:           r.proposal.Rationale,
		ToolName:          r.proposal.ToolName,
		ToolArguments:     r.proposal.Arguments,
		TerminalOutput:    r.outcome.TerminalOutput,
		TerminalContent:   r.outcome.TerminalContent,
		FileViewerChanged: r.outcome.ViewerChanged,
		OpenFileName:      run.env.OpenFile,
		FileViewerContent: r.outcome.ViewerContent,
		ReviewComment:     r.outcome.ReviewComment,
	})

	run.logger.InfoContext(r.ctx, "step",
		"step", run.stepNumber,
		"tool", r.proposal.ToolName,
		"completed", run.env.Completed,
	)

	if *tapDispatch {
		run.tap(r.ctx, "after outcome", map[string]any{
			"step":    run.stepNumber,
			"summary": r.outcome.Summary,
		})
	}

	return awaitProposal{}, nil
}
