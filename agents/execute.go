package agents

import (
	"context"
	"path/filepath"

	"github.com/reusee/mend/codebases"
	"github.com/reusee/mend/debugs"
	"github.com/reusee/mend/dialogs"
	"github.com/reusee/mend/generators"
	"github.com/reusee/mend/logs"
	"github.com/reusee/mend/prompts"
	"github.com/reusee/mend/tools"
	"github.com/reusee/mend/trajectories"
)

// Execute performs one full agent run over the codebase at root. Both
// durable artifacts, the codebase mirror and the trajectory, are
// written on every terminal path, including failures.
type Execute func(ctx context.Context, root string, task string) error

func (Module) Execute(
	open codebases.Open,
	getGenerator generators.GetGenerator,
	model ModelName,
	registry *tools.Registry,
	window Window,
	maxSteps MaxSteps,
	outputDir OutputDir,
	systemPrompt prompts.SystemPrompt,
	taskPrompt prompts.TaskPrompt,
	nextStep prompts.NextStepPrompt,
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
) Execute {
	return func(ctx context.Context, root string, task string) error {

		generator, err := getGenerator(string(model))
		if err != nil {
			return err
		}

		codebase, err := open(root)
		if err != nil {
			return err
		}

		run := &Run{
			ctx:       ctx,
			generator: generator,
			registry:  registry,
			log: dialogs.NewLog(
				taskPrompt.Render(task, codebase.FormattedPaths()),
			),
			trajectory: trajectories.New(),
			env: &tools.Env{
				Codebase: codebase,
			},
			systemPrompt: string(systemPrompt),
			instruction:  string(nextStep),
			window:       int(window),
			maxSteps:     int(maxSteps),
			logger:       logger,
			newSpan:      newSpan,
			tap:          tap,
		}

		runErr := run.loop()

		if err := run.flush(string(outputDir)); err != nil {
			if runErr == nil {
				runErr = err
			} else {
				logger.ErrorContext(ctx, "flush failed",
					"error", err,
				)
			}
		}

		logger.InfoContext(ctx, "run finished",
			"steps", run.stepNumber,
			"completed", run.env.Completed,
			"error", runErr,
		)

		return runErr
	}
}

func (r *Run) flush(outputDir string) error {
	if err := r.env.Codebase.WriteTo(filepath.Join(outputDir, "codebase")); err != nil {
		return err
	}
	return r.trajectory.WriteFile(outputDir)
}
