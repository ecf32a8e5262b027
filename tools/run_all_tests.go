package tools

import (
	"context"
	"fmt"

	"github.com/reusee/mend/dialogs"
	"github.com/reusee/mend/generators"
	"github.com/reusee/mend/sandboxes"
)

type RunAllTestsTool struct {
	profiles sandboxes.Profiles
	run      sandboxes.Run
}

var _ Tool = RunAllTestsTool{}

func (t RunAllTestsTool) Decl() generators.FuncDecl {
	return generators.FuncDecl{
		Name:        "run_all_tests",
		Description: "Run all tests in the codebase.",
		Params: []generators.ParamDecl{
			profileParam(t.profiles,
				"The name of the execution profile to run the tests in. "+
					"Pick the profile matching the runtime the codebase is written for.",
			),
		},
	}
}

func (t RunAllTestsTool) Validate(env *Env, args map[string]any) error {
	return validateProfile("run_all_tests", t.profiles, args)
}

func (t RunAllTestsTool) Execute(ctx context.Context, env *Env, args map[string]any) (*dialogs.Outcome, error) {
	profile := args["profile"].(string)

	const command = "pip install --no-python-version-warning --disable-pip-version-check --user -q . && pytest"

	prefix := fmt.Sprintf("Ran all tests in the codebase in the '%s' profile.", profile)

	result, err := t.run(ctx, env.Codebase, sandboxes.Invocation{
		Profile: profile,
		Command: command,
		Mount:   sandboxes.MountReadWrite,
	})
	if err != nil {
		if description, ok := timeoutOutcome(prefix, err); ok {
			return &dialogs.Outcome{
				Description: description,
				Summary:     description,
			}, nil
		}
		return nil, err
	}

	var description, summary string
	if result.OK() {
		summary = prefix + "\nAll tests ran successfully with no errors."
		description = summary
	} else {
		summary = prefix + "\nThere were errors when running the tests."
		description = summary
		if result.Stdout != "" {
			description += "\nstdout:\n```\n" + result.Stdout + "\n```"
		}
		if result.Stderr != "" {
			description += "\nstderr:\n```\n" + result.Stderr + "\n```"
		}
	}

	return &dialogs.Outcome{
		Description:     description,
		Summary:         summary,
		TerminalOutput:  true,
		TerminalContent: result.TerminalContent(),
	}, nil
}
