package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/mend/dialogs"
	"github.com/reusee/mend/generators"
	"github.com/reusee/mend/sandboxes"
)

type RunScriptTool struct {
	profiles sandboxes.Profiles
	run      sandboxes.Run
}

var _ Tool = RunScriptTool{}

func (t RunScriptTool) Decl() generators.FuncDecl {
	return generators.FuncDecl{
		Name:        "run_script",
		Description: "Run a script from the codebase.",
		Params: []generators.ParamDecl{
			{
				Name:        "script_path",
				Type:        "string",
				Description: "The full path to the script to run. e.g., 'data/processing.py'",
				Required:    true,
			},
			{
				Name: "script_arguments",
				Type: "string",
				Description: "The arguments to pass to the script when running it, if any. " +
					"These should be formatted as a string, e.g., '--arg1 value1 --arg2 value2', " +
					"as they would be passed on the command line. " +
					"This field is not required if the script does not take any arguments, " +
					"or if no arguments are to be passed.",
				Required: false,
			},
			profileParam(t.profiles,
				"The name of the execution profile to run the script in. "+
					"Pick the profile matching the runtime the script is written for.",
			),
		},
	}
}

func (t RunScriptTool) Validate(env *Env, args map[string]any) error {
	scriptPath, _ := args["script_path"].(string)
	if !env.Codebase.Contains(scriptPath) {
		return invalid("run_script",
			"The file '%s' does not exist in the codebase. The files in the codebase are:\n%s",
			scriptPath, env.Codebase.FormattedPaths(),
		)
	}
	return validateProfile("run_script", t.profiles, args)
}

func (t RunScriptTool) Execute(ctx context.Context, env *Env, args map[string]any) (*dialogs.Outcome, error) {
	scriptPath := args["script_path"].(string)
	scriptArguments, _ := args["script_arguments"].(string)
	profile := args["profile"].(string)

	command := strings.TrimSpace(fmt.Sprintf(
		"pip install --no-python-version-warning --disable-pip-version-check --user -q . && python -B %s %s",
		scriptPath, scriptArguments,
	))

	prefix := fmt.Sprintf("Ran the script '%s' in the '%s' profile.", scriptPath, profile)

	result, err := t.run(ctx, env.Codebase, sandboxes.Invocation{
		Profile: profile,
		Command: command,
		Mount:   sandboxes.MountReadOnly,
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

	return &dialogs.Outcome{
		Description:     prefix + "\n" + result.Describe(),
		Summary:         summarizeRun(prefix, result),
		TerminalOutput:  true,
		TerminalContent: result.TerminalContent(),
	}, nil
}
