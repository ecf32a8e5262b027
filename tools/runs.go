package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/mend/generators"
	"github.com/reusee/mend/sandboxes"
)

func profileParam(profiles sandboxes.Profiles, description string) generators.ParamDecl {
	return generators.ParamDecl{
		Name: "profile",
		Type: "string",
		Description: fmt.Sprintf("%s Valid profiles are: %s.",
			description, strings.Join(profiles.Names(), ", "),
		),
		Required: true,
		Enum:     profiles.Names(),
	}
}

func validateProfile(tool string, profiles sandboxes.Profiles, args map[string]any) error {
	profile, _ := args["profile"].(string)
	if _, ok := profiles[profile]; !ok {
		return invalid(tool,
			"The profile '%s' is not valid. Valid profiles are: %s",
			profile, strings.Join(profiles.Names(), ", "),
		)
	}
	return nil
}

// timeoutOutcome converts a sandbox timeout into conversational
// feedback. Any other run error is infrastructure failure and
// propagates.
func timeoutOutcome(prefix string, err error) (string, bool) {
	if !errors.Is(err, sandboxes.ErrTimeout) {
		return "", false
	}
	return fmt.Sprintf("%s\nThe command did not finish: %v.", prefix, err), true
}

func summarizeRun(prefix string, result *sandboxes.Result) string {
	switch {

	case result.Stdout != "" && result.Stderr != "":
		return prefix

	case !result.OK() || result.Stderr != "":
		return prefix + "\nThe command ran with errors."

	case result.Stdout != "":
		return prefix + "\nThe command ran successfully with no errors."

	default:
		return prefix + "\n" + sandboxes.SilentSuccess
	}
}
