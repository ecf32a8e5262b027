package lints

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/logs"
)

// Lint runs static analysis over a code string and returns the
// violations, one formatted string per violation.
type Lint func(ctx context.Context, code string) ([]string, error)

type LintCommand []string

func (Module) LintCommand(
	loader configs.Loader,
) LintCommand {
	command := configs.First[LintCommand](loader, "lint_command")
	if len(command) == 0 {
		command = LintCommand{"ruff", "check", "--output-format=json"}
	}
	return command
}

type violation struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Location struct {
		Row    int `json:"row"`
		Column int `json:"column"`
	} `json:"location"`
}

func (Module) Lint(
	command LintCommand,
	logger logs.Logger,
) Lint {
	return func(ctx context.Context, code string) ([]string, error) {
		dir, err := os.MkdirTemp("", "mend-lint-")
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "code.py")
		if err := os.WriteFile(path, []byte(code), 0644); err != nil {
			return nil, err
		}

		args := append(append([]string{}, command[1:]...), path)
		cmd := exec.CommandContext(ctx, command[0], args...)
		stdout := new(bytes.Buffer)
		cmd.Stdout = stdout
		// the analyzer exits non-zero when it finds violations, so the
		// exit status is ignored and stdout decides
		if err := cmd.Run(); err != nil {
			if _, ok := err.(*exec.ExitError); !ok {
				return nil, err
			}
		}

		if stdout.Len() == 0 {
			return nil, nil
		}
		var violations []violation
		if err := json.Unmarshal(stdout.Bytes(), &violations); err != nil {
			return nil, fmt.Errorf("bad analyzer output: %w", err)
		}

		var formatted []string
		for _, v := range violations {
			formatted = append(formatted, fmt.Sprintf(
				"%d:%d - %s: %s",
				v.Location.Row, v.Location.Column, v.Code, v.Message,
			))
		}
		logger.DebugContext(ctx, "lint",
			"violations", len(formatted),
		)
		return formatted, nil
	}
}
