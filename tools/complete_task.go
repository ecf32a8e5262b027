package tools

import (
	"context"

	"github.com/reusee/mend/dialogs"
	"github.com/reusee/mend/generators"
)

type CompleteTaskTool struct{}

var _ Tool = CompleteTaskTool{}

func (CompleteTaskTool) Decl() generators.FuncDecl {
	return generators.FuncDecl{
		Name:        "complete_task",
		Description: "Declare the task you are working on as complete.",
	}
}

func (CompleteTaskTool) Validate(env *Env, args map[string]any) error {
	return nil
}

func (CompleteTaskTool) Execute(ctx context.Context, env *Env, args map[string]any) (*dialogs.Outcome, error) {
	env.Completed = true
	return &dialogs.Outcome{
		Description: "Task completed.",
		Summary:     "Task completed.",
	}, nil
}
