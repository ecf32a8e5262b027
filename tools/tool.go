package tools

import (
	"context"

	"github.com/reusee/mend/dialogs"
	"github.com/reusee/mend/generators"
)

// Tool is one capability the model can invoke. Decl is the static
// descriptor sent to the model; Validate holds the domain checks that go
// beyond what the descriptor can express; Execute performs the action
// against the run environment.
type Tool interface {
	Decl() generators.FuncDecl
	Validate(env *Env, args map[string]any) error
	Execute(ctx context.Context, env *Env, args map[string]any) (*dialogs.Outcome, error)
}
