package tools

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/mend/dialogs"
	"github.com/reusee/mend/generators"
	"github.com/reusee/mend/logs"
)

// Registry holds the enabled capability set, keyed by tool name. One
// instance is constructed at process start and passed into the step
// loop; nothing registers after construction.
type Registry struct {
	tools  map[string]Tool
	logger logs.Logger
}

// Decls returns the descriptors of all enabled tools in name order, for
// presentation to the model.
func (r *Registry) Decls() []generators.FuncDecl {
	decls := make([]generators.FuncDecl, 0, len(r.tools))
	for _, name := range slices.Sorted(maps.Keys(r.tools)) {
		decls = append(decls, r.tools[name].Decl())
	}
	return decls
}

func (r *Registry) NumTools() int {
	return len(r.tools)
}

// Dispatch validates and executes one proposal. Argument failures come
// back as a normal outcome carrying the validation message. An unknown
// tool name is fatal and wraps ErrUnknownTool.
func (r *Registry) Dispatch(
	ctx context.Context,
	env *Env,
	proposal dialogs.Proposal,
) (*dialogs.Outcome, error) {

	tool, ok := r.tools[proposal.ToolName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, proposal.ToolName)
	}

	if err := r.validate(ctx, env, tool, proposal.Arguments); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return &dialogs.Outcome{
				CallID:      proposal.CallID,
				Description: validationErr.Message,
				Summary:     validationErr.Message,
			}, nil
		}
		return nil, err
	}

	outcome, err := tool.Execute(ctx, env, proposal.Arguments)
	if err != nil {
		return nil, err
	}
	outcome.CallID = proposal.CallID
	return outcome, nil
}

// validate runs the four stages in order: required parameters present,
// per-tool domain checks, declared-type conformance, then a warning for
// any argument the tool does not declare.
func (r *Registry) validate(
	ctx context.Context,
	env *Env,
	tool Tool,
	args map[string]any,
) error {
	decl := tool.Decl()

	for _, param := range decl.Params {
		if !param.Required {
			continue
		}
		if _, ok := args[param.Name]; !ok {
			return invalid(decl.Name,
				"The '%s' tool is missing the required argument: %s",
				decl.Name, param.Name,
			)
		}
	}

	if err := tool.Validate(env, args); err != nil {
		return err
	}

	for _, param := range decl.Params {
		value, ok := args[param.Name]
		if !ok {
			continue
		}
		if err := checkType(decl.Name, param, value); err != nil {
			return err
		}
	}

	declared := make(map[string]bool, len(decl.Params))
	for _, param := range decl.Params {
		declared[param.Name] = true
	}
	for _, name := range slices.Sorted(maps.Keys(args)) {
		if !declared[name] {
			r.logger.WarnContext(ctx, "unused argument",
				"tool", decl.Name,
				"argument", name,
			)
		}
	}

	return nil
}

func checkType(tool string, param generators.ParamDecl, value any) error {
	switch param.Type {

	case "string":
		str, ok := value.(string)
		if !ok {
			return invalid(tool,
				"Invalid argument type for %s. Expected string, got %T.",
				param.Name, value,
			)
		}
		if len(param.Enum) > 0 && !slices.Contains(param.Enum, str) {
			return invalid(tool,
				"Invalid value %q for %s. Valid values are: %v.",
				str, param.Name, param.Enum,
			)
		}

	case "number", "integer":
		// arguments arrive JSON-decoded, so all numbers are float64
		if _, ok := value.(float64); !ok {
			return invalid(tool,
				"Invalid argument type for %s. Expected %s, got %T.",
				param.Name, param.Type, value,
			)
		}

	case "boolean":
		if _, ok := value.(bool); !ok {
			return invalid(tool,
				"Invalid argument type for %s. Expected boolean, got %T.",
				param.Name, value,
			)
		}

	}
	return nil
}
