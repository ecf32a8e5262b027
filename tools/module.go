package tools

import (
	"fmt"

	"github.com/reusee/dscope"

	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/lints"
	"github.com/reusee/mend/logs"
	"github.com/reusee/mend/sandboxes"
)

type Module struct {
	dscope.Module
	Configs   configs.Module
	Lints     lints.Module
	Logs      logs.Module
	Sandboxes sandboxes.Module
}

// EnabledTools is the active capability subset. Empty means all.
type EnabledTools []string

func (EnabledTools) MendConfigurable() {
}

var _ configs.Configurable = EnabledTools{}

func (Module) EnabledTools(
	loader configs.Loader,
) EnabledTools {
	enabled := configs.First[EnabledTools](loader, "tools")
	if len(enabled) == 0 {
		enabled = EnabledTools{
			"complete_task",
			"create_file",
			"edit_file",
			"open_file",
			"run_all_tests",
			"run_script",
		}
	}
	return enabled
}

func (Module) Registry(
	enabled EnabledTools,
	profiles sandboxes.Profiles,
	run sandboxes.Run,
	lint lints.Lint,
	logger logs.Logger,
) *Registry {

	constructors := map[string]func() Tool{
		"open_file": func() Tool {
			return OpenFileTool{}
		},
		"edit_file": func() Tool {
			return EditFileTool{
				lint:   lint,
				logger: logger,
			}
		},
		"create_file": func() Tool {
			return CreateFileTool{
				lint:   lint,
				logger: logger,
			}
		},
		"run_script": func() Tool {
			return RunScriptTool{
				profiles: profiles,
				run:      run,
			}
		},
		"run_all_tests": func() Tool {
			return RunAllTestsTool{
				profiles: profiles,
				run:      run,
			}
		},
		"complete_task": func() Tool {
			return CompleteTaskTool{}
		},
	}

	registry := &Registry{
		tools:  make(map[string]Tool, len(enabled)),
		logger: logger,
	}
	for _, name := range enabled {
		constructor, ok := constructors[name]
		if !ok {
			// a configuration defect, not model feedback
			panic(fmt.Errorf("%w in configuration: %s", ErrUnknownTool, name))
		}
		registry.tools[name] = constructor()
	}
	return registry
}
