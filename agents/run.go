package agents

import (
	"context"

	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/debugs"
	"github.com/reusee/mend/dialogs"
	"github.com/reusee/mend/generators"
	"github.com/reusee/mend/logs"
	"github.com/reusee/mend/procs"
	"github.com/reusee/mend/tools"
	"github.com/reusee/mend/trajectories"
	"github.com/reusee/mend/vars"
)

// Run is the state of one agent run: the dialog, the trajectory, the
// run environment, and the step counter. It is owned by the step loop
// and lives until the durable flush.
type Run struct {
	ctx        context.Context
	generator  generators.Generator
	registry   *tools.Registry
	log        *dialogs.Log
	trajectory *trajectories.Trajectory
	env        *tools.Env

	systemPrompt string
	instruction  string
	window       int
	maxSteps     int

	logger  logs.Logger
	newSpan logs.NewSpan
	tap     debugs.Tap

	stepNumber int
}

func (r *Run) loop() error {
	var proc procs.Proc[*Run] = awaitProposal{}
	for proc != nil {
		var err error
		proc, err = proc.Run(r)
		if err != nil {
			return err
		}
	}
	return nil
}

// Window is the fidelity window: how many of the most recent dialog
// entries render in full. Zero means unbounded.
type Window int

func (Window) MendConfigurable() {
}

var _ configs.Configurable = Window(0)

func (Module) Window(
	loader configs.Loader,
) Window {
	return configs.First[Window](loader, "window")
}

// MaxSteps bounds a run. Zero means no bound.
type MaxSteps int

func (MaxSteps) MendConfigurable() {
}

var _ configs.Configurable = MaxSteps(0)

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return vars.FirstNonZero(
		configs.First[MaxSteps](loader, "max_steps"),
		50,
	)
}

type ModelName string

func (ModelName) MendConfigurable() {
}

var _ configs.Configurable = ModelName("")

func (Module) ModelName(
	loader configs.Loader,
) ModelName {
	return vars.FirstNonZero(
		configs.First[ModelName](loader, "model"),
		"sonnet",
	)
}

// OutputDir receives the durable artifacts: the mirrored codebase and
// the trajectory.
type OutputDir string

func (OutputDir) MendConfigurable() {
}

var _ configs.Configurable = OutputDir("")

func (Module) OutputDir(
	loader configs.Loader,
) OutputDir {
	return vars.FirstNonZero(
		configs.First[OutputDir](loader, "output_dir"),
		"output",
	)
}
