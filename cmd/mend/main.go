package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"

	"github.com/reusee/mend/agents"
	"github.com/reusee/mend/cmds"
	"github.com/reusee/mend/logs"
	"github.com/reusee/mend/mendconfigs"
	"github.com/reusee/mend/modes"
)

var (
	modelFlag    = cmds.Var[string]("-model")
	windowFlag   = cmds.Var[int]("-window")
	maxStepsFlag = cmds.Var[int]("-max-steps")
	outputFlag   = cmds.Var[string]("-output")
)

func main() {

	var rootArg, taskArg string
	cmds.Define("run", cmds.
		Func(func(root string, task string) {
			rootArg = root
			taskArg = task
		}).
		Desc("run the agent over the codebase at <root> with <task>"),
	)

	cmds.Execute(os.Args[1:])

	if rootArg == "" || taskArg == "" {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	scope := dscope.New(
		new(agents.Module),
		new(mendconfigs.Module),
		modes.ForProduction(),
	)

	// flags take precedence over config values
	var overrides []any
	if *modelFlag != "" {
		overrides = append(overrides, dscope.Provide(agents.ModelName(*modelFlag)))
	}
	if *windowFlag != 0 {
		overrides = append(overrides, dscope.Provide(agents.Window(*windowFlag)))
	}
	if *maxStepsFlag != 0 {
		overrides = append(overrides, dscope.Provide(agents.MaxSteps(*maxStepsFlag)))
	}
	if *outputFlag != "" {
		overrides = append(overrides, dscope.Provide(agents.OutputDir(*outputFlag)))
	}
	if len(overrides) > 0 {
		scope = scope.Fork(overrides...)
	}

	scope.Call(func(
		execute agents.Execute,
		logger logs.Logger,
	) {
		ctx := context.Background()
		logger.Info("run",
			"root", rootArg,
			"task", taskArg,
		)
		if err := execute(ctx, rootArg, taskArg); err != nil {
			logger.Error("run failed",
				"error", err,
			)
			os.Exit(1)
		}
	})
}
