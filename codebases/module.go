package codebases

import (
	"github.com/reusee/dscope"

	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/logs"
	"github.com/reusee/mend/vars"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

type SourcePattern string

func (SourcePattern) MendConfigurable() {
}

var _ configs.Configurable = SourcePattern("")

func (Module) SourcePattern(
	loader configs.Loader,
) SourcePattern {
	return vars.FirstNonZero(
		configs.First[SourcePattern](loader, "source_pattern"),
		"**/*.py",
	)
}

type Open func(root string) (*Codebase, error)

func (Module) Open(
	pattern SourcePattern,
	logger logs.Logger,
) Open {
	return func(root string) (*Codebase, error) {
		codebase, err := Scan(root, string(pattern))
		if err != nil {
			return nil, err
		}
		logger.Info("codebase",
			"root", root,
			"pattern", pattern,
			"files", codebase.NumFiles(),
		)
		return codebase, nil
	}
}
