package agents

import (
	"github.com/reusee/dscope"

	"github.com/reusee/mend/codebases"
	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/debugs"
	"github.com/reusee/mend/generators"
	"github.com/reusee/mend/logs"
	"github.com/reusee/mend/prompts"
	"github.com/reusee/mend/sandboxes"
	"github.com/reusee/mend/tools"
)

type Module struct {
	dscope.Module
	Codebases  codebases.Module
	Configs    configs.Module
	Debugs     debugs.Module
	Generators generators.Module
	Logs       logs.Module
	Prompts    prompts.Module
	Sandboxes  sandboxes.Module
	Tools      tools.Module
}
