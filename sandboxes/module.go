package sandboxes

import (
	"github.com/reusee/dscope"

	"github.com/reusee/mend/codebases"
	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/logs"
)

type Module struct {
	dscope.Module
	Codebases codebases.Module
	Configs   configs.Module
	Logs      logs.Module
}
