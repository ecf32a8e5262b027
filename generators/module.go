package generators

import (
	"github.com/reusee/dscope"

	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/debugs"
	"github.com/reusee/mend/logs"
	"github.com/reusee/mend/nets"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Nets    nets.Module
	Logs    logs.Module
	Debugs  debugs.Module
}
