package lints

import (
	"github.com/reusee/dscope"

	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
