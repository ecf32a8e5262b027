package prompts

import (
	"github.com/reusee/dscope"

	"github.com/reusee/mend/configs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}
