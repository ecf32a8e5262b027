package mendconfigs

import (
	"github.com/reusee/dscope"

	"github.com/reusee/mend/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
