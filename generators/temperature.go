package generators

import (
	"github.com/reusee/mend/configs"
)

// Temperature is the sampling temperature passed to the model. Zero
// means the API default.
type Temperature float32

func (Temperature) MendConfigurable() {
}

var _ configs.Configurable = Temperature(0)

func (Module) Temperature(
	loader configs.Loader,
) Temperature {
	return configs.First[Temperature](loader, "temperature")
}
