package configs

type Configurable interface {
	MendConfigurable()
}
