package sandboxes

import (
	"slices"
	"time"

	"github.com/reusee/mend/configs"
)

// Profile names a runtime environment and the container base image that
// provides it.
type Profile struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Profiles map[string]Profile

func (Module) Profiles(
	loader configs.Loader,
) Profiles {
	// two incompatible runtimes by default, extensible via config
	profiles := Profiles{
		"python2": {
			Name:  "python2",
			Image: "python2-base:latest",
		},
		"python3": {
			Name:  "python3",
			Image: "python3-base:latest",
		},
	}
	for extra := range configs.All[[]Profile](loader, "sandbox.profiles") {
		for _, profile := range extra {
			profiles[profile.Name] = profile
		}
	}
	return profiles
}

func (p Profiles) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type Timeout time.Duration

func (Module) Timeout(
	loader configs.Loader,
) Timeout {
	seconds := configs.First[int](loader, "sandbox.timeout_seconds")
	if seconds <= 0 {
		seconds = 300
	}
	return Timeout(time.Duration(seconds) * time.Second)
}
