package sandboxes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reusee/mend/codebases"
	"github.com/reusee/mend/logs"
)

type MountMode uint8

const (
	MountReadWrite MountMode = iota
	MountReadOnly
)

type Invocation struct {
	Profile string
	Command string
	Mount   MountMode
}

var ErrTimeout = errors.New("sandbox timeout")

// Run materializes the current codebase into a fresh location, executes
// the invocation in an isolated container against it, and tears
// everything down on every exit path.
type Run func(ctx context.Context, codebase *codebases.Codebase, invocation Invocation) (*Result, error)

func (Module) Run(
	profiles Profiles,
	timeout Timeout,
	runContainer RunContainer,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, codebase *codebases.Codebase, invocation Invocation) (_ *Result, err error) {

		profile, ok := profiles[invocation.Profile]
		if !ok {
			return nil, fmt.Errorf("unknown execution profile: %q, valid profiles are: %s",
				invocation.Profile,
				strings.Join(profiles.Names(), ", "),
			)
		}

		// a fresh materialization per invocation, never shared
		dir := filepath.Join(os.TempDir(), "mend-sandbox-"+uuid.NewString())
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		defer func() {
			if removeErr := os.RemoveAll(dir); removeErr != nil && err == nil {
				err = removeErr
			}
		}()

		codebaseDir := filepath.Join(dir, "codebase")
		if err := codebase.WriteTo(codebaseDir); err != nil {
			return nil, err
		}
		scratchDir := filepath.Join(dir, "scratch")
		for _, sub := range []string{"pip_cache", "local"} {
			if err := os.MkdirAll(filepath.Join(scratchDir, sub), 0755); err != nil {
				return nil, err
			}
		}

		ctx, cancel := context.WithTimeout(ctx, time.Duration(timeout))
		defer cancel()

		begin := time.Now()
		result, err := runContainer(ctx, ContainerSpec{
			Image:   profile.Image,
			Command: invocation.Command,
			WorkDir: "/workspace/codebase",
			Mounts: []MountSpec{
				{
					Host:      codebaseDir,
					Container: "/workspace/codebase",
					ReadOnly:  invocation.Mount == MountReadOnly,
				},
				{
					Host:      scratchDir,
					Container: "/workspace/scratch",
				},
			},
			Env: []string{
				"HOME=/workspace/scratch",
				"PIP_CACHE_DIR=/workspace/scratch/pip_cache",
				"PYTHONUSERBASE=/workspace/scratch/local",
			},
		})
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				return nil, fmt.Errorf("%w after %v", ErrTimeout, time.Duration(timeout))
			}
			return nil, err
		}

		logger.InfoContext(ctx, "sandbox run",
			"profile", profile.Name,
			"exit", result.ExitCode,
			"duration", time.Since(begin),
		)

		return result, nil
	}
}
