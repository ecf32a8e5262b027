package sandboxes

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/reusee/mend/logs"
)

type MountSpec struct {
	Host      string
	Container string
	ReadOnly  bool
}

type ContainerSpec struct {
	Image   string
	Command string
	WorkDir string
	Mounts  []MountSpec
	Env     []string
}

// RunContainer runs one command inside an ephemeral container and
// captures its streams. The container is always removed on exit.
type RunContainer func(ctx context.Context, spec ContainerSpec) (*Result, error)

func (Module) RunContainer(
	logger logs.Logger,
) RunContainer {
	return func(ctx context.Context, spec ContainerSpec) (*Result, error) {

		name := "mend-" + uuid.NewString()

		args := []string{
			"run",
			"--rm",
			"--name", name,
			"--user", fmt.Sprintf("%d:%d", os.Getuid(), os.Getgid()),
			"-w", spec.WorkDir,
		}
		for _, mount := range spec.Mounts {
			volume := mount.Host + ":" + mount.Container
			if mount.ReadOnly {
				volume += ":ro"
			}
			args = append(args, "-v", volume)
		}
		for _, env := range spec.Env {
			args = append(args, "-e", env)
		}
		args = append(args, spec.Image, "sh", "-c", spec.Command)

		cmd := exec.CommandContext(ctx, "docker", args...)
		stdout := new(bytes.Buffer)
		stderr := new(bytes.Buffer)
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		// killing the client alone leaves the container running in the
		// daemon, so cancellation must stop it by name first
		cmd.Cancel = func() error {
			if err := exec.Command("docker", "kill", name).Run(); err != nil {
				logger.WarnContext(ctx, "container kill",
					"name", name,
					"error", err,
				)
			}
			return cmd.Process.Kill()
		}
		cmd.WaitDelay = 10 * time.Second

		logger.InfoContext(ctx, "container run",
			"name", name,
			"image", spec.Image,
			"command", spec.Command,
		)

		err := cmd.Run()
		if err != nil {
			if _, ok := err.(*exec.ExitError); !ok {
				// could not start the container at all
				return nil, err
			}
		}

		return &Result{
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: cmd.ProcessState.ExitCode(),
		}, nil
	}
}
