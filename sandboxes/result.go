package sandboxes

// SilentSuccess is the fixed placeholder for a run that exits 0 with
// nothing on either stream.
const SilentSuccess = "The command ran successfully with no output."

// Result captures one sandboxed run. Stdout and stderr are captured
// into distinct buffers and never merged; success is decided by the
// exit status alone.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func (r *Result) OK() bool {
	return r.ExitCode == 0
}

// Describe renders the captured result as exactly one of four shapes:
// both streams, stdout-only success, failure, or silent success.
func (r *Result) Describe() string {
	switch {

	case r.Stdout != "" && r.Stderr != "":
		return "stdout:\n```\n" + r.Stdout + "\n```\nstderr:\n```\n" + r.Stderr + "\n```"

	case r.Stdout != "" && r.OK():
		return "The command ran successfully with no errors.\nstdout:\n```\n" + r.Stdout + "\n```"

	case r.Stderr != "" || !r.OK():
		description := "The command ran with errors."
		if r.Stdout != "" {
			description += "\nstdout:\n```\n" + r.Stdout + "\n```"
		}
		if r.Stderr != "" {
			description += "\nstderr:\n```\n" + r.Stderr + "\n```"
		}
		return description

	default:
		return SilentSuccess
	}
}

// TerminalContent is what the file viewer's terminal pane shows after
// the run.
func (r *Result) TerminalContent() string {
	if r.Stdout == "" && r.Stderr == "" {
		return SilentSuccess
	}
	if r.Stderr == "" {
		return r.Stdout
	}
	if r.Stdout == "" {
		return r.Stderr
	}
	return r.Stdout + "\n" + r.Stderr
}
