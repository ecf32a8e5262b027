package tools

import (
	"github.com/reusee/mend/codebases"
)

// Env is the slice of run state a tool execution can see and mutate:
// the tracked codebase, the file currently open in the editor, and the
// completion flag. The step loop owns the Env and reads the pointer and
// flag back after each dispatch.
type Env struct {
	Codebase  *codebases.Codebase
	OpenFile  string
	Completed bool
}
