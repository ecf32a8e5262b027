package agents

import (
	"fmt"
)

// ProtocolError means a model response did not resolve to exactly one
// tool invocation. There is no way to continue the dialog from such a
// response, so it ends the run.
type ProtocolError struct {
	StopReason string
	NumCalls   int
}

var _ error = new(ProtocolError)

func (e *ProtocolError) Error() string {
	return fmt.Sprintf(
		"model response must contain exactly one tool call, got %d with stop reason %q",
		e.NumCalls, e.StopReason,
	)
}
