package tools

import (
	"errors"
	"fmt"
)

// ErrUnknownTool is a registry miss: a configuration defect, not
// conversational feedback.
var ErrUnknownTool = errors.New("unknown tool")

// ValidationError is a recoverable argument failure. Its message is
// written for the model, which sees it as the next outcome and can
// self-correct.
type ValidationError struct {
	Tool    string
	Message string
}

var _ error = new(ValidationError)

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(tool string, format string, args ...any) *ValidationError {
	return &ValidationError{
		Tool:    tool,
		Message: fmt.Sprintf(format, args...),
	}
}
