package generators

type Part interface {
	isPart()
}

type Text string

func (Text) isPart() {}

// FuncCall is a tool invocation requested by the model. ID correlates
// the call with its later CallResult.
type FuncCall struct {
	ID   string
	Name string
	Args map[string]any
}

func (FuncCall) isPart() {}

// CallResult reports the outcome of a FuncCall back to the model.
// Trailing text blocks carry reviewer comments and step instructions.
type CallResult struct {
	ID       string
	Content  string
	Trailing []string
}

func (CallResult) isPart() {}
