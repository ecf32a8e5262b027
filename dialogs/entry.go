package dialogs

// Entry is one item in the dialog: the opening task descriptor, a
// proposal from the model, or the outcome of executing that proposal.
type Entry interface {
	isEntry()
}

type TaskDescriptor struct {
	Text string
}

func (TaskDescriptor) isEntry() {}

// Proposal is one step's decision: rationale text plus exactly one tool
// invocation, correlated by CallID.
type Proposal struct {
	Rationale string
	CallID    string
	ToolName  string
	Arguments map[string]any
}

func (Proposal) isEntry() {}

// Outcome is the two-fidelity result of executing a Proposal.
type Outcome struct {
	CallID          string
	Description     string
	Summary         string
	TerminalOutput  bool
	TerminalContent string
	ViewerChanged   bool
	ViewerContent   string
	ReviewComment   string
	Instruction     string
}

func (Outcome) isEntry() {}
