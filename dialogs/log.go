package dialogs

import (
	"fmt"
)

// Log is the ordered dialog history. The first entry is always the task
// descriptor; after that, proposals and outcomes strictly alternate.
type Log struct {
	entries []Entry
}

func NewLog(task string) *Log {
	return &Log{
		entries: []Entry{
			TaskDescriptor{
				Text: task,
			},
		},
	}
}

func (l *Log) Len() int {
	return len(l.entries)
}

func (l *Log) Entry(i int) Entry {
	if i < 0 || i >= len(l.entries) {
		panic(fmt.Errorf("entry index out of range: %d of %d", i, len(l.entries)))
	}
	return l.entries[i]
}

// AppendExchange appends a proposal and its outcome as one unit, so a
// cancelled step can never leave the log half-appended.
func (l *Log) AppendExchange(proposal *Proposal, outcome *Outcome) error {
	if proposal.CallID != outcome.CallID {
		return fmt.Errorf("correlation mismatch: %q vs %q", proposal.CallID, outcome.CallID)
	}
	l.entries = append(l.entries, *proposal, *outcome)
	return nil
}
