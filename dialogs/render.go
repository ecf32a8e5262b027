package dialogs

import (
	"fmt"
	"maps"

	"github.com/reusee/mend/generators"
)

// ElidedContent replaces a file-editing proposal's new-content argument
// when the entry renders at reduced fidelity.
const ElidedContent = "<file contents elided>"

// contentArguments names, per capability, the argument that may carry an
// entire file and is collapsed at reduced fidelity. The rationale and
// commit message always render verbatim.
var contentArguments = map[string]string{
	"edit_file":   "new_file_contents",
	"create_file": "file_contents",
}

// Render produces the model-call payload. With window > 0 only the last
// window entries render at full fidelity; earlier ones render reduced.
// window <= 0 means unbounded: everything renders in full.
func (l *Log) Render(window int) []*generators.Content {
	contents := make([]*generators.Content, 0, len(l.entries))
	for i := range l.entries {
		full := window <= 0 || i >= len(l.entries)-window
		contents = append(contents, l.renderEntry(i, full))
	}
	return contents
}

func (l *Log) renderEntry(i int, full bool) *generators.Content {
	switch entry := l.Entry(i).(type) {

	case TaskDescriptor:
		return &generators.Content{
			Role: generators.RoleUser,
			Parts: []generators.Part{
				generators.Text(entry.Text),
			},
		}

	case Proposal:
		arguments := entry.Arguments
		if !full {
			if argName, ok := contentArguments[entry.ToolName]; ok {
				if _, has := arguments[argName]; has {
					arguments = maps.Clone(arguments)
					arguments[argName] = ElidedContent
				}
			}
		}
		return &generators.Content{
			Role: generators.RoleAssistant,
			Parts: []generators.Part{
				generators.Text(entry.Rationale),
				generators.FuncCall{
					ID:   entry.CallID,
					Name: entry.ToolName,
					Args: arguments,
				},
			},
		}

	case Outcome:
		content := entry.Description
		if !full {
			content = entry.Summary
		}
		// reviewer comments and step instructions steer the next
		// decision, so they are exempt from summarization
		var trailing []string
		if entry.ReviewComment != "" {
			trailing = append(trailing, entry.ReviewComment)
		}
		if entry.Instruction != "" {
			trailing = append(trailing, entry.Instruction)
		}
		return &generators.Content{
			Role: generators.RoleUser,
			Parts: []generators.Part{
				generators.CallResult{
					ID:       entry.CallID,
					Content:  content,
					Trailing: trailing,
				},
			},
		}

	}
	panic(fmt.Errorf("unknown entry type: %T", l.entries[i]))
}
