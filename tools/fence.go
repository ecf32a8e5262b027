package tools

import (
	"strings"
	"unicode"
)

// StripFence removes surrounding markdown code fence markup from a code
// string, if present, including any language identifier on the opening
// fence. Content without fences passes through unchanged apart from
// leading whitespace.
func StripFence(code string) string {
	if strings.HasPrefix(code, "```") {
		// an opening fence with no newline after it is left alone
		if i := strings.IndexByte(code, '\n'); i >= 0 {
			code = code[i+1:]
		}
	}
	code = strings.TrimSuffix(code, "```")
	return strings.TrimLeftFunc(code, unicode.IsSpace)
}
