package generators

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Content struct {
	Role  Role
	Parts []Part
}

// FuncCalls collects the tool invocations in the content, in order.
func (c *Content) FuncCalls() []FuncCall {
	var calls []FuncCall
	for _, part := range c.Parts {
		if call, ok := part.(FuncCall); ok {
			calls = append(calls, call)
		}
	}
	return calls
}

// JoinedText concatenates all plain text parts.
func (c *Content) JoinedText() string {
	var text Text
	for _, part := range c.Parts {
		if t, ok := part.(Text); ok {
			text += t
		}
	}
	return string(text)
}
