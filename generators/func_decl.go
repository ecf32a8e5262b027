package generators

type ParamDecl struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Enum        []string
}

// FuncDecl is the static descriptor of a callable tool, presented to the
// model as {name, description, input_schema}.
type FuncDecl struct {
	Name        string
	Description string
	Params      []ParamDecl
}

type wireSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]wireSchemaProp `json:"properties"`
	Required   []string                  `json:"required"`
}

type wireSchemaProp struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Enum        []string `json:"enum,omitempty"`
}

type wireTool struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	InputSchema wireSchema `json:"input_schema"`
}

func (d FuncDecl) toWire() wireTool {
	properties := make(map[string]wireSchemaProp)
	required := []string{}
	for _, param := range d.Params {
		properties[param.Name] = wireSchemaProp{
			Type:        param.Type,
			Description: param.Description,
			Enum:        param.Enum,
		}
		if param.Required {
			required = append(required, param.Name)
		}
	}
	return wireTool{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: wireSchema{
			Type:       "object",
			Properties: properties,
			Required:   required,
		},
	}
}
