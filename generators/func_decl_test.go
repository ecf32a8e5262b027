package generators

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFuncDeclToWire(t *testing.T) {
	decl := FuncDecl{
		Name:        "open_file",
		Description: "Open a file.",
		Params: []ParamDecl{
			{
				Name:        "file_path",
				Type:        "string",
				Description: "The path to open.",
				Required:    true,
			},
			{
				Name:        "environment",
				Type:        "string",
				Description: "Runtime environment.",
				Enum:        []string{"python2", "python3"},
			},
		},
	}

	data, err := json.Marshal(decl.toWire())
	if err != nil {
		t.Fatal(err)
	}
	str := string(data)

	for _, want := range []string{
		`"name":"open_file"`,
		`"input_schema":{"type":"object"`,
		`"required":["file_path"]`,
		`"enum":["python2","python3"]`,
	} {
		if !strings.Contains(str, want) {
			t.Fatalf("missing %s in %s", want, str)
		}
	}
}

func TestFuncDeclNoParams(t *testing.T) {
	decl := FuncDecl{
		Name:        "complete_task",
		Description: "Declare the task complete.",
	}
	data, err := json.Marshal(decl.toWire())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"required":[]`) {
		t.Fatalf("got %s", data)
	}
}
