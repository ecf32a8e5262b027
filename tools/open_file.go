package tools

import (
	"context"
	"fmt"

	"github.com/reusee/mend/codebases"
	"github.com/reusee/mend/dialogs"
	"github.com/reusee/mend/generators"
)

type OpenFileTool struct{}

var _ Tool = OpenFileTool{}

func (OpenFileTool) Decl() generators.FuncDecl {
	return generators.FuncDecl{
		Name: "open_file",
		Description: "Open a file in the file editor. " +
			"The path must be the full path to an existing file in the codebase that you are working on. " +
			"The file will be opened in the file editor, so that you can see its contents " +
			"(and possibly decide to edit it at a later step).",
		Params: []generators.ParamDecl{
			{
				Name:        "file_path",
				Type:        "string",
				Description: "The full path to the file to open. e.g., 'data/processing.py'",
				Required:    true,
			},
		},
	}
}

func (OpenFileTool) Validate(env *Env, args map[string]any) error {
	filePath, _ := args["file_path"].(string)
	if !env.Codebase.Contains(filePath) {
		return invalid("open_file",
			"The file '%s' does not exist in the codebase. The files in the codebase are:\n%s",
			filePath, env.Codebase.FormattedPaths(),
		)
	}
	return nil
}

func (OpenFileTool) Execute(ctx context.Context, env *Env, args map[string]any) (*dialogs.Outcome, error) {
	filePath := args["file_path"].(string)
	file, ok := env.Codebase.Retrieve(filePath)
	if !ok {
		return nil, fmt.Errorf("file vanished from codebase: %s", filePath)
	}
	contents := file.Contents()

	env.OpenFile = filePath

	return &dialogs.Outcome{
		Description: fmt.Sprintf(
			"Opened the file '%s'. Contents of %s: \n```%s\n%s\n```",
			filePath, filePath,
			codebases.LanguageIdentifier(filePath), contents,
		),
		Summary:       fmt.Sprintf("Opened the file '%s'", filePath),
		ViewerChanged: true,
		ViewerContent: contents,
	}, nil
}
