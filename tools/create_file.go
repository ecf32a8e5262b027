package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/mend/codebases"
	"github.com/reusee/mend/dialogs"
	"github.com/reusee/mend/generators"
	"github.com/reusee/mend/lints"
	"github.com/reusee/mend/logs"
)

type CreateFileTool struct {
	lint   lints.Lint
	logger logs.Logger
}

var _ Tool = CreateFileTool{}

func (CreateFileTool) Decl() generators.FuncDecl {
	return generators.FuncDecl{
		Name: "create_file",
		Description: "Create a new file in the codebase. " +
			"The path must be the full path to the new file you want to create. " +
			"You must provide also the full contents of the new file.",
		Params: []generators.ParamDecl{
			{
				Name: "file_path",
				Type: "string",
				Description: "The full path to the new file to create, e.g., 'data/new_file.py'. " +
					"If the directory does not exist, it will be created.",
				Required: true,
			},
			{
				Name:        "file_contents",
				Type:        "string",
				Description: "The full contents of the new file.",
				Required:    true,
			},
		},
	}
}

func (CreateFileTool) Validate(env *Env, args map[string]any) error {
	filePath, _ := args["file_path"].(string)
	if env.Codebase.Contains(filePath) {
		return invalid("create_file",
			"The file '%s' already exists in the codebase. The files in the codebase are:\n%s",
			filePath, env.Codebase.FormattedPaths(),
		)
	}
	return nil
}

func (t CreateFileTool) Execute(ctx context.Context, env *Env, args map[string]any) (*dialogs.Outcome, error) {
	filePath := args["file_path"].(string)
	fileContents := args["file_contents"].(string)

	if err := env.Codebase.Add(filePath, fileContents); err != nil {
		return nil, err
	}

	// the new file opens in the editor
	env.OpenFile = filePath

	var reviewComment string
	if codebases.IsSourceFile(filePath, fileContents) {
		violations, err := t.lint(ctx, fileContents)
		if err != nil {
			t.logger.WarnContext(ctx, "static analysis failed",
				"file", filePath,
				"error", err,
			)
		} else if len(violations) > 0 {
			reviewComment = fmt.Sprintf(
				"The code you provided for the new file has the following issues:\n* %s\n\nPlease address these issues before continuing.",
				strings.Join(violations, "\n* "),
			)
		}
	}

	return &dialogs.Outcome{
		Description: fmt.Sprintf(
			"Created a new file '%s', and opened it in the file editor.\n"+
				"The codebase now contains the following files:\n%s\n\n"+
				"Contents of %s:\n```%s\n%s\n```",
			filePath, env.Codebase.FormattedPaths(), filePath,
			codebases.LanguageIdentifier(filePath), fileContents,
		),
		Summary:       fmt.Sprintf("Created a new file '%s'", filePath),
		ViewerChanged: true,
		ViewerContent: fileContents,
		ReviewComment: reviewComment,
	}, nil
}
