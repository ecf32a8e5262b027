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

type EditFileTool struct {
	lint   lints.Lint
	logger logs.Logger
}

var _ Tool = EditFileTool{}

func (EditFileTool) Decl() generators.FuncDecl {
	return generators.FuncDecl{
		Name: "edit_file",
		Description: "Edit the contents of the file open in your file editor. " +
			"Important: this tool should be used after you have opened the file you want to edit " +
			"using the 'open_file' tool.",
		Params: []generators.ParamDecl{
			{
				Name: "commit_message",
				Type: "string",
				Description: "The commit message is a short description of the changes you made to the file. " +
					"This should be detailed enough to allow other developers to understand the changes you made " +
					"(without having to read the entire diff), but succinct enough to fit in a couple of sentences.",
				Required: true,
			},
			{
				Name: "new_file_contents",
				Type: "string",
				Description: "The new contents of the file. This should be the full, updated contents of the file. " +
					"This will be used to update the file in the codebase (the contents of the file open in the " +
					"file editor will be replaced with this new content).",
				Required: true,
			},
		},
	}
}

func (EditFileTool) Validate(env *Env, args map[string]any) error {
	if env.OpenFile == "" {
		return invalid("edit_file",
			"No file is open in the file editor. Open the file you want to edit with the 'open_file' tool first.",
		)
	}
	return nil
}

func (t EditFileTool) Execute(ctx context.Context, env *Env, args map[string]any) (*dialogs.Outcome, error) {
	commitMessage := args["commit_message"].(string)
	newContents := StripFence(args["new_file_contents"].(string))
	filePath := env.OpenFile

	if err := env.Codebase.Edit(filePath, newContents); err != nil {
		return nil, err
	}

	reviewComment := t.review(ctx, filePath, newContents)

	return &dialogs.Outcome{
		Description: fmt.Sprintf(
			"Edited the file '%s'.\nCommit message: '%s'.\nNew contents of %s:\n```%s\n%s\n```",
			filePath, commitMessage, filePath,
			codebases.LanguageIdentifier(filePath), newContents,
		),
		Summary: fmt.Sprintf(
			"Edited the file '%s'.\nCommit message: %s",
			filePath, commitMessage,
		),
		ViewerChanged: true,
		ViewerContent: newContents,
		ReviewComment: reviewComment,
	}, nil
}

// review runs static analysis over source file contents and frames any
// violations as a reviewer comment. Analyzer infrastructure failures are
// logged and swallowed, never surfaced to the model.
func (t EditFileTool) review(ctx context.Context, filePath string, contents string) string {
	if !codebases.IsSourceFile(filePath, contents) {
		return ""
	}
	violations, err := t.lint(ctx, contents)
	if err != nil {
		t.logger.WarnContext(ctx, "static analysis failed",
			"file", filePath,
			"error", err,
		)
		return ""
	}
	if len(violations) == 0 {
		return ""
	}
	return fmt.Sprintf(
		"The code you provided has the following issues:\n* %s\n\nPlease address these issues before continuing.",
		strings.Join(violations, "\n* "),
	)
}
