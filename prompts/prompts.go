package prompts

import (
	"strings"

	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/vars"
)

type SystemPrompt string

func (SystemPrompt) MendConfigurable() {
}

var _ configs.Configurable = SystemPrompt("")

func (Module) SystemPrompt(
	loader configs.Loader,
) SystemPrompt {
	return vars.FirstNonZero(
		configs.First[SystemPrompt](loader, "system_prompt"),
		SystemPrompt(defaultSystemPrompt),
	)
}

const defaultSystemPrompt = `You are an expert software engineer working autonomously on a codebase.

At each step you must call exactly one tool. Before calling it, explain your
reasoning in plain text: what you learned from the previous observation, and
why the tool call you are about to make is the right next action.

Work methodically:
* Open a file before deciding to edit it.
* After making changes, run the test suite to verify them.
* When you edit a file, provide the full new contents of the file.
* Declare the task complete only when you are confident it is done.`

type TaskPrompt string

func (TaskPrompt) MendConfigurable() {
}

var _ configs.Configurable = TaskPrompt("")

func (Module) TaskPrompt(
	loader configs.Loader,
) TaskPrompt {
	return vars.FirstNonZero(
		configs.First[TaskPrompt](loader, "task_prompt"),
		TaskPrompt(defaultTaskPrompt),
	)
}

const defaultTaskPrompt = `Your task is:

{{task}}

The codebase you are working on contains the following files:
{{files}}

Take your first step now.`

// Render substitutes the task goal and file listing into a task prompt.
func (p TaskPrompt) Render(task string, files string) string {
	str := string(p)
	str = strings.ReplaceAll(str, "{{task}}", task)
	str = strings.ReplaceAll(str, "{{files}}", files)
	return str
}

type NextStepPrompt string

func (NextStepPrompt) MendConfigurable() {
}

var _ configs.Configurable = NextStepPrompt("")

func (Module) NextStepPrompt(
	loader configs.Loader,
) NextStepPrompt {
	return vars.FirstNonZero(
		configs.First[NextStepPrompt](loader, "next_step_prompt"),
		NextStepPrompt("Take the next step to move the task forward."),
	)
}
