package prompts

import (
	"strings"
	"testing"

	"github.com/reusee/dscope"

	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/modes"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		system SystemPrompt,
		task TaskPrompt,
		nextStep NextStepPrompt,
	) {
		if system == "" {
			t.Fatal()
		}
		if nextStep == "" {
			t.Fatal()
		}
		rendered := task.Render("fix the bug", "* a.py\n* b.py")
		if !strings.Contains(rendered, "fix the bug") {
			t.Fatalf("got %q", rendered)
		}
		if !strings.Contains(rendered, "* b.py") {
			t.Fatalf("got %q", rendered)
		}
		if strings.Contains(rendered, "{{task}}") {
			t.Fatal("placeholder not substituted")
		}
	})
}
