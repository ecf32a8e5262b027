package lints

import (
	"strings"
	"testing"

	"github.com/reusee/dscope"

	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/modes"
)

func TestLintFakeAnalyzer(t *testing.T) {
	// stand-in analyzer: echo a fixed ruff-style report
	report := `[{"code":"F821","message":"undefined name x","location":{"row":3,"column":5}}]`
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		func() LintCommand {
			return LintCommand{"sh", "-c", "echo " + "'" + report + "' #"}
		},
	).Call(func(
		lint Lint,
	) {
		violations, err := lint(t.Context(), "x\n")
		if err != nil {
			t.Fatal(err)
		}
		if len(violations) != 1 {
			t.Fatalf("got %v", violations)
		}
		if violations[0] != "3:5 - F821: undefined name x" {
			t.Fatalf("got %q", violations[0])
		}
	})
}

func TestLintCleanCode(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		func() LintCommand {
			return LintCommand{"true"}
		},
	).Call(func(
		lint Lint,
	) {
		violations, err := lint(t.Context(), "x = 1\n")
		if err != nil {
			t.Fatal(err)
		}
		if violations != nil {
			t.Fatalf("got %v", violations)
		}
	})
}

func TestLintMissingAnalyzer(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		func() LintCommand {
			return LintCommand{"definitely-not-a-real-analyzer"}
		},
	).Call(func(
		lint Lint,
	) {
		_, err := lint(t.Context(), "x = 1\n")
		if err == nil {
			t.Fatal("should fail")
		}
		if strings.Contains(err.Error(), "bad analyzer output") {
			t.Fatal("start failure must not read as output failure")
		}
	})
}
