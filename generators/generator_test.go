package generators

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"

	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/modes"
)

func TestTemperatureFromConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mend.cue")
	if err := os.WriteFile(path, []byte(`
temperature: 0.2
`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader([]string{path}, "")),
	).Call(func(
		getGenerator GetGenerator,
	) {
		generator, err := getGenerator("sonnet")
		if err != nil {
			t.Fatal(err)
		}
		temperature := generator.(*Anthropic).args.Temperature
		if temperature == nil {
			t.Fatal("temperature not set")
		}
		if *temperature != 0.2 {
			t.Fatalf("got %v", *temperature)
		}
	})
}

func TestTemperatureDefaultsToAPIDefault(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		getGenerator GetGenerator,
	) {
		generator, err := getGenerator("claude-test")
		if err != nil {
			t.Fatal(err)
		}
		if generator.(*Anthropic).args.Temperature != nil {
			t.Fatal("expected unset temperature")
		}
	})
}
