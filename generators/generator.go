package generators

import (
	"context"
	"fmt"

	"github.com/reusee/mend/vars"
)

type Request struct {
	System   string
	Contents []*Content
	Funcs    []FuncDecl
}

type Response struct {
	Content    *Content
	StopReason string
}

type Generator interface {
	Model() string
	Generate(ctx context.Context, req Request) (*Response, error)
}

type GetGenerator func(name string) (Generator, error)

func (Module) GetGenerator(
	newAnthropic NewAnthropic,
	temperature Temperature,
) GetGenerator {
	return func(name string) (Generator, error) {

		args := GeneratorArgs{
			MaxGenerateTokens: 8192,
		}
		if temperature != 0 {
			args.Temperature = vars.PtrTo(float32(temperature))
		}

		switch name {

		case "sonnet":
			args.Model = "claude-sonnet-4-5"
			return newAnthropic(args), nil

		case "haiku":
			args.Model = "claude-haiku-4-5"
			return newAnthropic(args), nil

		}

		// any other name is passed through as a literal model id
		if name != "" {
			args.Model = name
			return newAnthropic(args), nil
		}

		return nil, fmt.Errorf("invalid model: %q", name)
	}
}

type GeneratorArgs struct {
	BaseURL           string   `json:"base_url"`
	Model             string   `json:"model"`
	MaxGenerateTokens int      `json:"max_generate_tokens"`
	Temperature       *float32 `json:"temperature"`
}
