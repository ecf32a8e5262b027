package generators

import (
	"os"

	"github.com/reusee/mend/configs"
	"github.com/reusee/mend/vars"
)

type AnthropicAPIKey string

func (AnthropicAPIKey) MendConfigurable() {
}

var _ configs.Configurable = AnthropicAPIKey("")

func (Module) AnthropicAPIKey(
	loader configs.Loader,
) AnthropicAPIKey {
	return vars.FirstNonZero(
		configs.First[AnthropicAPIKey](loader, "anthropic_api_key"),
		AnthropicAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
}

type AnthropicBaseURL string

func (AnthropicBaseURL) MendConfigurable() {
}

var _ configs.Configurable = AnthropicBaseURL("")

func (Module) AnthropicBaseURL(
	loader configs.Loader,
) AnthropicBaseURL {
	return vars.FirstNonZero(
		configs.First[AnthropicBaseURL](loader, "anthropic_base_url"),
		AnthropicBaseURL(os.Getenv("ANTHROPIC_BASE_URL")),
		"https://api.anthropic.com",
	)
}
