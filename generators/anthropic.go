package generators

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/reusee/dscope"

	"github.com/reusee/mend/cmds"
	"github.com/reusee/mend/debugs"
	"github.com/reusee/mend/logs"
	"github.com/reusee/mend/nets"
	"github.com/reusee/mend/vars"
)

var debugAnthropic = cmds.Switch("-debug-anthropic")

var tapGenerate = cmds.Switch("-tap-generate")

type Anthropic struct {
	args    GeneratorArgs
	apiKey  string
	baseURL string
	client  nets.HTTPClient

	Logger dscope.Inject[logs.Logger]
	Tap    dscope.Inject[debugs.Tap]
}

var _ Generator = new(Anthropic)

type NewAnthropic func(args GeneratorArgs) Generator

func (Module) NewAnthropic(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
	apiKey AnthropicAPIKey,
	baseURL AnthropicBaseURL,
) NewAnthropic {
	return func(args GeneratorArgs) Generator {
		generator := &Anthropic{
			args:    args,
			apiKey:  string(apiKey),
			baseURL: string(baseURL),
			client:  client,
		}
		if args.BaseURL != "" {
			generator.baseURL = args.BaseURL
		}
		inject(generator)
		return generator
	}
}

func (a *Anthropic) Model() string {
	return a.args.Model
}

type messagesRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	System      string        `json:"system,omitempty"`
	Messages    []wireMessage `json:"messages"`
	Tools       []wireTool    `json:"tools,omitempty"`
	Temperature *float32      `json:"temperature,omitempty"`
}

type wireMessage struct {
	Role    Role        `json:"role"`
	Content []wireBlock `json:"content"`
}

type wireBlock struct {
	Type      string         `json:"type"`
	Text      string         `json:"text,omitempty"`
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name,omitempty"`
	Input     map[string]any `json:"input,omitempty"`
	ToolUseID string         `json:"tool_use_id,omitempty"`
	Content   string         `json:"content,omitempty"`
}

type messagesResponse struct {
	Content    []wireBlock `json:"content"`
	StopReason string      `json:"stop_reason"`
	Error      *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

var ErrRetryable = errors.New("retryable")

func (a *Anthropic) Generate(ctx context.Context, req Request) (*Response, error) {

	messages, err := contentsToWire(req.Contents)
	if err != nil {
		return nil, err
	}

	body := messagesRequest{
		Model:       a.args.Model,
		MaxTokens:   a.args.MaxGenerateTokens,
		System:      req.System,
		Messages:    messages,
		Temperature: a.args.Temperature,
	}
	for _, decl := range req.Funcs {
		body.Tools = append(body.Tools, decl.toWire())
	}

	if *tapGenerate {
		a.Tap()(ctx, "before generate", map[string]any{
			"model":    a.args.Model,
			"messages": messages,
		})
	}

	a.Logger().InfoContext(ctx, "generating",
		"model", a.args.Model,
		"temperature", vars.DerefOrZero(a.args.Temperature),
		"messages", len(messages),
	)

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, "POST", a.baseURL+"/v1/messages", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var wireResp messagesResponse
	if err := json.Unmarshal(respBody, &wireResp); err != nil {
		return nil, fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, respBody)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("bad status: %d", resp.StatusCode)
		if wireResp.Error != nil {
			err = fmt.Errorf("%s: %s", wireResp.Error.Type, wireResp.Error.Message)
		}
		if resp.StatusCode == http.StatusTooManyRequests ||
			resp.StatusCode >= 500 {
			return nil, errors.Join(err, ErrRetryable)
		}
		return nil, err
	}

	if *debugAnthropic {
		a.Logger().InfoContext(ctx, "anthropic response",
			"body", string(respBody),
		)
	}

	content := &Content{
		Role: RoleAssistant,
	}
	for _, block := range wireResp.Content {
		switch block.Type {
		case "text":
			content.Parts = append(content.Parts, Text(block.Text))
		case "tool_use":
			content.Parts = append(content.Parts, FuncCall{
				ID:   block.ID,
				Name: block.Name,
				Args: block.Input,
			})
		case "thinking":
			// reasoning blocks are not fed back into the dialog
		default:
			return nil, fmt.Errorf("unknown content block type: %q", block.Type)
		}
	}

	return &Response{
		Content:    content,
		StopReason: wireResp.StopReason,
	}, nil
}

func contentsToWire(contents []*Content) ([]wireMessage, error) {
	var messages []wireMessage
	for _, content := range contents {
		message := wireMessage{
			Role: content.Role,
		}
		for _, part := range content.Parts {
			switch part := part.(type) {

			case Text:
				if part == "" {
					continue
				}
				message.Content = append(message.Content, wireBlock{
					Type: "text",
					Text: string(part),
				})

			case FuncCall:
				args := part.Args
				if args == nil {
					args = map[string]any{}
				}
				message.Content = append(message.Content, wireBlock{
					Type:  "tool_use",
					ID:    part.ID,
					Name:  part.Name,
					Input: args,
				})

			case CallResult:
				message.Content = append(message.Content, wireBlock{
					Type:      "tool_result",
					ToolUseID: part.ID,
					Content:   part.Content,
				})
				for _, text := range part.Trailing {
					message.Content = append(message.Content, wireBlock{
						Type: "text",
						Text: text,
					})
				}

			default:
				return nil, fmt.Errorf("unknown part type: %T", part)
			}
		}
		if len(message.Content) == 0 {
			continue
		}
		messages = append(messages, message)
	}
	return messages, nil
}
