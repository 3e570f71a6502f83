package clients

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Timeout for individual OpenAI API requests. Callers needing tighter
// bounds pass their own context deadline.
const openAIRequestTimeout = 60 * time.Second

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
}

// NewOpenAIClient builds a client from the environment. A missing key is
// an error, not a panic; callers degrade to the heuristic path.
func NewOpenAIClient() (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := openai.ChatModelGPT4o
	if m := os.Getenv("OPENAI_MODEL"); m != "" {
		model = openai.ChatModel(m)
	}

	return &OpenAIClient{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithHTTPClient(&http.Client{Timeout: openAIRequestTimeout}),
		),
		model: model,
	}, nil
}

// Complete issues one chat completion and returns the cleaned message
// content. Single-shot: no retries, failures surface to the caller.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	chat, err := c.client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(system),
				openai.UserMessage(user),
			}),
			Model:       openai.F(c.model),
			Temperature: openai.Float(temperature),
		})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(chat.Choices) == 0 || strings.TrimSpace(chat.Choices[0].Message.Content) == "" {
		return "", errors.New("chat completion: empty response")
	}
	return CleanResponse(chat.Choices[0].Message.Content), nil
}

// CleanResponse strips markdown fences and curly quotes models sometimes
// emit around JSON output.
func CleanResponse(response string) string {
	response = strings.TrimSpace(response)

	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	response = strings.ReplaceAll(response, "“", `"`)
	response = strings.ReplaceAll(response, "”", `"`)

	return strings.TrimSpace(response)
}
