// Package llm wraps the text-completion service behind a contract that
// never fails loudly: configuration and transport problems come back as
// bracketed sentinel strings inline with the output, so downstream
// views can soft-fail instead of crashing.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/specwise/spec-analyzer/pkg/logger"
)

const (
	// SentinelNoKey marks a completion skipped for lack of credentials.
	SentinelNoKey = "[no api key]"
	// SentinelError marks a completion that failed remotely.
	SentinelError = "[completion error]"
)

// Settings configures the completion calls.
type Settings struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int64
}

// Completer is the completion contract the analysis views consume.
type Completer interface {
	Complete(ctx context.Context, system, user string) string
}

// Client calls the OpenAI chat-completion API synchronously, one call
// per invocation, no retries or streaming.
type Client struct {
	api      openai.Client
	settings Settings
	hasKey   bool
	logger   logger.Logger
}

// NewClient resolves the service handle once from settings. A missing
// API key is not an error; every later call returns the no-key sentinel.
func NewClient(settings Settings, log logger.Logger) *Client {
	if settings.Model == "" {
		settings.Model = "gpt-4o-mini"
	}
	if settings.MaxTokens <= 0 {
		settings.MaxTokens = 1200
	}

	c := &Client{
		settings: settings,
		hasKey:   settings.APIKey != "",
		logger:   log,
	}
	if c.hasKey {
		c.api = openai.NewClient(option.WithAPIKey(settings.APIKey))
	}

	return c
}

// Configured reports whether a service credential is present.
func (c *Client) Configured() bool {
	return c.hasKey
}

// Complete sends one system+user prompt pair and returns the generated
// text, or a sentinel string. It never returns an error.
func (c *Client) Complete(ctx context.Context, system, user string) string {
	if !c.hasKey {
		return SentinelNoKey + " set OPENAI_API_KEY to enable analysis views"
	}

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.settings.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(c.settings.Temperature),
		MaxTokens:   openai.Int(c.settings.MaxTokens),
	})
	if err != nil {
		c.logger.Warn("completion call failed",
			logger.String("model", c.settings.Model),
			logger.Error(err),
		)
		return fmt.Sprintf("%s %v", SentinelError, err)
	}

	if len(resp.Choices) == 0 {
		return SentinelError + " empty response"
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// IsSentinel reports whether s is a failure marker rather than genuine
// model output.
func IsSentinel(s string) bool {
	return strings.HasPrefix(s, SentinelNoKey) || strings.HasPrefix(s, SentinelError)
}
