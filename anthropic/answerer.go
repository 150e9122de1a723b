// Package anthropic implements docqa.Answerer using Anthropic Claude.
package anthropic

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/docqa"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-20250514"

// DefaultMaxTokens caps the length of a generated answer.
const DefaultMaxTokens = 4096

// Ensure Answerer implements docqa.Answerer at compile time.
var _ docqa.Answerer = (*Answerer)(nil)

// Answerer implements docqa.Answerer using the Claude Messages API.
type Answerer struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

// Option configures an Answerer.
type Option func(*Answerer)

// WithTimeout bounds each backend call.
func WithTimeout(d time.Duration) Option {
	return func(a *Answerer) {
		a.timeout = d
	}
}

// WithMaxTokens overrides DefaultMaxTokens.
func WithMaxTokens(n int64) Option {
	return func(a *Answerer) {
		a.maxTokens = n
	}
}

// NewClient builds a Claude client with SDK retries disabled, so that one
// question results in exactly one request.
func NewClient(apiKey string, opts ...option.RequestOption) *anthropic.Client {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	client := anthropic.NewClient(opts...)
	return &client
}

// NewAnswerer creates a new Answerer. An empty model selects DefaultModel.
func NewAnswerer(client *anthropic.Client, model string, opts ...Option) *Answerer {
	if model == "" {
		model = DefaultModel
	}
	a := &Answerer{client: client, model: model, maxTokens: DefaultMaxTokens}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Answer sends the prompt as a single user message and returns the
// concatenated text blocks of the reply.
func (a *Answerer) Answer(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", docqa.Errorf(docqa.EINVALID, "prompt required")
	}
	if a.client == nil {
		return "", docqa.Errorf(docqa.EBACKEND, "claude client not configured")
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", docqa.Errorf(docqa.EBACKEND, "claude: %v", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", docqa.Errorf(docqa.EBACKEND, "claude returned an empty response")
	}
	return sb.String(), nil
}
