// Package openai implements docqa.Answerer using the OpenAI Chat Completions API.
package openai

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/docqa"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.ChatModelGPT4oMini

const defaultTemperature = 0.2

// Ensure Answerer implements docqa.Answerer at compile time.
var _ docqa.Answerer = (*Answerer)(nil)

// Answerer implements docqa.Answerer using OpenAI chat completions.
type Answerer struct {
	client  *openai.Client
	model   openai.ChatModel
	timeout time.Duration
}

// Option configures an Answerer.
type Option func(*Answerer)

// WithTimeout bounds each backend call.
func WithTimeout(d time.Duration) Option {
	return func(a *Answerer) {
		a.timeout = d
	}
}

// NewClient builds an OpenAI client with SDK retries disabled.
func NewClient(apiKey string, opts ...option.RequestOption) *openai.Client {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	client := openai.NewClient(opts...)
	return &client
}

// NewAnswerer creates a new Answerer. An empty model selects DefaultModel.
func NewAnswerer(client *openai.Client, model string, opts ...Option) *Answerer {
	m := openai.ChatModel(model)
	if m == "" {
		m = DefaultModel
	}
	a := &Answerer{client: client, model: m}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Answer sends the prompt as a single user message.
func (a *Answerer) Answer(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", docqa.Errorf(docqa.EINVALID, "prompt required")
	}
	if a.client == nil {
		return "", docqa.Errorf(docqa.EBACKEND, "openai client not configured")
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(prompt),
				},
			},
		}},
		Temperature: openai.Float(defaultTemperature),
	})
	if err != nil {
		return "", docqa.Errorf(docqa.EBACKEND, "openai: %v", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", docqa.Errorf(docqa.EBACKEND, "openai returned an empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
