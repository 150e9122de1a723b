// Package gemini implements docqa.Answerer using Google Gemini.
package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/docqa"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Answerer implements docqa.Answerer at compile time.
var _ docqa.Answerer = (*Answerer)(nil)

// Answerer implements docqa.Answerer using the Gemini API.
type Answerer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// Option configures an Answerer.
type Option func(*Answerer)

// WithTimeout bounds each backend call. Zero means no timeout beyond the
// caller's context.
func WithTimeout(d time.Duration) Option {
	return func(a *Answerer) {
		a.timeout = d
	}
}

// NewAnswerer creates a new Answerer. An empty model selects DefaultModel.
func NewAnswerer(client *genai.Client, model string, opts ...Option) *Answerer {
	if model == "" {
		model = DefaultModel
	}
	a := &Answerer{client: client, model: model}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Answer sends the prompt as a single user turn and returns the response text.
func (a *Answerer) Answer(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", docqa.Errorf(docqa.EINVALID, "prompt required")
	}
	if a.client == nil {
		return "", docqa.Errorf(docqa.EBACKEND, "gemini client not configured")
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", docqa.Errorf(docqa.EBACKEND, "gemini: %v", err)
	}
	if result == nil {
		return "", docqa.Errorf(docqa.EBACKEND, "gemini returned nil result")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", docqa.Errorf(docqa.EBACKEND, "gemini returned an empty response")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The role and instructions travel inside the prompt itself.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
