package mock

import (
	"context"

	"github.com/fwojciec/docqa"
)

var _ docqa.Asker = (*Asker)(nil)

// Asker is a mock implementation of docqa.Asker.
type Asker struct {
	AskFn func(ctx context.Context, sources []docqa.Source, question string) (*docqa.Answer, error)
}

func (a *Asker) Ask(ctx context.Context, sources []docqa.Source, question string) (*docqa.Answer, error) {
	return a.AskFn(ctx, sources, question)
}

var _ docqa.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of docqa.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, prompt string) (string, error)
}

func (a *Answerer) Answer(ctx context.Context, prompt string) (string, error) {
	return a.AnswerFn(ctx, prompt)
}
