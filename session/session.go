// Package session drives a single question submission through extraction,
// context aggregation, prompt construction and the backend call.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/docqa"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Ensure Asker implements docqa.Asker at compile time.
var _ docqa.Asker = (*Asker)(nil)

// Asker implements docqa.Asker. Every call to Ask runs an independent
// session; nothing is shared or kept between calls.
type Asker struct {
	Extractor docqa.SourceExtractor
	Answerer  docqa.Answerer

	// Concurrency bounds parallel extraction. Values below 2 extract
	// sources sequentially.
	Concurrency int

	// OnEvent, if set, receives state transitions and per-source results.
	// Calls are serialized within a session.
	OnEvent docqa.SessionEventFunc
}

// Ask runs one session: Idle → Extracting → Aggregating → Prompting →
// Answering → Done, or Failed on missing input or a backend error.
func (a *Asker) Ask(ctx context.Context, sources []docqa.Source, question string) (*docqa.Answer, error) {
	s := &session{id: uuid.NewString(), state: docqa.StateIdle, onEvent: a.OnEvent}

	if len(sources) == 0 {
		return nil, s.fail(docqa.Errorf(docqa.EMISSINGINPUT, "at least one URL or PDF document required"))
	}
	if strings.TrimSpace(question) == "" {
		return nil, s.fail(docqa.Errorf(docqa.EMISSINGINPUT, "question required"))
	}

	s.transition(docqa.StateExtracting, nil)
	extractions := a.extractAll(ctx, s, sources)

	s.transition(docqa.StateAggregating, nil)
	contextText := docqa.BuildContext(extractions)

	s.transition(docqa.StatePrompting, nil)
	prompt := docqa.BuildPrompt(question, contextText)

	s.transition(docqa.StateAnswering, nil)
	text, err := a.Answerer.Answer(ctx, prompt)
	if err != nil {
		return nil, s.fail(backendError(err))
	}

	s.transition(docqa.StateDone, nil)

	var warnings []docqa.Extraction
	for _, e := range extractions {
		if e.Failed() {
			warnings = append(warnings, e)
		}
	}

	return &docqa.Answer{
		SessionID:     s.id,
		Text:          text,
		ContextDigest: docqa.Digest(contextText),
		Warnings:      warnings,
	}, nil
}

// extractAll extracts every source and returns one Extraction per source in
// submission order. Failures are recorded, never returned.
func (a *Asker) extractAll(ctx context.Context, s *session, sources []docqa.Source) []docqa.Extraction {
	results := make([]docqa.Extraction, len(sources))

	if a.Concurrency < 2 {
		for i, src := range sources {
			results[i] = a.extractOne(ctx, s, src)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(a.Concurrency)
	for i, src := range sources {
		g.Go(func() error {
			results[i] = a.extractOne(ctx, s, src)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (a *Asker) extractOne(ctx context.Context, s *session, src docqa.Source) docqa.Extraction {
	result := docqa.Extraction{Source: src}
	if err := src.Validate(); err != nil {
		result.Err = invalidSourceError(src, err)
	} else {
		result.Text, result.Err = a.Extractor.Extract(ctx, src)
	}

	s.emit(docqa.SessionEvent{
		Type:      docqa.EventExtracted,
		SessionID: s.id,
		Source:    src,
		Err:       result.Err,
	})
	return result
}

// invalidSourceError reports a source that cannot be extracted under the
// extraction codes: an unusable URL cannot be fetched and an empty PDF
// cannot be decoded.
func invalidSourceError(src docqa.Source, err error) error {
	if src.Kind == docqa.SourcePDF {
		return docqa.Errorf(docqa.EDECODE, "%s", docqa.ErrorMessage(err))
	}
	return docqa.Errorf(docqa.ENETWORK, "%s", docqa.ErrorMessage(err))
}

// backendError reports err under EBACKEND unless it already carries that code.
func backendError(err error) error {
	if docqa.ErrorCode(err) == docqa.EBACKEND {
		return err
	}
	return docqa.Errorf(docqa.EBACKEND, "%v", err)
}

// session tracks the state of one submission.
type session struct {
	id      string
	state   docqa.State
	onEvent docqa.SessionEventFunc
	mu      sync.Mutex
}

func (s *session) transition(to docqa.State, cause error) {
	from := s.state
	s.state = to
	s.emit(docqa.SessionEvent{
		Type:      docqa.EventTransition,
		SessionID: s.id,
		From:      from,
		To:        to,
		Err:       cause,
	})
}

func (s *session) fail(err error) error {
	s.transition(docqa.StateFailed, err)
	return err
}

func (s *session) emit(e docqa.SessionEvent) {
	if s.onEvent == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvent(e)
}
