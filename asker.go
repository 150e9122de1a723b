package docqa

import "context"

// Answerer sends a rendered prompt to a generative-text backend.
type Answerer interface {
	// Answer makes exactly one backend call and returns the response text.
	// Every backend failure, including an empty response, returns EBACKEND.
	Answer(ctx context.Context, prompt string) (string, error)
}

// Answer is the result of a successful question submission.
type Answer struct {
	// SessionID identifies the submission in logs and events.
	SessionID string

	// Text is the backend's response.
	Text string

	// ContextDigest fingerprints the aggregated context sent to the backend.
	ContextDigest string

	// Warnings lists the sources whose extraction failed.
	Warnings []Extraction
}

// Asker answers natural language questions using the text of the given sources.
type Asker interface {
	// Ask extracts every source, builds the context and prompt, and queries the
	// backend once. Per-source failures are reported in Answer.Warnings.
	// Returns EMISSINGINPUT when the question or the sources are missing and
	// EBACKEND when the backend call fails. No partial answer is returned on error.
	Ask(ctx context.Context, sources []Source, question string) (*Answer, error)
}
