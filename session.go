package docqa

// State is a step of a question submission's pipeline.
type State string

const (
	StateIdle        State = "idle"
	StateExtracting  State = "extracting"
	StateAggregating State = "aggregating"
	StatePrompting   State = "prompting"
	StateAnswering   State = "answering"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

// Terminal reports whether no further transition can follow the state.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// SessionEventType indicates the kind of session event.
type SessionEventType int

const (
	// EventTransition is emitted when a session moves between states.
	EventTransition SessionEventType = iota
	// EventExtracted is emitted when a single source finished extraction.
	EventExtracted
)

// SessionEvent reports progress of a question submission.
type SessionEvent struct {
	Type      SessionEventType
	SessionID string

	// From and To are set for EventTransition.
	From State
	To   State

	// Source is set for EventExtracted.
	Source Source

	// Err carries the extraction error for EventExtracted, or the failure
	// cause for a transition into StateFailed.
	Err error
}

// SessionEventFunc is a callback for session events.
type SessionEventFunc func(SessionEvent)

// MultiEventFunc returns a SessionEventFunc calling each non-nil fn in order.
func MultiEventFunc(fns ...SessionEventFunc) SessionEventFunc {
	return func(e SessionEvent) {
		for _, fn := range fns {
			if fn != nil {
				fn(e)
			}
		}
	}
}
