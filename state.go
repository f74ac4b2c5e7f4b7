package condense

// State is the externally-owned agent session state consumed by this
// package. The history is append-only: it only ever grows between calls
// to [RollingCondenser.CondensedHistory] on the same instance.
//
// ExtraData is a mutable scratch area owned by the same session. The
// RollingCondenser records condensation metadata into it under its
// configured key; everything else in the map belongs to the caller.
type State interface {
	// History returns the ordered, append-only event history.
	// Callers must not rely on the returned slice being a copy.
	History() []Event

	// ExtraData returns the session's auxiliary metadata map.
	// Never nil.
	ExtraData() map[string]any
}

// BasicState is a minimal single-owner State implementation. It is
// suitable for tests and for control loops that do not already carry
// their own session state object.
//
// BasicState is not safe for concurrent use.
type BasicState struct {
	history []Event
	extra   map[string]any
}

// NewBasicState creates an empty BasicState.
func NewBasicState() *BasicState {
	return &BasicState{
		extra: make(map[string]any),
	}
}

// Append adds events to the end of the history.
func (s *BasicState) Append(events ...Event) {
	s.history = append(s.history, events...)
}

// History implements State.
func (s *BasicState) History() []Event {
	return s.history
}

// ExtraData implements State.
func (s *BasicState) ExtraData() map[string]any {
	return s.extra
}

// Compile-time check.
var _ State = (*BasicState)(nil)
