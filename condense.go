package condense

import "context"

// Condenser decides WHAT to keep from a growing event history.
//
// Given an ordered sequence of events, a Condenser produces a reduced
// ordered sequence carrying the same semantic content in less space. The
// input slice is never modified.
//
// All implementations must tolerate an empty input without failing.
// Condensers are not required to be idempotent in general — the
// LLM-backed variant is not — but the deterministic variants
// (condensers.NoOp, condensers.LastK) return their own output unchanged
// when re-applied.
//
// # Available Implementations
//
//   - condensers.NewNoOp: returns input unchanged
//   - condensers.NewLastK: keeps all user events plus the last K others
//   - condensers.NewLLM: summarizes everything into one assistant event
//
// # Implementing Custom Condensers
//
//	type FirstEventCondenser struct{}
//
//	func (c *FirstEventCondenser) Condense(
//	    ctx context.Context,
//	    events []condense.Event,
//	) ([]condense.Event, error) {
//	    if len(events) == 0 {
//	        return events, nil
//	    }
//	    return events[:1], nil
//	}
type Condenser interface {
	// Condense reduces the given event sequence.
	//
	// The context is passed through to any underlying I/O (e.g., the
	// model call made by the LLM-backed variant); deterministic
	// variants ignore it.
	Condense(ctx context.Context, events []Event) ([]Event, error)
}
