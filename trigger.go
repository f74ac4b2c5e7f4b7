package condense

// Trigger decides WHEN condensation should run.
//
// A [RollingCondenser] checks its trigger on every CondensedHistory call,
// before invoking the wrapped [Condenser]. If ShouldFire returns false
// the call passes the accumulated history through unchanged.
//
// # Available Implementations
//
//   - triggers.NewAlways: constant true
//   - triggers.NewHistoryLength: fires once the history reaches a
//     minimum length
//   - triggers.NewTokenThreshold: fires once the approximate token
//     count of the history content reaches a threshold
//
// # Implementing Custom Triggers
//
//	type EveryOtherCall struct {
//	    calls int
//	}
//
//	func (t *EveryOtherCall) ShouldFire(state condense.State) bool {
//	    t.calls++
//	    return t.calls%2 == 0
//	}
type Trigger interface {
	// ShouldFire returns true if condensation should run now.
	//
	// Implementations must treat the state as read-only: they may
	// inspect the history and its content but must not mutate
	// anything.
	ShouldFire(state State) bool
}
