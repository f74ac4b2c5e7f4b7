package triggers

import (
	"fmt"

	"github.com/rickchristie/condense"
)

// HistoryLength fires once the state's history reaches a minimum
// number of events. It keeps firing from then on; with a RollingCondenser
// this is fine because the accumulated condensation, not the external
// history, is what gets re-condensed.
//
// Example:
//
//	// Condense once the history holds 40 events or more
//	trigger, err := triggers.NewHistoryLength(40)
type HistoryLength struct {
	minLength int
}

// NewHistoryLength creates a HistoryLength trigger. Returns
// condense.ErrInvalidConfiguration if minLength <= 0.
func NewHistoryLength(minLength int) (*HistoryLength, error) {
	if minLength <= 0 {
		return nil, fmt.Errorf(
			"%w: min_length must be positive, got %d",
			condense.ErrInvalidConfiguration, minLength,
		)
	}
	return &HistoryLength{minLength: minLength}, nil
}

// ShouldFire implements condense.Trigger.
func (t *HistoryLength) ShouldFire(state condense.State) bool {
	return len(state.History()) >= t.minLength
}

// Compile-time check.
var _ condense.Trigger = (*HistoryLength)(nil)
