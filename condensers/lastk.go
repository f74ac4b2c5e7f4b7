package condensers

import (
	"context"
	"fmt"

	"github.com/rickchristie/condense"
)

// LastK keeps all user events plus the last K events of any other
// role. User events define the task intent and are never silently
// dropped; only assistant/system/tool chatter is pruned.
//
// # Result Ordering
//
// The output is all user events in their original relative order,
// immediately followed by the kept non-user events in their original
// relative order:
//
//	Before: [user1, asst1, user2, asst2, asst3]   (k=2)
//	After:  [user1, user2, asst2, asst3]
//
// When user and non-user events interleave in the input, this is a
// regrouping, not an order-preserving subsequence — even when nothing
// is dropped. The grouping is observable behavior that callers may
// rely on and is kept deliberately.
//
// LastK is idempotent: re-applying it to its own output with the same
// K returns the output unchanged.
//
// Example:
//
//	// Keep all user events plus the last 10 others
//	condenser, err := condensers.NewLastK(10)
type LastK struct {
	k int
}

// NewLastK creates a LastK condenser keeping the last k non-user
// events. Returns condense.ErrInvalidConfiguration if k < 0.
func NewLastK(k int) (*LastK, error) {
	if k < 0 {
		return nil, fmt.Errorf(
			"%w: k must be >= 0, got %d",
			condense.ErrInvalidConfiguration, k,
		)
	}
	return &LastK{k: k}, nil
}

// Condense implements condense.Condenser.
func (c *LastK) Condense(
	_ context.Context,
	events []condense.Event,
) ([]condense.Event, error) {
	var anchors []condense.Event
	var others []condense.Event
	for _, event := range events {
		if event.Role == condense.RoleUser {
			anchors = append(anchors, event)
		} else {
			others = append(others, event)
		}
	}

	if len(others) > c.k {
		others = others[len(others)-c.k:]
	}

	result := make(
		[]condense.Event, 0, len(anchors)+len(others),
	)
	result = append(result, anchors...)
	result = append(result, others...)
	return result, nil
}

// Compile-time check.
var _ condense.Condenser = (*LastK)(nil)
