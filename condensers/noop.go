package condensers

import (
	"context"

	"github.com/rickchristie/condense"
)

// NoOp returns its input unchanged. It is the identity strategy, used
// as the default when no reduction is wanted.
//
// Example:
//
//	condenser := condensers.NewNoOp()
type NoOp struct{}

// NewNoOp creates a NoOp condenser.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Condense implements condense.Condenser.
func (c *NoOp) Condense(
	_ context.Context,
	events []condense.Event,
) ([]condense.Event, error) {
	return events, nil
}

// Compile-time check.
var _ condense.Condenser = (*NoOp)(nil)
