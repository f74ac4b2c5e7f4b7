package triggers

import "github.com/rickchristie/condense"

// Always fires on every call, making the wrapped condenser run on
// every CondensedHistory invocation.
//
// Example:
//
//	trigger := triggers.NewAlways()
type Always struct{}

// NewAlways creates an Always trigger.
func NewAlways() *Always {
	return &Always{}
}

// ShouldFire implements condense.Trigger.
func (*Always) ShouldFire(condense.State) bool {
	return true
}

// Compile-time check.
var _ condense.Trigger = (*Always)(nil)
