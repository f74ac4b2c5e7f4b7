package triggers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rickchristie/condense"
)

func stateWithEvents(n int) *condense.BasicState {
	state := condense.NewBasicState()
	for i := 0; i < n; i++ {
		state.Append(condense.Event{
			Role:    condense.RoleAssistant,
			Content: "event",
		})
	}
	return state
}

func TestAlways_ShouldFire(t *testing.T) {
	trigger := NewAlways()

	assert.True(t, trigger.ShouldFire(stateWithEvents(0)))
	assert.True(t, trigger.ShouldFire(stateWithEvents(1)))
	assert.True(t, trigger.ShouldFire(stateWithEvents(1000)))
}
