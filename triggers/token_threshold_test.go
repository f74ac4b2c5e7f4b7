package triggers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rickchristie/condense"
)

func TestTokenThreshold_ShouldFire(t *testing.T) {
	trigger, err := NewTokenThreshold(50)
	assert.NoError(t, err)

	// Empty history: nothing to count.
	assert.False(t, trigger.ShouldFire(condense.NewBasicState()))

	// A couple of short messages stay below 50 tokens.
	small := condense.NewBasicState()
	small.Append(
		condense.Event{Role: condense.RoleUser, Content: "hi"},
		condense.Event{
			Role:    condense.RoleAssistant,
			Content: "hello",
		},
	)
	assert.False(t, trigger.ShouldFire(small))

	// A long message crosses the threshold on its own.
	large := condense.NewBasicState()
	large.Append(condense.Event{
		Role:    condense.RoleAssistant,
		Content: strings.Repeat("many words here ", 100),
	})
	assert.True(t, trigger.ShouldFire(large))
}

func TestTokenThreshold_AccumulatesAcrossEvents(t *testing.T) {
	trigger, err := NewTokenThreshold(100)
	assert.NoError(t, err)

	state := condense.NewBasicState()
	chunk := strings.Repeat("some more text ", 10)
	for trigger.ShouldFire(state) == false &&
		len(state.History()) < 100 {
		state.Append(condense.Event{
			Role:    condense.RoleAssistant,
			Content: chunk,
		})
	}

	// Each chunk is far below the threshold; firing means the
	// counts accumulated across events.
	assert.True(t, trigger.ShouldFire(state))
	assert.Greater(t, len(state.History()), 1)
}

func TestTokenThreshold_InvalidMaxTokens(t *testing.T) {
	tests := []struct {
		name      string
		maxTokens int
	}{
		{name: "zero", maxTokens: 0},
		{name: "negative", maxTokens: -100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trigger, err := NewTokenThreshold(tc.maxTokens)
			assert.Nil(t, trigger)
			assert.ErrorIs(t,
				err, condense.ErrInvalidConfiguration,
			)
		})
	}
}
