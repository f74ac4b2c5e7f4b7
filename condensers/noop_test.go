package condensers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rickchristie/condense"
)

func TestNoOp_Condense(t *testing.T) {
	tests := []struct {
		name   string
		events []condense.Event
	}{
		{
			name:   "empty input",
			events: []condense.Event{},
		},
		{
			name: "mixed roles unchanged",
			events: []condense.Event{
				{Role: condense.RoleUser, Content: "a"},
				{Role: condense.RoleAssistant, Content: "b"},
				{Role: condense.RoleSystem, Content: "c"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			condenser := NewNoOp()
			result, err := condenser.Condense(
				context.Background(), tc.events,
			)
			assert.NoError(t, err)
			assert.Equal(t, tc.events, result)
		})
	}
}
