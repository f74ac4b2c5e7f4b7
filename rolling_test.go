package condense

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// firstEventCondenser keeps only the first event. Deterministic stand-in
// for an expensive strategy.
type firstEventCondenser struct {
	calls  int
	inputs [][]Event
}

func (c *firstEventCondenser) Condense(
	_ context.Context,
	events []Event,
) ([]Event, error) {
	c.calls++
	c.inputs = append(c.inputs, events)
	if len(events) == 0 {
		return events, nil
	}
	return events[:1], nil
}

// failingCondenser fails the first failUntil calls, then behaves like
// firstEventCondenser.
type failingCondenser struct {
	failUntil int
	calls     int
	inputs    [][]Event
	err       error
}

func (c *failingCondenser) Condense(
	_ context.Context,
	events []Event,
) ([]Event, error) {
	c.calls++
	c.inputs = append(c.inputs, events)
	if c.calls <= c.failUntil {
		return nil, c.err
	}
	return events[:1], nil
}

// minLengthTrigger fires once the history reaches minLength. Local copy
// to keep this package free of a dependency on the triggers package.
type minLengthTrigger struct {
	minLength int
}

func (t *minLengthTrigger) ShouldFire(state State) bool {
	return len(state.History()) >= t.minLength
}

func makeEvents(n int) []Event {
	events := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, Event{
			Role:    RoleAssistant,
			Content: fmt.Sprintf("event %d", i),
		})
	}
	return events
}

// Feeding events one at a time with a min-length trigger: calls below
// the threshold return the full accumulated list unchanged; calls at or
// above it return the condensed result.
func TestRollingCondenser_HistoryLengthTrigger(t *testing.T) {
	condenser := &firstEventCondenser{}
	rolling := NewRolling(
		condenser, &minLengthTrigger{minLength: 3},
	)
	state := NewBasicState()

	events := makeEvents(5)
	for i, event := range events {
		state.Append(event)
		result, err := rolling.CondensedHistory(
			context.Background(), state,
		)
		assert.NoError(t, err)

		if i < 2 {
			// Below threshold: full history, unchanged.
			assert.Equal(t, events[:i+1], result)
		} else {
			// At or above threshold: only the first event of
			// the accumulated set survives.
			assert.Equal(t, events[:1], result)
		}
	}

	// Fired at lengths 3, 4, 5.
	assert.Equal(t, 3, condenser.calls)
}

// Once a condensation has happened, subsequent calls condense the
// accumulated condensation plus the delta, not the full history.
func TestRollingCondenser_CondensesAccumulatedPlusDelta(t *testing.T) {
	condenser := &firstEventCondenser{}
	rolling := NewRolling(
		condenser, &minLengthTrigger{minLength: 3},
	)
	state := NewBasicState()

	events := makeEvents(4)
	state.Append(events[:3]...)
	_, err := rolling.CondensedHistory(context.Background(), state)
	assert.NoError(t, err)
	assert.Equal(t, events[:3], condenser.inputs[0])

	state.Append(events[3])
	_, err = rolling.CondensedHistory(context.Background(), state)
	assert.NoError(t, err)
	// Previous condensation [event 0] + delta [event 3].
	assert.Equal(t,
		[]Event{events[0], events[3]}, condenser.inputs[1],
	)
}

func TestRollingCondenser_PassThroughAccumulates(t *testing.T) {
	condenser := &firstEventCondenser{}
	rolling := NewRolling(
		condenser, &minLengthTrigger{minLength: 100},
	)
	state := NewBasicState()

	events := makeEvents(5)
	for i, event := range events {
		state.Append(event)
		result, err := rolling.CondensedHistory(
			context.Background(), state,
		)
		assert.NoError(t, err)
		assert.Equal(t, events[:i+1], result)
	}

	assert.Equal(t, 0, condenser.calls)
}

func TestRollingCondenser_HistoryShrinkFails(t *testing.T) {
	condenser := &firstEventCondenser{}
	rolling := NewRolling(
		condenser, &minLengthTrigger{minLength: 100},
	)
	state := NewBasicState()

	state.Append(makeEvents(3)...)
	_, err := rolling.CondensedHistory(context.Background(), state)
	assert.NoError(t, err)

	// Simulate a history that shrank between calls.
	state.history = state.history[:1]
	_, err = rolling.CondensedHistory(context.Background(), state)
	assert.ErrorIs(t, err, ErrHistoryConsistency)
}

// A condense failure must not advance the watermark or the accumulated
// condensation: the retry sees the same input plus anything appended
// since.
func TestRollingCondenser_NoCommitOnFailure(t *testing.T) {
	condenseErr := errors.New("model unavailable")
	condenser := &failingCondenser{
		failUntil: 1,
		err:       condenseErr,
	}
	rolling := NewRolling(
		condenser, &minLengthTrigger{minLength: 3},
	)
	state := NewBasicState()

	events := makeEvents(4)
	state.Append(events[:3]...)
	_, err := rolling.CondensedHistory(context.Background(), state)
	assert.ErrorIs(t, err, condenseErr)
	assert.Equal(t, events[:3], condenser.inputs[0])

	// Retry with one more event appended: the failed call committed
	// nothing, so the full uncondensed prefix is still in the input.
	state.Append(events[3])
	result, err := rolling.CondensedHistory(
		context.Background(), state,
	)
	assert.NoError(t, err)
	assert.Equal(t, events[:4], condenser.inputs[1])
	assert.Equal(t, events[:1], result)
}

func TestRollingCondenser_MetadataRecorded(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	condenser := &firstEventCondenser{}
	rolling := NewRolling(
		condenser, &minLengthTrigger{minLength: 3},
	).WithClock(NewMockClock(fixed))
	state := NewBasicState()

	// Below threshold: no metadata recorded.
	state.Append(makeEvents(2)...)
	_, err := rolling.CondensedHistory(context.Background(), state)
	assert.NoError(t, err)
	assert.NotContains(t, state.ExtraData(), DefaultMetadataKey)

	// Trigger fires: one batch recorded.
	state.Append(Event{Role: RoleAssistant, Content: "event 2"})
	_, err = rolling.CondensedHistory(context.Background(), state)
	assert.NoError(t, err)

	meta := state.ExtraData()[DefaultMetadataKey]
	batches, ok := meta.([]map[string]any)
	assert.True(t, ok)
	assert.Len(t, batches, 1)
	assert.NotEmpty(t, batches[0]["id"])
	assert.Equal(t, fixed, batches[0]["fired_at"])
	assert.Equal(t, 3, batches[0]["events_in"])
	assert.Equal(t, 1, batches[0]["events_out"])
	assert.NotContains(t, batches[0], "error")
}

// The metadata batch is flushed even when the condense call fails.
func TestRollingCondenser_MetadataFlushedOnFailure(t *testing.T) {
	condenseErr := errors.New("model unavailable")
	condenser := &failingCondenser{
		failUntil: 1,
		err:       condenseErr,
	}
	rolling := NewRolling(
		condenser, &minLengthTrigger{minLength: 1},
	).WithMetadataKey("memory_meta")
	state := NewBasicState()

	state.Append(makeEvents(1)...)
	_, err := rolling.CondensedHistory(context.Background(), state)
	assert.ErrorIs(t, err, condenseErr)

	meta := state.ExtraData()["memory_meta"]
	batches, ok := meta.([]map[string]any)
	assert.True(t, ok)
	assert.Len(t, batches, 1)
	assert.Equal(t, 1, batches[0]["events_in"])
	assert.Equal(t,
		condenseErr.Error(), batches[0]["error"],
	)
	assert.NotContains(t, batches[0], "events_out")

	// The next successful run appends a second batch.
	state.Append(makeEvents(1)...)
	_, err = rolling.CondensedHistory(context.Background(), state)
	assert.NoError(t, err)
	batches = state.ExtraData()["memory_meta"].([]map[string]any)
	assert.Len(t, batches, 2)
}

func TestRollingCondenser_CondenseDelegates(t *testing.T) {
	condenser := &firstEventCondenser{}
	rolling := NewRolling(
		condenser, &minLengthTrigger{minLength: 100},
	)

	events := makeEvents(3)
	result, err := rolling.Condense(context.Background(), events)
	assert.NoError(t, err)
	assert.Equal(t, events[:1], result)
	assert.Equal(t, 1, condenser.calls)
}
