package condense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DefaultMetadataKey is the ExtraData key under which a
// [RollingCondenser] records condensation metadata unless overridden
// with [RollingCondenser.WithMetadataKey].
const DefaultMetadataKey = "condensations"

// RollingCondenser maintains a running condensation over an append-only
// history, invoking its wrapped [Condenser] only when its [Trigger]
// fires.
//
// On every CondensedHistory call it computes the events appended since
// the previous call (using a watermark into the external history),
// concatenates them onto the accumulated condensation, and either
// passes the result through unchanged (trigger not firing) or replaces
// it with the wrapped condenser's output. Either way the caller gets a
// complete, up-to-date view of history, while the possibly expensive
// condense step only runs when the trigger says so.
//
// # Metadata
//
// Each time the wrapped condenser runs, a metadata record (batch id,
// fire time, event counts, duration, error text on failure) is appended
// to a slice under the configured key in State.ExtraData(). The record
// is flushed even when the condense call fails.
//
// # Failure
//
// A condense failure is returned to the caller unchanged. Neither the
// accumulated condensation nor the watermark is advanced, so the next
// call retries over the same input plus anything appended since.
//
// # Concurrency
//
// One RollingCondenser serves one agent session and must be driven
// sequentially; concurrent CondensedHistory calls on the same instance
// are not supported and no internal locking is performed.
type RollingCondenser struct {
	condenser   Condenser
	trigger     Trigger
	clock       Clock
	metadataKey string

	condensation   []Event
	lastHistoryLen int
}

// NewRolling creates a RollingCondenser over the given condenser and
// trigger.
func NewRolling(condenser Condenser, trigger Trigger) *RollingCondenser {
	return &RollingCondenser{
		condenser:   condenser,
		trigger:     trigger,
		clock:       SystemClock{},
		metadataKey: DefaultMetadataKey,
	}
}

// WithClock sets the time source used for metadata timestamps.
// Returns the condenser for chaining.
func (r *RollingCondenser) WithClock(clock Clock) *RollingCondenser {
	r.clock = clock
	return r
}

// WithMetadataKey sets the ExtraData key under which condensation
// metadata is recorded. Returns the condenser for chaining.
func (r *RollingCondenser) WithMetadataKey(key string) *RollingCondenser {
	r.metadataKey = key
	return r
}

// CondensedHistory returns the up-to-date condensed view of the
// state's history.
//
// Returns [ErrHistoryConsistency] if the history is shorter than at
// the previous call. Returns the wrapped condenser's error unchanged
// if the trigger fired and the condense call failed; in that case no
// internal state is committed.
func (r *RollingCondenser) CondensedHistory(
	ctx context.Context,
	state State,
) ([]Event, error) {
	history := state.History()
	if len(history) < r.lastHistoryLen {
		return nil, fmt.Errorf(
			"%w: observed %d events, previously %d",
			ErrHistoryConsistency,
			len(history), r.lastHistoryLen,
		)
	}

	newEvents := history[r.lastHistoryLen:]
	current := make([]Event, 0, len(r.condensation)+len(newEvents))
	current = append(current, r.condensation...)
	current = append(current, newEvents...)

	if !r.trigger.ShouldFire(state) {
		r.condensation = current
		r.lastHistoryLen = len(history)
		return current, nil
	}

	result, err := r.condenseRecorded(ctx, state, current)
	if err != nil {
		return nil, err
	}

	r.condensation = result
	r.lastHistoryLen = len(history)
	return result, nil
}

// Condense implements [Condenser] by delegating to the wrapped
// condenser, bypassing the trigger and the internal state.
func (r *RollingCondenser) Condense(
	ctx context.Context,
	events []Event,
) ([]Event, error) {
	return r.condenser.Condense(ctx, events)
}

// condenseRecorded runs the wrapped condenser inside a scoped metadata
// batch. The record is appended to state.ExtraData() even when the
// condense call fails.
func (r *RollingCondenser) condenseRecorded(
	ctx context.Context,
	state State,
	events []Event,
) (result []Event, err error) {
	start := r.clock.Now()
	record := map[string]any{
		"id":        uuid.NewString(),
		"fired_at":  start,
		"events_in": len(events),
	}
	defer func() {
		record["duration_ms"] = r.clock.Now().Sub(start).
			Milliseconds()
		if err != nil {
			record["error"] = err.Error()
		} else {
			record["events_out"] = len(result)
		}

		extra := state.ExtraData()
		batches, _ := extra[r.metadataKey].([]map[string]any)
		extra[r.metadataKey] = append(batches, record)
	}()

	result, err = r.condenser.Condense(ctx, events)
	return result, err
}

// Compile-time check.
var _ Condenser = (*RollingCondenser)(nil)
