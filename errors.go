package condense

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package. Match with [errors.Is].
var (
	// ErrDuplicateRegistration is returned by Registry.Register when
	// the name is already taken. The existing entry is left intact.
	ErrDuplicateRegistration = errors.New(
		"condenser already registered with this name",
	)

	// ErrUnknownStrategy is returned by Registry.Get and
	// Registry.Build for a name with no registered factory.
	ErrUnknownStrategy = errors.New(
		"no condenser registered with this name",
	)

	// ErrInvalidConfiguration is returned at construction time for
	// out-of-range or malformed parameters. It is never returned
	// from Condense or ShouldFire.
	ErrInvalidConfiguration = errors.New(
		"invalid condenser configuration",
	)

	// ErrHistoryConsistency is returned by
	// RollingCondenser.CondensedHistory when the observed history is
	// shorter than at the previous call, violating the append-only
	// contract.
	ErrHistoryConsistency = errors.New(
		"history shrank since last observed length",
	)
)

// CondensationError wraps a failure from the underlying summarization
// call (transport error, malformed response). The original error is
// preserved via Unwrap, so errors.Is and errors.As see through it.
//
// This package never retries and never falls back to pass-through on a
// condensation failure; the error is surfaced to the caller unchanged.
type CondensationError struct {
	Err error
}

func (e *CondensationError) Error() string {
	return fmt.Sprintf("condensation failed: %v", e.Err)
}

func (e *CondensationError) Unwrap() error {
	return e.Err
}
