package combsolve

import "errors"

// Sentinel errors returned by Solve. Infeasible is deliberately absent:
// it is not an error, it is represented by Solution.Count == 0 with
// empty enumeration fields.
var (
	// ErrInvalidConfig is returned synchronously, before any work
	// starts, for an unknown ReturnType or Method.
	ErrInvalidConfig = errors.New("combsolve: invalid config")

	// ErrCancelled is returned when a timeout or explicit cancellation
	// fired during the search. Partial results are always discarded.
	ErrCancelled = errors.New("combsolve: cancelled")

	// ErrInternal surfaces a violated search invariant (should never
	// occur in practice — see backtrack.ErrInvariant).
	ErrInternal = errors.New("combsolve: internal invariant violation")
)
