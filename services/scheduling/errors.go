package scheduling

import "fmt"

// NotFoundError signals that no published site owns the requested slug, or
// that a referenced booking does not exist.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %q", e.Ref)
}

// ValidationError signals malformed booking or rule input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// SlotUnavailableError signals that the storage layer rejected the insert
// because the interval is already booked. The caller must re-fetch slots and
// pick a fresh one; the prior listing is known stale.
type SlotUnavailableError struct{}

func (e *SlotUnavailableError) Error() string {
	return "slot no longer available"
}

// PersistenceError wraps any other storage failure, including timeouts. The
// intake is never retried on it: a timed-out insert may have landed, and
// re-issuing a non-idempotent booking insert risks duplicate reservations.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence error: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
