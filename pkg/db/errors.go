package db

import "errors"

// Domain error taxonomy. The postgres layer translates raw store failures into
// these before they reach any service; services and commands match with
// errors.Is and never inspect driver errors directly.
var (
	// ErrNotFound indicates the referenced event, volunteer, or participation
	// row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateParticipation indicates an insert violated the
	// (event_id, volunteer_id) uniqueness invariant.
	ErrDuplicateParticipation = errors.New("participation already exists for this event and volunteer")

	// ErrAlreadyRegistered indicates a self-registration was attempted twice.
	ErrAlreadyRegistered = errors.New("volunteer is already registered for this event")

	// ErrCapacityExceeded indicates a registration would exceed the event's
	// participant cap.
	ErrCapacityExceeded = errors.New("event has reached its participant capacity")

	// ErrValidation indicates input was rejected before any transaction began.
	ErrValidation = errors.New("validation failed")

	// ErrStoreUnavailable indicates a transaction or connection failure,
	// including timeouts. The engine does not retry; callers decide.
	ErrStoreUnavailable = errors.New("store unavailable")
)
