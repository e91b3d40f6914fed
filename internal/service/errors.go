package service

import "errors"

// Error kinds surfaced by the services. Handlers translate these into
// protocol responses; everything else is treated as an internal error.
var (
	// ErrNotFound is returned when a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned on a uniqueness violation, such as a
	// duplicate ingredient name or an already-registered email.
	ErrConflict = errors.New("already exists")

	// ErrValidation is returned when input violates a domain invariant,
	// such as a negative quantity or an unrecognized storage location.
	ErrValidation = errors.New("validation failed")
)
