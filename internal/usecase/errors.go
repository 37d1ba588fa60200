package usecase

import "errors"

var (
	// ErrNotFound covers unknown districts, providers and booking references.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyCancelled rejects a second cancellation of the same booking.
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	// ErrRouteFull is returned only when the reject-when-full booking policy
	// is enabled and the route has no seats left.
	ErrRouteFull = errors.New("no seats available on route")
)
