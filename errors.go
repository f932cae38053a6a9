package primefft

import "errors"

// Sentinel errors returned by plan creation and the reference transform.
var (
	// ErrInvalidLength is returned when the transform length is less than 2.
	ErrInvalidLength = errors.New("primefft: invalid transform length")

	// ErrNotPrime is returned when the transform length is composite.
	// Rader's algorithm is defined for prime lengths only.
	ErrNotPrime = errors.New("primefft: transform length is not prime")

	// ErrNilSlice is returned when a nil buffer is passed at creation.
	ErrNilSlice = errors.New("primefft: nil slice")

	// ErrLengthMismatch is returned when a buffer is shorter than the
	// transform length.
	ErrLengthMismatch = errors.New("primefft: slice length mismatch")
)
