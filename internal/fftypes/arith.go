package fftypes

// Arith bundles the complex arithmetic a transform runs on. Transforms are
// written once against this bundle and instantiated per representation:
// native complex64/complex128, or the saturating fixed-point type.
// The caller guarantees every field is non-nil.
type Arith[T any] struct {
	// FromComplex128 converts a floating-point source value into the
	// working representation, quantizing if necessary.
	FromComplex128 func(v complex128) T

	// Add returns a+b. Saturating in the fixed-point instantiation.
	Add func(a, b T) T

	// Mul returns the complex product a*b. Saturating in the fixed-point
	// instantiation.
	Mul func(a, b T) T

	// Scale returns v scaled by the real factor s.
	Scale func(v T, s float64) T
}
