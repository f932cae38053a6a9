package fftypes

// Complex is the type constraint for native floating-point complex sample
// types supported by the transforms.
type Complex interface {
	~complex64 | ~complex128
}

// Float is the type constraint for floating-point component types.
type Float interface {
	~float32 | ~float64
}

// Direction selects the sign of the transform exponent. The numeric value
// is the sign itself, so it can be used directly in angle computations.
type Direction int

const (
	// Forward selects the forward transform, exp(-2πi jk/n).
	Forward Direction = -1
	// Reverse selects the unnormalized inverse transform, exp(+2πi jk/n).
	Reverse Direction = 1
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "unknown"
	}
}
