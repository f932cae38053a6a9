package primefft

import "github.com/cwbudde/algo-primefft/internal/fftypes"

// Complex is a type constraint for the native complex number types
// supported by the floating-point plans. The canonical definition is in
// internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for floating-point component types.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Direction selects forward or reverse transformation.
type Direction = fftypes.Direction

const (
	// Forward selects the forward transform, exp(-2πi jk/n).
	Forward = fftypes.Forward
	// Reverse selects the unnormalized inverse transform, exp(+2πi jk/n).
	Reverse = fftypes.Reverse
)
