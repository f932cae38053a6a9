package math

import "math"

// Mathematical constants for transform computations.

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi
