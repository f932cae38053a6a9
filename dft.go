package primefft

import (
	"math"

	m "github.com/cwbudde/algo-primefft/internal/math"
)

// DFT computes an unnormalized discrete Fourier transform of any length
// directly from the definition, in O(n²) time. It is the library's
// reference semantics: every plan must agree with it within numerical
// tolerance. dst and src must not alias.
func DFT[T Complex](dst, src []T, dir Direction) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}
	if len(dst) < len(src) {
		return ErrLengthMismatch
	}

	n := len(src)
	for k := 0; k < n; k++ {
		var acc T
		for j := 0; j < n; j++ {
			angle := float64(dir) * m.TwoPi * float64(j*k%n) / float64(n)
			acc += src[j] * T(complex(math.Cos(angle), math.Sin(angle)))
		}
		dst[k] = acc
	}

	return nil
}
