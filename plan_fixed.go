package primefft

import (
	"github.com/cwbudde/algo-primefft/fxp"
	"github.com/cwbudde/algo-primefft/internal/fftypes"
)

// NewFixedPlan creates a prime-length DFT plan over the saturating
// fixed-point representation in package fxp. The kernel exponentials are
// quantized at creation; all arithmetic during execution saturates
// silently instead of overflowing.
func NewFixedPlan(n int, x, y []fxp.Complex, dir Direction) (*Plan[fxp.Complex], error) {
	return newPlan(n, x, y, dir, fixedArith())
}

func fixedArith() fftypes.Arith[fxp.Complex] {
	return fftypes.Arith[fxp.Complex]{
		FromComplex128: fxp.FromComplex128,
		Add:            fxp.Add,
		Mul:            fxp.Mul,
		Scale:          fxp.Scale,
	}
}
