package primefft

import "github.com/cwbudde/algo-primefft/internal/fftypes"

// NewPlan creates a prime-length DFT plan over native complex arithmetic.
// n must be prime; x and y are the caller-owned input and output buffers
// and must hold at least n samples for the plan's lifetime.
//
// Example:
//
//	x := make([]complex128, 17)
//	y := make([]complex128, 17)
//	plan, err := primefft.NewPlan(17, x, y, primefft.Forward)
//	if err != nil {
//	    // ...
//	}
//	defer plan.Destroy()
//	plan.Execute() // reads x, writes y
func NewPlan[T Complex](n int, x, y []T, dir Direction) (*Plan[T], error) {
	return newPlan(n, x, y, dir, nativeArith[T]())
}

// nativeArith bundles the built-in complex operations for complex64 and
// complex128. FromComplex128 narrows to complex64 where T requires it.
func nativeArith[T Complex]() fftypes.Arith[T] {
	return fftypes.Arith[T]{
		FromComplex128: func(v complex128) T { return T(v) },
		Add:            func(a, b T) T { return a + b },
		Mul:            func(a, b T) T { return a * b },
		Scale:          func(v T, s float64) T { return v * T(complex(s, 0)) },
	}
}
