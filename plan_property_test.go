package primefft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cwbudde/algo-primefft/fxp"
)

// The fixed-point path in the original C implementation accumulated the
// kernel product onto the transformed value instead of replacing it.
// These properties pin down replace as the correct semantics: for random
// inputs, the fixed-point plan must track both the floating-point plan
// and the direct DFT to within quantization error, which the accumulate
// variant (computing X'·(1+R) instead of X'·R) cannot do.

func TestFixedMatchesFloatAndDirect(t *testing.T) {
	// Q16.16 resolution is ~1.5e-5; the error grows with the kernel
	// magnitude sqrt(p) and the O(p²) accumulation inside the engine.
	const tol = 0.1

	rapid.Check(t, func(t *rapid.T) {
		p := rapid.SampledFrom([]int{3, 5, 7, 11, 13}).Draw(t, "p")

		x := make([]complex128, p)
		xq := make([]fxp.Complex, p)
		for i := range x {
			re := rapid.Float64Range(-1, 1).Draw(t, "re")
			im := rapid.Float64Range(-1, 1).Draw(t, "im")
			x[i] = complex(re, im)
			xq[i] = fxp.FromComplex128(x[i])
		}

		y := make([]complex128, p)
		yq := make([]fxp.Complex, p)

		ref, err := NewPlan(p, x, y, Forward)
		if err != nil {
			t.Fatalf("NewPlan: %v", err)
		}
		defer ref.Destroy()

		fixed, err := NewFixedPlan(p, xq, yq, Forward)
		if err != nil {
			t.Fatalf("NewFixedPlan: %v", err)
		}
		defer fixed.Destroy()

		ref.Execute()
		fixed.Execute()

		want := make([]complex128, p)
		if err := DFT(want, x, Forward); err != nil {
			t.Fatalf("DFT: %v", err)
		}

		for k := range y {
			got := fxp.ToComplex128(yq[k])
			assert.InDeltaf(t, real(y[k]), real(got), tol, "bin %d re, fixed vs float", k)
			assert.InDeltaf(t, imag(y[k]), imag(got), tol, "bin %d im, fixed vs float", k)
			assert.InDeltaf(t, real(want[k]), real(got), tol, "bin %d re, fixed vs direct", k)
			assert.InDeltaf(t, imag(want[k]), imag(got), tol, "bin %d im, fixed vs direct", k)
		}
	})
}

func TestPlanLinearity(t *testing.T) {
	const tol = 1e-9

	rapid.Check(t, func(t *rapid.T) {
		p := rapid.SampledFrom([]int{5, 7, 11, 13, 17}).Draw(t, "p")

		a := make([]complex128, p)
		b := make([]complex128, p)
		sum := make([]complex128, p)
		for i := range a {
			a[i] = complex(rapid.Float64Range(-1, 1).Draw(t, "are"), rapid.Float64Range(-1, 1).Draw(t, "aim"))
			b[i] = complex(rapid.Float64Range(-1, 1).Draw(t, "bre"), rapid.Float64Range(-1, 1).Draw(t, "bim"))
			sum[i] = a[i] + b[i]
		}

		x := make([]complex128, p)
		y := make([]complex128, p)

		plan, err := NewPlan(p, x, y, Forward)
		if err != nil {
			t.Fatalf("NewPlan: %v", err)
		}
		defer plan.Destroy()

		copy(x, a)
		plan.Execute()
		ya := make([]complex128, p)
		copy(ya, y)

		copy(x, b)
		plan.Execute()
		yb := make([]complex128, p)
		copy(yb, y)

		copy(x, sum)
		plan.Execute()

		for k := range y {
			assert.InDeltaf(t, real(ya[k]+yb[k]), real(y[k]), tol, "bin %d re", k)
			assert.InDeltaf(t, imag(ya[k]+yb[k]), imag(y[k]), tol, "bin %d im", k)
		}
	})
}
