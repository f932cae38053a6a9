package primefft

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

// randomComplex128 returns n samples with components uniform in [-1, 1),
// deterministic for a given seed.
func randomComplex128(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}

	return out
}

// maxAbsDiff returns the largest per-bin distance between two spectra.
func maxAbsDiff(a, b []complex128) float64 {
	maxDiff := 0.0
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff
}

// testPrimes covers the smallest primes, a prime whose p-1 is highly
// composite (13), one where p-1 has a large prime factor (23 -> 2·11),
// and a three-digit prime.
var testPrimes = []int{2, 3, 5, 7, 11, 13, 17, 23, 29, 101}
