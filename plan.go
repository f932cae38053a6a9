package primefft

import (
	"math"

	"github.com/cwbudde/algo-primefft/internal/fft"
	"github.com/cwbudde/algo-primefft/internal/fftypes"
	m "github.com/cwbudde/algo-primefft/internal/math"
	"github.com/cwbudde/algo-primefft/internal/nt"
)

// Plan is a prime-length DFT plan using Rader's algorithm.
//
// The plan is bound to caller-owned input and output buffers at creation;
// the buffers must remain valid for the plan's lifetime. Everything the
// plan owns — the generator sequence, the precomputed convolution kernel,
// the two scratch buffers, and the two length-(p-1) sub-plans — is fixed
// at creation except for the scratch contents, which are overwritten on
// every Execute. Concurrent Execute calls on one plan therefore race;
// distinct plans are fully independent.
type Plan[T any] struct {
	n   int // prime transform length
	dir Direction

	x, y []T // caller-owned sample buffers, length n

	seq    []int // seq[i] = g^(i+1) mod n, a permutation of {1..n-1}
	kernel []T   // forward sub-transform of the exponential kernel

	xPrime []T // sub-transform input scratch, length n-1
	xHat   []T // sub-transform output scratch, length n-1

	sub  *fft.Plan[T] // forward, xPrime -> xHat
	isub *fft.Plan[T] // reverse, xHat -> xPrime

	arith fftypes.Arith[T]
}

// newPlan builds a Rader plan over an arbitrary arithmetic bundle. The
// exported constructors in plan_float.go and plan_fixed.go pick the
// bundle; everything below is representation-agnostic.
func newPlan[T any](n int, x, y []T, dir Direction, arith fftypes.Arith[T]) (*Plan[T], error) {
	if n < 2 {
		return nil, ErrInvalidLength
	}
	if x == nil || y == nil {
		return nil, ErrNilSlice
	}
	if len(x) < n || len(y) < n {
		return nil, ErrLengthMismatch
	}
	if !nt.IsPrime(n) {
		return nil, ErrNotPrime
	}

	q := &Plan[T]{
		n:      n,
		dir:    dir,
		x:      x,
		y:      y,
		arith:  arith,
		xPrime: make([]T, n-1),
		xHat:   make([]T, n-1),
	}

	// Two length-(n-1) sub-plans, created once and reused by every
	// Execute: forward xPrime -> xHat, reverse xHat -> xPrime.
	var err error

	q.sub, err = fft.NewPlan(n-1, q.xPrime, q.xHat, fftypes.Forward, arith)
	if err != nil {
		return nil, err
	}

	q.isub, err = fft.NewPlan(n-1, q.xHat, q.xPrime, fftypes.Reverse, arith)
	if err != nil {
		q.sub.Destroy()
		return nil, err
	}

	// The generator sequence: powers of a primitive root of n. Indexing
	// the input by this sequence is what turns the DFT into a circular
	// convolution.
	g := nt.PrimitiveRoot(n)

	q.seq = make([]int, n-1)
	for i := range q.seq {
		q.seq[i] = nt.ModPow(g, i+1, n)
	}

	// Transform the exponential kernel {exp(dir·2πi·seq[i]/n)} once.
	// Invariants: kernel[0] = -1 and |kernel[k]| = sqrt(n) for k != 0.
	for i, s := range q.seq {
		angle := float64(dir) * m.TwoPi * float64(s) / float64(n)
		q.xPrime[i] = arith.FromComplex128(complex(math.Cos(angle), math.Sin(angle)))
	}

	q.sub.Execute()

	q.kernel = make([]T, n-1)
	copy(q.kernel, q.xHat)

	return q, nil
}

// Len returns the prime transform length.
func (q *Plan[T]) Len() int {
	return q.n
}

// Direction returns the transform direction.
func (q *Plan[T]) Direction() Direction {
	return q.dir
}

// Execute transforms the n samples in the input buffer into the output
// buffer. It may be called repeatedly on the same plan, but not
// concurrently: the shared scratch buffers are mutated in place.
func (q *Plan[T]) Execute() {
	n := q.n

	// Permute the input by the reversed generator sequence. The reversal
	// aligns the phase with the kernel's convolution ordering.
	for i := range q.xPrime {
		q.xPrime[i] = q.x[q.seq[n-2-i]]
	}

	q.sub.Execute()

	// Pointwise multiply with the precomputed kernel: multiplication here
	// is circular convolution in the original domain.
	for i := range q.xHat {
		q.xHat[i] = q.arith.Mul(q.xHat[i], q.kernel[i])
	}

	q.isub.Execute()

	// DC bin: the direct sum of all n inputs. Index 0 is excluded from
	// the permutation, so this cannot come from the sub-transforms.
	dc := q.x[0]
	for i := 1; i < n; i++ {
		dc = q.arith.Add(dc, q.x[i])
	}
	q.y[0] = dc

	// De-permute, undo the unnormalized reverse sub-transform, and
	// restore the x[0] offset that the reduction factors out of every
	// non-zero bin.
	scale := 1 / float64(n-1)
	for i, k := range q.seq {
		q.y[k] = q.arith.Add(q.arith.Scale(q.xPrime[i], scale), q.x[0])
	}
}

// Destroy releases the plan-owned sequence, kernel, and scratch buffers
// and destroys both sub-plans. The caller-owned input and output buffers
// are not touched. Safe to call more than once; Execute after Destroy is
// invalid.
func (q *Plan[T]) Destroy() {
	q.seq = nil
	q.kernel = nil
	q.xPrime = nil
	q.xHat = nil

	if q.sub != nil {
		q.sub.Destroy()
		q.sub = nil
	}
	if q.isub != nil {
		q.isub.Destroy()
		q.isub = nil
	}
}
