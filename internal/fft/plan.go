// Package fft implements the generic composite-length sub-transform engine
// used by the prime-length plans. Plans are bound to fixed input and output
// buffers at creation and are unnormalized in both directions: executing a
// forward plan followed by a reverse plan scales the signal by n.
//
// The engine is written once against the arithmetic capability bundle, so
// the same recursion serves native complex and fixed-point samples. It uses
// recursive mixed-radix decimation in time; prime radices degenerate to the
// direct O(r²) combine, which keeps every length n >= 1 valid.
package fft

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-primefft/internal/fftypes"
	m "github.com/cwbudde/algo-primefft/internal/math"
)

// Sentinel errors returned by plan creation.
var (
	// ErrInvalidLength is returned when the transform size is not positive.
	ErrInvalidLength = errors.New("fft: invalid transform length")

	// ErrNilBuffer is returned when the input or output buffer is nil.
	ErrNilBuffer = errors.New("fft: nil buffer")

	// ErrShortBuffer is returned when a buffer is shorter than the
	// transform length.
	ErrShortBuffer = errors.New("fft: buffer shorter than transform length")
)

// Plan is an unnormalized transform of fixed length bound to its buffers.
// Execute reads the input buffer and writes the output buffer; the plan
// owns its twiddle table and scratch, the caller owns the buffers.
//
// A Plan is not safe for concurrent Execute calls: the shared scratch
// buffer is mutated on every call. Distinct plans are independent.
type Plan[T any] struct {
	n       int
	dir     fftypes.Direction
	in, out []T
	arith   fftypes.Arith[T]

	twiddle []T   // n roots of unity with the direction sign baked in
	factors []int // ascending prime factorization of n
	scratch []T
}

// NewPlan creates a length-n transform plan reading in and writing out.
// The buffers must remain valid for the plan's lifetime.
func NewPlan[T any](n int, in, out []T, dir fftypes.Direction, arith fftypes.Arith[T]) (*Plan[T], error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}
	if in == nil || out == nil {
		return nil, ErrNilBuffer
	}
	if len(in) < n || len(out) < n {
		return nil, ErrShortBuffer
	}

	p := &Plan[T]{
		n:       n,
		dir:     dir,
		in:      in,
		out:     out,
		arith:   arith,
		factors: m.Factorize(n),
		twiddle: make([]T, n),
		scratch: make([]T, n),
	}

	for k := 0; k < n; k++ {
		angle := float64(dir) * m.TwoPi * float64(k) / float64(n)
		p.twiddle[k] = arith.FromComplex128(complex(math.Cos(angle), math.Sin(angle)))
	}

	return p, nil
}

// Len returns the transform length.
func (p *Plan[T]) Len() int {
	return p.n
}

// Direction returns the transform direction.
func (p *Plan[T]) Direction() fftypes.Direction {
	return p.dir
}

// Execute transforms the input buffer into the output buffer.
func (p *Plan[T]) Execute() {
	p.transform(p.out[:p.n], p.in, p.n, 1, 1, 0)
}

// transform computes dst[k] = sum_j src[j*stride] * W^(j*k*tstride) for a
// size-n block, where W = twiddle[1] (the full-length root). tstride is
// the twiddle step for this recursion level, n*tstride == p.n. depth
// indexes p.factors; all blocks at one level share the same radix.
func (p *Plan[T]) transform(dst, src []T, n, stride, tstride, depth int) {
	if n == 1 {
		dst[0] = src[0]
		return
	}

	r := p.factors[depth]
	sub := n / r

	// Decimate in time: sub-transform each residue class mod r.
	for q := 0; q < r; q++ {
		p.transform(dst[q*sub:(q+1)*sub], src[q*stride:], sub, stride*r, tstride*r, depth+1)
	}

	// Combine: X[k] = sum_q W_n^(q*k) * A_q[k mod sub]. The scratch buffer
	// is free here, every deeper level has already finished with it.
	buf := p.scratch[:n]
	for k := 0; k < n; k++ {
		acc := dst[k%sub]
		for q := 1; q < r; q++ {
			w := p.twiddle[(q*k*tstride)%p.n]
			acc = p.arith.Add(acc, p.arith.Mul(w, dst[q*sub+k%sub]))
		}
		buf[k] = acc
	}
	copy(dst, buf)
}

// Destroy releases the plan-owned twiddle table and scratch buffer and
// drops the buffer references. The caller-owned buffers are not touched.
// Safe to call more than once.
func (p *Plan[T]) Destroy() {
	p.twiddle = nil
	p.scratch = nil
	p.factors = nil
	p.in = nil
	p.out = nil
}
