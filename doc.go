// Package primefft computes discrete Fourier transforms of prime length
// using Rader's algorithm.
//
// A prime sample count has no nontrivial factorization, so the usual
// radix-based fast decompositions do not apply. Rader's algorithm instead
// reduces a length-p DFT (p prime) to one circular convolution of length
// p-1, computed with two composite-length sub-transforms and a kernel that
// is transformed once at plan creation and reused by every execution.
//
// Plans are bound to caller-owned input and output buffers at creation,
// in the style of FFTW: create once, execute many times, destroy. A plan
// mutates its own scratch state during execution, so concurrent Execute
// calls on one plan must be serialized by the caller. Distinct plans
// share nothing and may run in parallel.
//
// Two numeric representations are supported: native complex64/complex128
// arithmetic (NewPlan), and the saturating fixed-point representation in
// package fxp (NewFixedPlan).
//
// Reference:
//
//	Charles M. Rader, "Discrete Fourier Transforms When the Number of
//	Data Samples Is Prime," Proceedings of the IEEE, vol. 56, no. 6,
//	pp. 1107-1108, June 1968.
package primefft
