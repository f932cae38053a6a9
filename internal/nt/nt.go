// Package nt provides the small number-theory routines behind the
// prime-length transform: modular exponentiation, primality testing, and
// primitive root search. All functions are pure and deterministic.
package nt

import m "github.com/cwbudde/algo-primefft/internal/math"

// ModPow computes base^exp mod modulus by square-and-multiply.
// modulus must be positive; exp must be non-negative.
func ModPow(base, exp, modulus int) int {
	result := 1 % modulus
	base %= modulus
	if base < 0 {
		base += modulus
	}

	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % modulus
		}
		base = base * base % modulus
		exp >>= 1
	}

	return result
}

// IsPrime reports whether n is prime, by trial division.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}

	return m.SmallestFactor(n) == n
}

// PrimitiveRoot returns a generator of the multiplicative group mod p.
// p must be prime; the result for composite p is meaningless. A candidate
// g is a generator iff g^((p-1)/f) != 1 for every prime factor f of p-1.
func PrimitiveRoot(p int) int {
	if p == 2 {
		return 1
	}

	factors := m.Factorize(p - 1)

	for g := 2; g < p; g++ {
		generator := true
		prev := 0

		for _, f := range factors {
			if f == prev {
				continue
			}
			prev = f

			if ModPow(g, (p-1)/f, p) == 1 {
				generator = false
				break
			}
		}

		if generator {
			return g
		}
	}

	// Unreachable for prime p: every prime has a primitive root.
	return 0
}
