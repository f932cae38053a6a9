package math

// Factorize returns the prime factorization of n in ascending order,
// with repeated factors listed individually (12 -> [2 2 3]).
// Returns nil for n < 2.
func Factorize(n int) []int {
	if n < 2 {
		return nil
	}

	var factors []int

	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}

	for f := 3; f*f <= n; f += 2 {
		for n%f == 0 {
			factors = append(factors, f)
			n /= f
		}
	}

	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}

// SmallestFactor returns the smallest prime factor of n, or n itself when
// n is prime. n must be at least 2.
func SmallestFactor(n int) int {
	if n%2 == 0 {
		return 2
	}

	for f := 3; f*f <= n; f += 2 {
		if n%f == 0 {
			return f
		}
	}

	return n
}
