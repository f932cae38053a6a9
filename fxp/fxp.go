// Package fxp provides a quantized fixed-point complex sample type with
// saturating arithmetic, as an alternative numeric representation for the
// prime-length transforms.
//
// Values are stored in Q16.16: a 32-bit signed integer with 16 fractional
// bits, covering roughly ±32768 with a resolution of 2⁻¹⁶. That range
// holds the √p kernel magnitudes and the DC sums that appear inside the
// transform for any realistic prime length. Overflow never traps or
// wraps; every operation clamps to the representable range.
package fxp

import "math"

// One is the fixed-point representation of 1.0.
const One = 1 << fracBits

const fracBits = 16

// Complex is a fixed-point complex sample.
type Complex struct {
	Re, Im int32
}

// FromFloat quantizes a float64 to the fixed-point scalar format,
// rounding to nearest and clamping to the representable range.
func FromFloat(v float64) int32 {
	return quantize(v * One)
}

// ToFloat converts a fixed-point scalar back to float64.
func ToFloat(v int32) float64 {
	return float64(v) / One
}

// FromComplex128 quantizes both components of v.
func FromComplex128(v complex128) Complex {
	return Complex{Re: FromFloat(real(v)), Im: FromFloat(imag(v))}
}

// ToComplex128 converts v back to a native complex number.
func ToComplex128(v Complex) complex128 {
	return complex(ToFloat(v.Re), ToFloat(v.Im))
}

// Add returns a+b with each component saturated.
func Add(a, b Complex) Complex {
	return Complex{
		Re: sat(int64(a.Re) + int64(b.Re)),
		Im: sat(int64(a.Im) + int64(b.Im)),
	}
}

// Mul returns the complex product a*b with each component saturated.
func Mul(a, b Complex) Complex {
	re := mul(a.Re, b.Re) - mul(a.Im, b.Im)
	im := mul(a.Re, b.Im) + mul(a.Im, b.Re)

	return Complex{Re: sat(re), Im: sat(im)}
}

// Scale returns v scaled by the real factor s.
func Scale(v Complex, s float64) Complex {
	return Complex{
		Re: quantize(float64(v.Re) * s),
		Im: quantize(float64(v.Im) * s),
	}
}

// mul multiplies two Q16.16 scalars into a widened, unsaturated result.
func mul(a, b int32) int64 {
	return (int64(a) * int64(b)) >> fracBits
}

func sat(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}

	return int32(v)
}

// quantize rounds a raw (already scaled) value to the nearest integer and
// clamps it. The clamp happens in the float domain: an out-of-range
// float-to-int conversion is not defined in Go.
func quantize(v float64) int32 {
	v = math.Round(v)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}

	return int32(v)
}
