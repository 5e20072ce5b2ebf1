package math3d

import "math"

// Digit counts used by the two equality notions.
const (
	ApproxDigits = 4  // rendered colors and displayed values
	NearlyDigits = 10 // internal float identities
)

// EqualToDigits reports whether a and b agree to the given number of
// significant digits. When either value is exactly zero the absolute
// difference is compared against 10^-digits instead.
func EqualToDigits(a, b float64, digits int) bool {
	tol := math.Pow(0.1, float64(digits))
	if a == 0 {
		return math.Abs(b) < tol
	}
	if b == 0 {
		return math.Abs(a) < tol
	}
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}

// ApproxEqual reports whether a and b agree to ApproxDigits digits.
func ApproxEqual(a, b float64) bool {
	return EqualToDigits(a, b, ApproxDigits)
}

// NearlyEqual reports whether a and b agree to NearlyDigits digits.
func NearlyEqual(a, b float64) bool {
	return EqualToDigits(a, b, NearlyDigits)
}
