// Package babylonian implements an iterative Babylonian (Newton's
// method) square-root approximation with a fixed convergence
// tolerance.
package babylonian

// epsilon is the fixed convergence threshold. Results agree with
// math.Sqrt only up to roughly this tolerance.
const epsilon = 1e-6

// Sqrt approximates the square root of value, which must be >= 0.
// Starting from x = value and y = 1, it repeatedly replaces x with the
// average of x and y and y with value/x until x - y <= epsilon.
// Sqrt(0) returns 0 without iterating: the loop guard fails on the
// first check, so no division by zero occurs. The same guard makes
// Sqrt(value) return value for inputs below 1; callers that need
// accuracy there must use math.Sqrt instead.
func Sqrt(value float64) float64 {
	x, y := value, 1.0
	for x-y > epsilon {
		x = (x + y) / 2
		y = value / x
	}

	return x
}
