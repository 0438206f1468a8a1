package glyph

import "math"

// Polynomial root solving used to find curve extrema for tight bounds.
//
// Based on algorithms from kurbo (https://github.com/linebender/kurbo)
// with adaptations for Go idioms.

// SolveQuadratic finds real roots of the quadratic equation ax^2 + bx + c = 0.
// Returns roots sorted in ascending order.
//
// If a is zero or nearly zero the equation is solved as linear. If all
// coefficients are zero a single 0.0 is returned.
func SolveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a

	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// Discriminant overflow: take the dominant root, derive the other.
		return sortedPair(-sc1, sc0/-sc1)
	}
	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form, avoids cancellation.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedPair(root1, sc0/root1)
}

func sortedPair(root1, root2 float64) []float64 {
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

// SolveQuadraticInUnitInterval returns the roots of ax^2 + bx + c = 0
// that lie strictly inside (0, 1).
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	roots := SolveQuadratic(a, b, c)
	result := roots[:0]
	for _, t := range roots {
		if t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	return result
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
