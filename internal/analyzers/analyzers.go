// Package analyzers holds the heuristic scoring functions. Each is a pure
// function of the normalized script (plus the static lexicons) producing
// one result struct; scores are clamped to their documented range before
// return.
package analyzers

import "math"

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// round3 keeps reports stable for golden comparisons.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
