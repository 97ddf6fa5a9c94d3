package utils

import "math"

// Round округляет до ближайшего целого, половины от нуля.
func Round(x float64) int {
	return int(math.Round(x))
}

// Mod returns x modulo m in [0, m) for positive m.
func Mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
