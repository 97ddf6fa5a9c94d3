// internal/utils/math.go
package utils

// Lerp выполняет линейную интерполяцию в форме from*(1-t) + to*t.
// Эта форма даёт ровно from при t=0 и ровно to при t=1.
func Lerp(from, to, t float64) float64 {
	return from*(1-t) + to*t
}

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign возвращает -1, 0 или 1
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
