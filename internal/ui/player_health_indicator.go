// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"go-endless-runner/internal/config"
)

// HealthFraction - доля оставшегося здоровья в [0, 1].
func HealthFraction(health, maxHealth int) float64 {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	if health >= maxHealth {
		return 1
	}
	return float64(health) / float64(maxHealth)
}

// HealthColor - зелёный, а при трети здоровья и меньше красный.
func HealthColor(fraction float64) color.RGBA {
	if fraction <= 1.0/3 {
		return config.HealthLowColor
	}
	return config.HealthColor
}

// HealthCells раскладывает здоровье по ячейкам индикатора.
// Ячейка заполнена, если на неё хватает здоровья хотя бы частично.
func HealthCells(health, maxHealth, cells int) []bool {
	out := make([]bool, cells)
	if cells == 0 {
		return out
	}
	filled := int(HealthFraction(health, maxHealth)*float64(cells) + 0.999999)
	for i := 0; i < filled && i < cells; i++ {
		out[i] = true
	}
	return out
}
