// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Wrap переносит value в диапазон [0, period).
func Wrap(value, period float64) float64 {
	if period <= 0 {
		return value
	}
	v := math.Mod(value, period)
	if v < 0 {
		v += period
	}
	return v
}
