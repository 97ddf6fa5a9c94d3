// component/movement.go
package component

// Vec3 - точка или масштаб в мировых координатах.
// Ось Z направлена на игрока, поэтому всё, что впереди, имеет отрицательный Z.
type Vec3 struct {
	X, Y, Z float64
}

// Uniform возвращает вектор с одинаковыми компонентами.
func Uniform(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}
