// component/entity.go
package component

// EntityKind - вид объекта на полосе
type EntityKind int

const (
	Obstacle EntityKind = iota
	Bonus
)

func (k EntityKind) String() string {
	switch k {
	case Obstacle:
		return "obstacle"
	case Bonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Entity - препятствие или бонус из фиксированного пула.
// Объект никогда не пересоздаётся: при переработке меняются только поля.
type Entity struct {
	Kind     EntityKind
	Position Vec3
	Scale    Vec3
	Reward   int     // только для Bonus, 0 у препятствий
	Hue      float64 // подсказка для рендера, только для Bonus
}
