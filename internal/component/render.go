// component/render.go
package component

// Renderable - копия сущности для рендера, отдаётся наружу только для чтения
type Renderable struct {
	Kind     EntityKind
	Position Vec3
	Scale    Vec3
	Hue      float64
	Reward   int
}

// View снимает копию сущности для рендера.
func (e *Entity) View() Renderable {
	return Renderable{
		Kind:     e.Kind,
		Position: e.Position,
		Scale:    e.Scale,
		Hue:      e.Hue,
		Reward:   e.Reward,
	}
}
