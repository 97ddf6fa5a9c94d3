package entity

import "go-endless-runner/internal/component"

// World - всё изменяемое состояние одной симуляции.
// Системы получают его явно и меняют только внутри одного тика.
type World struct {
	GameTime float64
	Scroll   float64 // смещение прокрутки вперёд
	Phase    component.Phase
	Player   *component.Player
	Entities []*component.Entity
}

// NewWorld создаёт мир с пулом фиксированного размера.
// Сущности получают вид, но не позицию: её назначает SpawnSystem.
func NewWorld(obstacles, bonuses, health int) *World {
	w := &World{
		Phase:    component.Idle,
		Player:   &component.Player{Health: health},
		Entities: make([]*component.Entity, 0, obstacles+bonuses),
	}
	for i := 0; i < obstacles; i++ {
		w.Entities = append(w.Entities, &component.Entity{Kind: component.Obstacle})
	}
	for i := 0; i < bonuses; i++ {
		w.Entities = append(w.Entities, &component.Entity{Kind: component.Bonus})
	}
	return w
}

// WorldZ возвращает Z сущности относительно движущейся системы координат.
// Положительное значение означает, что сущность уже позади игрока.
func (w *World) WorldZ(e *component.Entity) float64 {
	return e.Position.Z + w.Scroll
}

// Running сообщает, идёт ли игра.
func (w *World) Running() bool {
	return w.Phase == component.Running
}
