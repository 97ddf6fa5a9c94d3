// internal/system/score.go
package system

import (
	"go-endless-runner/internal/entity"
)

// ScoreSystem применяет изменения здоровья и очков.
// Изменения принимаются только в состоянии Running.
type ScoreSystem struct {
	world *entity.World
	state *StateSystem
}

func NewScoreSystem(world *entity.World, state *StateSystem) *ScoreSystem {
	return &ScoreSystem{world: world, state: state}
}

// ApplyHealthDelta меняет здоровье и сразу проверяет условие GameOver.
// Нижней границы у здоровья нет: при смертельном ударе оно может стать отрицательным.
func (s *ScoreSystem) ApplyHealthDelta(delta int) bool {
	if !s.world.Running() {
		return false
	}
	s.world.Player.Health += delta
	s.state.CheckGameOver()
	return true
}

// ApplyScoreDelta добавляет очки. Отрицательные изменения игнорируются,
// счёт во время игры только растёт.
func (s *ScoreSystem) ApplyScoreDelta(delta int) bool {
	if !s.world.Running() || delta < 0 {
		return false
	}
	s.world.Player.Score += delta
	return true
}

// Settle обновляет пройденную дистанцию по смещению прокрутки.
func (s *ScoreSystem) Settle(scroll float64) {
	if !s.world.Running() {
		return
	}
	if scroll > s.world.Player.Distance {
		s.world.Player.Distance = scroll
	}
}
