// internal/system/state.go
package system

import (
	"go-endless-runner/internal/component"
	"go-endless-runner/internal/entity"
	"go-endless-runner/internal/event"
	"go-endless-runner/pkg/utils"
)

// StateSystem ведёт машину состояний Idle -> Running -> GameOver.
// Обратных переходов нет: GameOver терминален.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	if world == nil {
		panic("world cannot be nil")
	}
	return &StateSystem{world: world, eventDispatcher: eventDispatcher}
}

// Start переводит Idle в Running. В любом другом состоянии ничего не делает.
func (s *StateSystem) Start() bool {
	if s.world.Phase != component.Idle {
		return false
	}
	s.world.Phase = component.Running
	s.dispatch(event.Event{Type: event.GameStarted})
	return true
}

// CheckGameOver завершает игру, если здоровье исчерпано.
func (s *StateSystem) CheckGameOver() bool {
	if s.world.Phase != component.Running || s.world.Player.Health > 0 {
		return false
	}
	s.world.Phase = component.GameOver
	s.dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{
		Score:    s.world.Player.Score,
		Distance: utils.Round(s.world.Player.Distance),
		Time:     s.world.GameTime,
	}})
	return true
}

func (s *StateSystem) Current() component.Phase {
	return s.world.Phase
}

func (s *StateSystem) dispatch(e event.Event) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(e)
	}
}
