package system

import (
	"errors"
	"fmt"

	"go-endless-runner/internal/config"
	"go-endless-runner/internal/easing"
	"go-endless-runner/internal/entity"
	"go-endless-runner/internal/event"
	"go-endless-runner/internal/utils"
)

// ErrInvalidSteering возвращается при неверных длительностях поворота.
var ErrInvalidSteering = errors.New("invalid steering parameters")

// SteeringSystem переводит ось управления в целевой крен и боковое смещение.
// Одновременно живёт не больше одной задачи интерполяции.
type SteeringSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher

	rollAngle        float64
	steerDuration    float64
	recenterDuration float64
	lateralSpeed     float64

	task *easing.Task
}

func NewSteeringSystem(world *entity.World, tuning config.Tuning, eventDispatcher *event.Dispatcher) (*SteeringSystem, error) {
	if !(tuning.SteerDuration > 0) || !(tuning.RecenterDuration > 0) {
		return nil, fmt.Errorf("%w: steer=%v recenter=%v", ErrInvalidSteering, tuning.SteerDuration, tuning.RecenterDuration)
	}
	return &SteeringSystem{
		world:            world,
		eventDispatcher:  eventDispatcher,
		rollAngle:        tuning.RollAngle,
		steerDuration:    tuning.SteerDuration,
		recenterDuration: tuning.RecenterDuration,
		lateralSpeed:     tuning.LateralSpeed,
	}, nil
}

// SetAxis реагирует только на смену оси. Текущая задача отбрасывается
// без завершения, новая стартует с текущего крена.
func (s *SteeringSystem) SetAxis(axis int) bool {
	axis = utils.Sign(axis)
	player := s.world.Player
	if axis == player.ControlAxis {
		return false
	}
	player.ControlAxis = axis

	target := float64(axis) * s.rollAngle
	duration := s.recenterDuration
	if axis != 0 {
		duration = s.steerDuration
	}
	s.task = easing.MustNew(player.RollAngle, target, duration)

	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.SteeringChanged,
			Data: event.SteeringData{Axis: axis, Target: target},
		})
	}
	return true
}

// Update двигает игрока вбок и продвигает задачу крена.
func (s *SteeringSystem) Update(deltaTime float64) {
	player := s.world.Player
	player.LateralOffset -= float64(player.ControlAxis) * s.lateralSpeed * deltaTime

	if s.task == nil {
		return
	}
	finished := s.task.Advance(deltaTime)
	player.RollAngle = s.task.Value()
	if finished {
		s.task = nil
	}
}

// Task возвращает активную задачу крена или nil.
func (s *SteeringSystem) Task() *easing.Task {
	return s.task
}
