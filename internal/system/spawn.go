package system

import (
	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/entity"
	"go-endless-runner/internal/event"
	"go-endless-runner/internal/utils"
)

// SpawnSystem держит каждую сущность пула впереди игрока.
// Сущности не создаются и не удаляются: ушедшая за игрока переставляется вперёд.
type SpawnSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, tuning config.Tuning, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
	}
}

// SpawnAll расставляет весь пул относительно начала координат.
func (s *SpawnSystem) SpawnAll() {
	for _, e := range s.world.Entities {
		s.Spawn(e, 0, 0)
	}
}

// Spawn заново инициализирует сущность на 100..200 единиц впереди depthRef
// и в пределах разброса от lateralRef.
func (s *SpawnSystem) Spawn(e *component.Entity, lateralRef, depthRef float64) {
	t := s.tuning
	switch e.Kind {
	case component.Obstacle:
		e.Scale = component.Vec3{
			X: s.rng.Float(t.ObstacleScale.Min, t.ObstacleScale.Max),
			Y: s.rng.Float(t.ObstacleScale.Min, t.ObstacleScale.Max),
			Z: s.rng.Float(t.ObstacleScale.Min, t.ObstacleScale.Max),
		}
		e.Reward = 0
		e.Hue = 0
	case component.Bonus:
		e.Reward = s.rng.Int(t.Reward.Min, t.Reward.Max)
		ratio := float64(e.Reward) / float64(t.Reward.Max)
		e.Scale = component.Uniform(ratio * 0.5)
		e.Hue = 0.5 + 0.5*ratio
	}
	e.Position = component.Vec3{
		X: lateralRef + s.rng.Float(-t.SpawnSpreadX, t.SpawnSpreadX),
		Y: e.Scale.Y * 0.5,
		Z: depthRef - t.SpawnMinAhead - s.rng.Float(0, t.SpawnDepthJitter),
	}
}

// Recycle переставляет сущность с индексом index вперёд по текущей полосе игрока.
func (s *SpawnSystem) Recycle(index int) {
	s.recycle(index, s.world.Player.LaneX(), -s.world.Scroll)
}

// ScanAndRecycle перерабатывает все сущности, которые ушли за плоскость игрока,
// и ставит их вперёд по текущей полосе, как Recycle.
// Возвращает количество переработанных.
func (s *SpawnSystem) ScanAndRecycle(scroll float64) int {
	recycled := 0
	for i, e := range s.world.Entities {
		if e.Position.Z+scroll <= 0 {
			continue
		}
		s.recycle(i, s.world.Player.LaneX(), -scroll)
		recycled++
	}
	return recycled
}

func (s *SpawnSystem) recycle(index int, lateralRef, depthRef float64) {
	e := s.world.Entities[index]
	s.Spawn(e, lateralRef, depthRef)
	if s.eventDispatcher != nil && s.eventDispatcher.HasListeners(event.EntityRecycled) {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EntityRecycled,
			Data: event.RecycleData{Index: index, Z: e.Position.Z},
		})
	}
}
