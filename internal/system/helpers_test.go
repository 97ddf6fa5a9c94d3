package system

import (
	"testing"

	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/entity"
	"go-endless-runner/internal/event"
	"go-endless-runner/internal/utils"

	"github.com/stretchr/testify/require"
)

type systems struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	state      *StateSystem
	score      *ScoreSystem
	spawn      *SpawnSystem
	collision  *CollisionSystem
	steering   *SteeringSystem
	events     []event.Event
}

// newSystems собирает все системы над свежим миром. Мир уже в Running.
func newSystems(t *testing.T, tuning config.Tuning) *systems {
	t.Helper()
	s := &systems{
		world:      entity.NewWorld(tuning.ObstacleCount, tuning.BonusCount, tuning.StartHealth),
		dispatcher: event.NewDispatcher(),
	}
	s.dispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
		s.events = append(s.events, e)
	}), event.GameStarted, event.GameOver, event.ObstacleHit, event.BonusCollected, event.EntityRecycled, event.SteeringChanged)

	rng := utils.NewPRNGService(12345)
	s.state = NewStateSystem(s.world, s.dispatcher)
	s.score = NewScoreSystem(s.world, s.state)
	s.spawn = NewSpawnSystem(s.world, rng, tuning, s.dispatcher)
	s.collision = NewCollisionSystem(s.world, s.spawn, s.score, tuning, s.dispatcher)
	steering, err := NewSteeringSystem(s.world, tuning, s.dispatcher)
	require.NoError(t, err)
	s.steering = steering

	s.spawn.SpawnAll()
	require.True(t, s.state.Start())
	s.events = nil
	return s
}

func (s *systems) eventsOf(eventType event.EventType) []event.Event {
	var out []event.Event
	for _, e := range s.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// placeAtPlayer ставит сущность прямо на игрока при текущей прокрутке.
func (s *systems) placeAtPlayer(e *component.Entity) {
	e.Position.X = s.world.Player.LaneX()
	e.Position.Z = -s.world.Scroll
}

func singlePool(kind component.EntityKind) config.Tuning {
	tuning := config.DefaultTuning()
	tuning.ObstacleCount, tuning.BonusCount = 0, 0
	if kind == component.Obstacle {
		tuning.ObstacleCount = 1
	} else {
		tuning.BonusCount = 1
	}
	return tuning
}
