package system

import (
	"math"

	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/entity"
	"go-endless-runner/internal/event"
)

// CollisionSystem ищет сущности рядом с игроком и применяет попадания.
type CollisionSystem struct {
	world           *entity.World
	spawn           *SpawnSystem
	score           *ScoreSystem
	eventDispatcher *event.Dispatcher

	threshold      float64
	obstacleDamage int
}

func NewCollisionSystem(world *entity.World, spawn *SpawnSystem, score *ScoreSystem, tuning config.Tuning, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		spawn:           spawn,
		score:           score,
		eventDispatcher: eventDispatcher,
		threshold:       tuning.CollisionThreshold,
		obstacleDamage:  tuning.ObstacleDamage,
	}
}

// Hits сообщает, задевает ли сущность игрока. Зона попадания растёт
// вместе с размером сущности.
func (s *CollisionSystem) Hits(e *component.Entity, scroll, lateralOffset float64) bool {
	worldZ := e.Position.Z + scroll
	dx := math.Abs(e.Position.X + lateralOffset)
	thresholdX := s.threshold + e.Scale.X/2
	thresholdZ := s.threshold + e.Scale.Z/2
	return worldZ > -thresholdZ && dx < thresholdX
}

// Update применяет все попадания этого тика и возвращает их число.
// Каждая сущность даёт не больше одного попадания, после чего сразу перерабатывается.
// Проверка прекращается, если игра закончилась посреди тика.
func (s *CollisionSystem) Update(scroll, lateralOffset float64) int {
	hits := 0
	for i, e := range s.world.Entities {
		if !s.world.Running() {
			break
		}
		if !s.Hits(e, scroll, lateralOffset) {
			continue
		}
		hits++
		switch e.Kind {
		case component.Obstacle:
			s.score.ApplyHealthDelta(-s.obstacleDamage)
			s.dispatch(event.ObstacleHit, i, 0)
		case component.Bonus:
			reward := e.Reward
			s.score.ApplyScoreDelta(reward)
			s.dispatch(event.BonusCollected, i, reward)
		}
		s.spawn.Recycle(i)
	}
	return hits
}

func (s *CollisionSystem) dispatch(eventType event.EventType, index, reward int) {
	if s.eventDispatcher == nil {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: eventType,
		Data: event.HitData{
			Index:  index,
			Reward: reward,
			Health: s.world.Player.Health,
			Score:  s.world.Player.Score,
		},
	})
}
