package system

import (
	"testing"

	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObstacleHitCostsTenHealth(t *testing.T) {
	s := newSystems(t, singlePool(component.Obstacle))
	obstacle := s.world.Entities[0]
	s.placeAtPlayer(obstacle)

	hits := s.collision.Update(s.world.Scroll, s.world.Player.LateralOffset)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 90, s.world.Player.Health)
	assert.Equal(t, component.Running, s.world.Phase)
	// переработана в том же тике
	assertAhead(t, obstacle, -s.world.Scroll)
	require.Len(t, s.eventsOf(event.ObstacleHit), 1)
	require.Len(t, s.eventsOf(event.EntityRecycled), 1)

	// второй проход не даёт повторного удара
	assert.Zero(t, s.collision.Update(s.world.Scroll, s.world.Player.LateralOffset))
	assert.Equal(t, 90, s.world.Player.Health)
}

func TestFatalObstacleHitEndsGame(t *testing.T) {
	s := newSystems(t, singlePool(component.Obstacle))
	s.world.Player.Health = 5
	s.placeAtPlayer(s.world.Entities[0])

	s.collision.Update(s.world.Scroll, s.world.Player.LateralOffset)

	assert.Equal(t, -5, s.world.Player.Health)
	assert.Equal(t, component.GameOver, s.world.Phase)
	require.Len(t, s.eventsOf(event.GameOver), 1)
}

func TestBonusPickupAddsRewardAndRerolls(t *testing.T) {
	s := newSystems(t, singlePool(component.Bonus))
	bonus := s.world.Entities[0]
	bonus.Reward = 15
	bonus.Scale = component.Uniform(0.375)
	s.placeAtPlayer(bonus)

	hits := s.collision.Update(s.world.Scroll, s.world.Player.LateralOffset)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 15, s.world.Player.Score)
	assert.Equal(t, 100, s.world.Player.Health)
	assertBonusShape(t, bonus)
	assertAhead(t, bonus, -s.world.Scroll)

	collected := s.eventsOf(event.BonusCollected)
	require.Len(t, collected, 1)
	data := collected[0].Data.(event.HitData)
	assert.Equal(t, 15, data.Reward)
	assert.Equal(t, 15, data.Score)
}

func TestHitboxGrowsWithEntitySize(t *testing.T) {
	s := newSystems(t, singlePool(component.Obstacle))
	e := s.world.Entities[0]
	e.Scale = component.Vec3{X: 2, Y: 1, Z: 0.5}
	e.Position.Z = -s.world.Scroll

	// thresholdX = 0.2 + 1 = 1.2
	e.Position.X = 1.1
	assert.True(t, s.collision.Hits(e, s.world.Scroll, 0))
	e.Position.X = -1.19
	assert.True(t, s.collision.Hits(e, s.world.Scroll, 0))
	e.Position.X = 1.2
	assert.False(t, s.collision.Hits(e, s.world.Scroll, 0))

	// thresholdZ = 0.2 + 0.25 = 0.45
	e.Position.X = 0
	e.Position.Z = -s.world.Scroll - 0.44
	assert.True(t, s.collision.Hits(e, s.world.Scroll, 0))
	e.Position.Z = -s.world.Scroll - 0.45
	assert.False(t, s.collision.Hits(e, s.world.Scroll, 0))
}

func TestHitboxFollowsLateralOffset(t *testing.T) {
	s := newSystems(t, singlePool(component.Obstacle))
	e := s.world.Entities[0]
	e.Scale = component.Uniform(1)
	e.Position = component.Vec3{X: -7, Z: 0}

	assert.True(t, s.collision.Hits(e, 0, 7))
	assert.False(t, s.collision.Hits(e, 0, 0))
}

func TestSeveralHitsInOneTick(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.ObstacleCount, tuning.BonusCount = 2, 2
	s := newSystems(t, tuning)
	for _, e := range s.world.Entities {
		s.placeAtPlayer(e)
	}
	s.world.Entities[2].Reward = 5
	s.world.Entities[3].Reward = 20

	hits := s.collision.Update(s.world.Scroll, s.world.Player.LateralOffset)

	assert.Equal(t, 4, hits)
	assert.Equal(t, 80, s.world.Player.Health)
	assert.Equal(t, 25, s.world.Player.Score)
	assert.Len(t, s.eventsOf(event.EntityRecycled), 4)
}

func TestNoHitsWhileIdle(t *testing.T) {
	s := newSystems(t, singlePool(component.Obstacle))
	s.world.Phase = component.Idle
	s.placeAtPlayer(s.world.Entities[0])

	assert.Zero(t, s.collision.Update(s.world.Scroll, 0))
	assert.Equal(t, 100, s.world.Player.Health)
}

func TestScanStopsAfterFatalHit(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.ObstacleCount, tuning.BonusCount = 2, 1
	s := newSystems(t, tuning)
	s.world.Player.Health = 10
	for _, e := range s.world.Entities {
		s.placeAtPlayer(e)
	}

	hits := s.collision.Update(s.world.Scroll, s.world.Player.LateralOffset)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 0, s.world.Player.Health)
	assert.Equal(t, component.GameOver, s.world.Phase)
	assert.Zero(t, s.world.Player.Score)
}
