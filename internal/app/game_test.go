package app

import (
	"testing"

	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const frame = 1.0 / 60

func newTestGame(t *testing.T, mutate func(*config.Tuning)) *Game {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 2024
	if mutate != nil {
		mutate(&tuning)
	}
	g, err := NewGame(Options{Tuning: tuning})
	require.NoError(t, err)
	return g
}

// clearLane уводит все сущности далеко в сторону, чтобы случайные столкновения
// не мешали сценарию.
func clearLane(g *Game) {
	for _, e := range g.World.Entities {
		e.Position.X = 1000
	}
}

// nextFrameZ ставит сущность чуть впереди игрока с учётом следующего кадра,
// чтобы столкновение случилось на следующем тике, а не переработка.
func nextFrameZ(g *Game) float64 {
	return -(g.World.Scroll + frame*g.Tuning.ForwardSpeed) - 0.1
}

func TestNewGameRejectsInvalidTuning(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.SteerDuration = 0
	_, err := NewGame(Options{Tuning: tuning})
	assert.ErrorIs(t, err, config.ErrInvalidTuning)
}

func TestIdleTickIsNoop(t *testing.T) {
	g := newTestGame(t, nil)
	before := g.Snapshot()

	for i := 0; i < 30; i++ {
		g.Tick(frame)
	}
	g.SetControlAxis(1)

	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, component.Idle, g.Phase())
}

func TestRunningTickScrollsAndTracksDistance(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.Start())
	clearLane(g)

	for i := 0; i < 120; i++ {
		g.Tick(frame)
	}
	snap := g.Snapshot()
	assert.InDelta(t, 2.0, snap.Time, 1e-9)
	assert.InDelta(t, 30.0, snap.Scroll, 1e-9)
	assert.Equal(t, 30, snap.Distance)
	assert.Equal(t, 100, snap.Health)
	assert.Len(t, snap.Entities, 20)
}

func TestPoolStaysAheadForLongRuns(t *testing.T) {
	g := newTestGame(t, func(tn *config.Tuning) { tn.ObstacleDamage = 0 })
	g.Start()
	ptrs := append([]*component.Entity(nil), g.World.Entities...)

	for i := 0; i < 60*60; i++ {
		g.Tick(frame)
		for _, e := range g.World.Entities {
			require.LessOrEqual(t, e.Position.Z+g.World.Scroll, 0.0)
		}
	}
	for i, e := range g.World.Entities {
		assert.Same(t, ptrs[i], e)
	}
	assert.Greater(t, g.Snapshot().Distance, 800)
}

func TestScenarioObstacleHitKeepsRunning(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start()
	clearLane(g)
	g.Tick(frame)
	obstacle := g.World.Entities[0]
	require.Equal(t, component.Obstacle, obstacle.Kind)
	obstacle.Position.X = g.World.Player.LaneX()
	obstacle.Position.Z = nextFrameZ(g)

	g.Tick(frame)

	assert.Equal(t, 90, g.World.Player.Health)
	assert.Equal(t, component.Running, g.Phase())
	assert.LessOrEqual(t, obstacle.Position.Z, -g.World.Scroll-100)
}

func TestScenarioFatalHitEndsAndFreezes(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start()
	clearLane(g)
	g.World.Player.Health = 5
	obstacle := g.World.Entities[0]
	obstacle.Position.X = 0
	obstacle.Position.Z = nextFrameZ(g)

	g.Tick(frame)

	require.Equal(t, component.GameOver, g.Phase())
	assert.Equal(t, -5, g.World.Player.Health)

	frozen := g.Snapshot()
	for i := 0; i < 60; i++ {
		g.Tick(frame)
		g.SetControlAxis(-1)
		assert.False(t, g.Start())
	}
	assert.Equal(t, frozen, g.Snapshot())
}

func TestScenarioBonusPickup(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start()
	clearLane(g)
	bonus := g.World.Entities[len(g.World.Entities)-1]
	require.Equal(t, component.Bonus, bonus.Kind)
	bonus.Reward = 15
	bonus.Position.X = 0
	bonus.Position.Z = nextFrameZ(g)

	g.Tick(frame)

	assert.Equal(t, 15, g.Snapshot().Score)
	assert.GreaterOrEqual(t, bonus.Reward, 5)
	assert.LessOrEqual(t, bonus.Reward, 20)
}

func TestSteeringThroughInputPort(t *testing.T) {
	frames := []input.Frame{
		{Start: true},
		{Axis: 1},
		{Axis: 1},
		{Axis: 0},
	}
	i := 0
	port := input.PortFunc(func() input.Frame {
		f := frames[i]
		if i < len(frames)-1 {
			i++
		}
		return f
	})

	tuning := config.DefaultTuning()
	tuning.Seed = 1
	g, err := NewGame(Options{Tuning: tuning, Input: port})
	require.NoError(t, err)
	clearLane(g)

	g.Tick(frame)
	assert.Equal(t, component.Running, g.Phase())

	g.Tick(frame)
	g.Tick(frame)
	snap := g.Snapshot()
	assert.Equal(t, 1, snap.ControlAxis)
	assert.Greater(t, snap.RollAngle, 0.0)
	assert.Less(t, snap.LateralOffset, 0.0)

	g.Tick(frame)
	task := g.SteeringSystem.Task()
	require.NotNil(t, task)
	assert.Equal(t, 0.0, task.To)
	assert.Equal(t, tuning.RecenterDuration, task.Duration)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, nil)
	snap := g.Snapshot()
	snap.Entities[0].Position.Z = 12345
	snap.Health = -1

	assert.NotEqual(t, 12345.0, g.World.Entities[0].Position.Z)
	assert.Equal(t, 100, g.World.Player.Health)
}

func TestBonusHueInSnapshot(t *testing.T) {
	g := newTestGame(t, nil)
	for _, e := range g.Snapshot().Entities {
		if e.Kind != component.Bonus {
			continue
		}
		ratio := float64(e.Reward) / 20
		assert.InDelta(t, 0.5+0.5*ratio, e.Hue, 1e-12)
	}
}

func TestGridPhaseWraps(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start()
	clearLane(g)
	for i := 0; i < 300; i++ {
		g.Tick(frame)
		clearLane(g)
		snap := g.Snapshot()
		require.GreaterOrEqual(t, snap.GridPhase, 0.0)
		require.Less(t, snap.GridPhase, config.GridSpacing)
	}
}

func TestSameSeedSameWorld(t *testing.T) {
	a := newTestGame(t, nil)
	b := newTestGame(t, nil)
	assert.Equal(t, a.Snapshot().Entities, b.Snapshot().Entities)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestLifecycleIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tuning := config.DefaultTuning()
	tuning.Seed = 3
	g, err := NewGame(Options{Tuning: tuning, Logger: zap.New(core)})
	require.NoError(t, err)

	g.Start()
	clearLane(g)
	g.World.Player.Health = 10
	obstacle := g.World.Entities[0]
	obstacle.Position.X = 0
	obstacle.Position.Z = nextFrameZ(g)
	g.Tick(frame)

	assert.Equal(t, 1, logs.FilterMessage("game started").Len())
	assert.Equal(t, 1, logs.FilterMessage("obstacle hit").Len())
	over := logs.FilterMessage("game over").All()
	require.Len(t, over, 1)
	fields := over[0].ContextMap()
	assert.Equal(t, int64(0), fields["score"])
	assert.Equal(t, g.SessionID.String(), fields["session"])
}
