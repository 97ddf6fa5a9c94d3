package system

import (
	"testing"

	"go-endless-runner/internal/config"
	"go-endless-runner/internal/entity"
	"go-endless-runner/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteeringRejectsBadDurations(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.RecenterDuration = 0
	_, err := NewSteeringSystem(entity.NewWorld(1, 0, 100), tuning, nil)
	assert.ErrorIs(t, err, ErrInvalidSteering)
}

func TestSteerRightEasesToRollAngle(t *testing.T) {
	tuning := config.DefaultTuning()
	s := newSystems(t, tuning)

	require.True(t, s.steering.SetAxis(1))
	task := s.steering.Task()
	require.NotNil(t, task)
	assert.Equal(t, 0.8, task.Duration)
	assert.Equal(t, tuning.RollAngle, task.To)

	for i := 0; i < 60; i++ {
		s.steering.Update(1.0 / 60)
	}
	assert.Equal(t, tuning.RollAngle, s.world.Player.RollAngle)
	assert.Nil(t, s.steering.Task())
	// вправо значит смещение мира влево
	assert.InDelta(t, -3.0, s.world.Player.LateralOffset, 1e-9)
}

func TestSteerLeftTargetsNegativeRoll(t *testing.T) {
	tuning := config.DefaultTuning()
	s := newSystems(t, tuning)
	s.steering.SetAxis(-5)
	assert.Equal(t, -1, s.world.Player.ControlAxis)
	assert.Equal(t, -tuning.RollAngle, s.steering.Task().To)
}

func TestSetAxisIsEdgeTriggered(t *testing.T) {
	s := newSystems(t, config.DefaultTuning())
	require.True(t, s.steering.SetAxis(1))
	first := s.steering.Task()
	s.steering.Update(0.1)

	assert.False(t, s.steering.SetAxis(1))
	assert.Same(t, first, s.steering.Task())
	assert.Len(t, s.eventsOf(event.SteeringChanged), 1)
}

// Смена оси до завершения поворота: старая задача отбрасывается без finish,
// новая стартует с текущего крена к нулю за 0.5 с.
func TestRecenterInterruptsSteer(t *testing.T) {
	s := newSystems(t, config.DefaultTuning())
	s.steering.SetAxis(1)
	first := s.steering.Task()
	s.steering.Update(0.3)
	s.steering.Update(0.1)
	mid := s.world.Player.RollAngle
	require.Greater(t, mid, 0.0)
	require.False(t, first.Finished())

	require.True(t, s.steering.SetAxis(0))
	second := s.steering.Task()
	require.NotSame(t, first, second)
	assert.False(t, first.Finished())
	assert.Equal(t, mid, second.From)
	assert.Equal(t, 0.0, second.To)
	assert.Equal(t, 0.5, second.Duration)

	s.steering.Update(0.25)
	assert.Less(t, s.world.Player.RollAngle, mid)
	assert.Greater(t, s.world.Player.RollAngle, 0.0)

	s.steering.Update(0.3)
	assert.Equal(t, 0.0, s.world.Player.RollAngle)
	assert.Nil(t, s.steering.Task())
	assert.False(t, first.Finished())
}
