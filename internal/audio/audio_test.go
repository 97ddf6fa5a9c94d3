package audio

import (
	"testing"
	"time"

	"go-endless-runner/internal/config"
	"go-endless-runner/internal/event"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rate = beep.SampleRate(44100)

// drain читает поток до конца и возвращает число сэмплов и пиковую амплитуду.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			assert.Equal(t, smp[0], smp[1])
			if v := smp[0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillatorLengthAndRange(t *testing.T) {
	osc := NewOscillator(440, 0, 100*time.Millisecond, WaveSine, rate)
	n, peak := drain(t, osc)
	assert.Equal(t, rate.N(100*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.9)
	assert.NoError(t, osc.Err())
}

func TestSawStaysInRange(t *testing.T) {
	osc := NewOscillator(100, 50, 50*time.Millisecond, WaveSaw, rate)
	_, peak := drain(t, osc)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestEnvelopeStartsSilent(t *testing.T) {
	osc := NewOscillator(440, 0, 50*time.Millisecond, WaveSine, rate)
	env := NewEnvelope(osc, 10*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 1)
	n, ok := env.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 1, n)
	assert.Equal(t, 0.0, buf[0][0])
}

func TestZeroVolumeIsSilent(t *testing.T) {
	s := CreateHitSound(rate, 0)
	_, peak := drain(t, s)
	assert.Equal(t, 0.0, peak)
}

func TestSoundsAreFinite(t *testing.T) {
	pickup, err := CreatePickupSound(rate, 880, 1)
	require.NoError(t, err)
	for name, s := range map[string]beep.Streamer{
		"hit":      CreateHitSound(rate, 1),
		"pickup":   pickup,
		"start":    CreateStartSound(rate, 1),
		"gameover": CreateGameOverSound(rate, 1),
	} {
		n, peak := drain(t, s)
		assert.Positive(t, n, name)
		assert.Positive(t, peak, name)
	}
}

func TestPickupFrequencyFollowsReward(t *testing.T) {
	assert.InDelta(t, pickupBaseFreq, PickupFrequency(5, 5, 20), 1e-9)
	assert.InDelta(t, pickupBaseFreq*2, PickupFrequency(20, 5, 20), 1e-9)
	assert.Less(t, PickupFrequency(10, 5, 20), PickupFrequency(15, 5, 20))
	assert.InDelta(t, pickupBaseFreq*2, PickupFrequency(99, 5, 20), 1e-9)
	assert.Equal(t, pickupBaseFreq, PickupFrequency(7, 7, 7))
}

func TestSoundManagerQueuesEventSounds(t *testing.T) {
	cfg := config.DefaultAudioConfig()
	sm := NewSoundManager(cfg, config.IntRange{Min: 5, Max: 20}, nil)
	d := event.NewDispatcher()
	sm.Subscribe(d)

	d.Dispatch(event.Event{Type: event.GameStarted})
	d.Dispatch(event.Event{Type: event.ObstacleHit, Data: event.HitData{Health: 90}})
	d.Dispatch(event.Event{Type: event.BonusCollected, Data: event.HitData{Reward: 12}})
	d.Dispatch(event.Event{Type: event.EntityRecycled})
	assert.Equal(t, 3, sm.Pending())

	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{}})
	assert.Equal(t, 4, sm.Pending())

	// Без колонки Cleanup ничего не делает.
	sm.Cleanup()
	assert.Equal(t, 4, sm.Pending())
}
