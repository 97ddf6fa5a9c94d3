package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	hitDuration      = 180 * time.Millisecond
	pickupDuration   = 220 * time.Millisecond
	startDuration    = 300 * time.Millisecond
	gameOverDuration = 900 * time.Millisecond

	pickupBaseFreq = 660.0
)

// WaveType - форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSaw
)

// oscillator генерирует сырую волну заданной длины
type oscillator struct {
	freq     float64
	sweep    float64 // изменение частоты за всю длительность, Гц
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator создаёт осциллятор. sweep линейно меняет частоту к концу звука.
func NewOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + o.sweep*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope - атака и экспоненциальное затухание
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	decay    float64 // сэмплов на e-кратное затухание
}

func NewEnvelope(s beep.Streamer, attack, decay time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		decay:    math.Max(1, float64(rate.N(decay))),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else {
			vol = math.Exp(-float64(e.position-e.attack) / e.decay)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume оборачивает поток регулятором громкости.
// math.Log2(0) даёт -Inf, поэтому ноль - это тишина.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHitSound - низкий пилообразный удар с падающей частотой.
func CreateHitSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(140, -80, hitDuration, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, 5*time.Millisecond, 60*time.Millisecond, rate), volume*0.5)
}

// PickupFrequency - высота звона бонуса: от базовой ноты на минимальной
// награде до октавы выше на максимальной.
func PickupFrequency(reward, minReward, maxReward int) float64 {
	if maxReward <= minReward {
		return pickupBaseFreq
	}
	ratio := float64(reward-minReward) / float64(maxReward-minReward)
	ratio = math.Max(0, math.Min(1, ratio))
	return pickupBaseFreq * math.Pow(2, ratio)
}

// CreatePickupSound - звон из основного тона и октавы.
func CreatePickupSound(rate beep.SampleRate, freq, volume float64) (beep.Streamer, error) {
	fund, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	over, err := generators.SineTone(rate, freq*2)
	if err != nil {
		return nil, err
	}
	n := rate.N(pickupDuration)
	mixed := beep.Mix(
		newVolume(beep.Take(n, fund), 0.7),
		newVolume(beep.Take(n, over), 0.3),
	)
	shaped := NewEnvelope(mixed, 3*time.Millisecond, 70*time.Millisecond, rate)
	return newVolume(shaped, volume), nil
}

// CreateStartSound - короткий восходящий свип.
func CreateStartSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(220, 440, startDuration, WaveSine, rate)
	return newVolume(NewEnvelope(osc, 20*time.Millisecond, 150*time.Millisecond, rate), volume*0.6)
}

// CreateGameOverSound - долгий нисходящий свип.
func CreateGameOverSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(330, -250, gameOverDuration, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, 10*time.Millisecond, 400*time.Millisecond, rate), volume*0.5)
}
