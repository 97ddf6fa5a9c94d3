package audio

import (
	"fmt"
	"sync"
	"time"

	"go-endless-runner/internal/config"
	"go-endless-runner/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// SoundManager озвучивает игровые события. Все звуки идут через один микшер,
// колонка подключается отдельно в Initialize.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	reward      config.IntRange
	initialized bool
	logger      *zap.Logger
}

// NewSoundManager создаёт менеджер. reward нужен для высоты звона бонуса.
func NewSoundManager(cfg config.AudioConfig, reward config.IntRange, logger *zap.Logger) *SoundManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.MasterVolume,
		reward: reward,
		logger: logger,
	}
}

// Initialize открывает колонку и подключает к ней микшер.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup глушит все звуки.
func (sm *SoundManager) Cleanup() {
	if !sm.isInitialized() {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.mu.Lock()
	sm.initialized = false
	sm.mu.Unlock()
}

// Subscribe подписывает менеджер на звучащие события.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.Subscribe(sm,
		event.GameStarted,
		event.ObstacleHit,
		event.BonusCollected,
		event.GameOver,
	)
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameStarted:
		sm.play(CreateStartSound(sm.rate, sm.volume))
	case event.ObstacleHit:
		sm.play(CreateHitSound(sm.rate, sm.volume))
	case event.BonusCollected:
		data, _ := e.Data.(event.HitData)
		freq := PickupFrequency(data.Reward, sm.reward.Min, sm.reward.Max)
		s, err := CreatePickupSound(sm.rate, freq, sm.volume)
		if err != nil {
			sm.logger.Warn("pickup sound", zap.Error(err))
			return
		}
		sm.play(s)
	case event.GameOver:
		sm.play(CreateGameOverSound(sm.rate, sm.volume))
	}
}

// Pending - сколько звуков ещё играет в микшере.
func (sm *SoundManager) Pending() int {
	if sm.isInitialized() {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.mixer.Len()
}

func (sm *SoundManager) play(s beep.Streamer) {
	// Колонка читает микшер из своей горутины.
	if sm.isInitialized() {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.mixer.Add(s)
}

func (sm *SoundManager) isInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
