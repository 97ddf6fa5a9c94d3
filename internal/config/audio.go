package config

import "fmt"

// AudioConfig - настройки звука
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"` // 0..1
}

func DefaultAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled:      true,
		SampleRate:   44100,
		MasterVolume: 0.6,
	}
}

// Validate проверяет частоту и громкость.
func (a AudioConfig) Validate() error {
	if a.SampleRate <= 0 {
		return fmt.Errorf("audio: sample_rate must be positive, got %d", a.SampleRate)
	}
	if a.MasterVolume < 0 || a.MasterVolume > 1 {
		return fmt.Errorf("audio: master_volume must be in [0, 1], got %g", a.MasterVolume)
	}
	return nil
}
