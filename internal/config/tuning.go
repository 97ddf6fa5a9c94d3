package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning оборачивается ошибками Validate.
var ErrInvalidTuning = errors.New("invalid tuning")

// Range - закрытый числовой интервал
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// IntRange - закрытый целочисленный интервал
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Tuning - игровые параметры, которые можно переопределить YAML-файлом.
type Tuning struct {
	Seed int64 `yaml:"seed"`

	ForwardSpeed float64 `yaml:"forward_speed"`
	LateralSpeed float64 `yaml:"lateral_speed"`

	ObstacleCount int `yaml:"obstacle_count"`
	BonusCount    int `yaml:"bonus_count"`

	SpawnSpreadX     float64  `yaml:"spawn_spread_x"`     // сущность появляется в ±SpawnSpreadX от полосы
	SpawnMinAhead    float64  `yaml:"spawn_min_ahead"`    // минимальная дистанция впереди
	SpawnDepthJitter float64  `yaml:"spawn_depth_jitter"` // добавочная случайная дистанция
	ObstacleScale    Range    `yaml:"obstacle_scale"`
	Reward           IntRange `yaml:"reward"`

	StartHealth        int     `yaml:"start_health"`
	ObstacleDamage     int     `yaml:"obstacle_damage"`
	CollisionThreshold float64 `yaml:"collision_threshold"`

	RollAngle        float64 `yaml:"roll_angle"`
	SteerDuration    float64 `yaml:"steer_duration"`
	RecenterDuration float64 `yaml:"recenter_duration"`
}

// DefaultTuning возвращает параметры исходной игры.
func DefaultTuning() Tuning {
	return Tuning{
		ForwardSpeed:       15,
		LateralSpeed:       3,
		ObstacleCount:      10,
		BonusCount:         10,
		SpawnSpreadX:       30,
		SpawnMinAhead:      100,
		SpawnDepthJitter:   100,
		ObstacleScale:      Range{Min: 0.5, Max: 2},
		Reward:             IntRange{Min: 5, Max: 20},
		StartHealth:        100,
		ObstacleDamage:     10,
		CollisionThreshold: 0.2,
		RollAngle:          20 * math.Pi / 180,
		SteerDuration:      0.8,
		RecenterDuration:   0.5,
	}
}

// Validate проверяет параметры и возвращает первую найденную ошибку.
func (t Tuning) Validate() error {
	switch {
	case !(t.ForwardSpeed > 0):
		return fmt.Errorf("%w: forward_speed must be positive, got %v", ErrInvalidTuning, t.ForwardSpeed)
	case !(t.LateralSpeed >= 0):
		return fmt.Errorf("%w: lateral_speed must not be negative, got %v", ErrInvalidTuning, t.LateralSpeed)
	case t.ObstacleCount < 0 || t.BonusCount < 0:
		return fmt.Errorf("%w: pool sizes must not be negative", ErrInvalidTuning)
	case t.ObstacleCount+t.BonusCount == 0:
		return fmt.Errorf("%w: entity pool is empty", ErrInvalidTuning)
	case !(t.SpawnSpreadX >= 0) || !(t.SpawnMinAhead >= 0) || !(t.SpawnDepthJitter >= 0):
		return fmt.Errorf("%w: spawn distances must not be negative", ErrInvalidTuning)
	case !(t.ObstacleScale.Min > 0) || !(t.ObstacleScale.Min <= t.ObstacleScale.Max):
		return fmt.Errorf("%w: obstacle_scale [%v, %v]", ErrInvalidTuning, t.ObstacleScale.Min, t.ObstacleScale.Max)
	case t.Reward.Min <= 0 || t.Reward.Min > t.Reward.Max:
		return fmt.Errorf("%w: reward [%d, %d]", ErrInvalidTuning, t.Reward.Min, t.Reward.Max)
	case t.StartHealth <= 0:
		return fmt.Errorf("%w: start_health must be positive, got %d", ErrInvalidTuning, t.StartHealth)
	case t.ObstacleDamage < 0:
		return fmt.Errorf("%w: obstacle_damage must not be negative, got %d", ErrInvalidTuning, t.ObstacleDamage)
	case !(t.CollisionThreshold >= 0):
		return fmt.Errorf("%w: collision_threshold must not be negative", ErrInvalidTuning)
	case !(t.SteerDuration > 0) || !(t.RecenterDuration > 0):
		return fmt.Errorf("%w: steer and recenter durations must be positive", ErrInvalidTuning)
	}
	return nil
}

// Config - корневая структура файла конфигурации
type Config struct {
	Tuning Tuning       `yaml:"tuning"`
	Logger LoggerConfig `yaml:"logger"`
	Audio  AudioConfig  `yaml:"audio"`
}

// Default возвращает конфигурацию без файла.
func Default() Config {
	return Config{
		Tuning: DefaultTuning(),
		Logger: DefaultLoggerConfig(),
		Audio:  DefaultAudioConfig(),
	}
}

// Load читает YAML поверх значений по умолчанию. Пустой путь даёт Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse разбирает YAML в cfg и проверяет результат.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return err
	}
	return cfg.Audio.Validate()
}
