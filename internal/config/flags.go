package config

import "flag"

// Flags - общие флаги всех фронтендов. Флаги перекрывают файл конфигурации.
type Flags struct {
	Path     string
	Seed     int64
	Mute     bool
	LogLevel string
}

// RegisterFlags регистрирует флаги в fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Path, "config", "", "path to YAML config (defaults are used when empty)")
	fs.Int64Var(&f.Seed, "seed", 0, "random seed, 0 keeps the configured one")
	fs.BoolVar(&f.Mute, "mute", false, "disable sound")
	fs.StringVar(&f.LogLevel, "log-level", "", "override logger level (debug, info, warn, error)")
	return f
}

// Load читает файл и применяет поверх него флаги.
func (f *Flags) Load() (Config, error) {
	cfg, err := Load(f.Path)
	if err != nil {
		return cfg, err
	}
	if f.Seed != 0 {
		cfg.Tuning.Seed = f.Seed
	}
	if f.Mute {
		cfg.Audio.Enabled = false
	}
	if f.LogLevel != "" {
		cfg.Logger.Level = f.LogLevel
	}
	return cfg, nil
}
