package config

// LoggerConfig - настройки zap-логгера
type LoggerConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // "console" или "json"
	Development      bool   `yaml:"development"`
	EnableSampling   bool   `yaml:"enable_sampling"`
	SampleInitial    int    `yaml:"sample_initial"`
	SampleThereafter int    `yaml:"sample_thereafter"`
	OutputPath       string `yaml:"output_path"`
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:            "info",
		Format:           "console",
		Development:      true,
		SampleInitial:    100,
		SampleThereafter: 100,
		OutputPath:       "stderr",
	}
}
