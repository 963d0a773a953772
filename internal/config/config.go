package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config keeps runtime settings for the planner.
type Config struct {
	DatabasePath string        `yaml:"database_path" env:"PLANWISE_DB" env-default:"planwise.db"`
	PollInterval time.Duration `yaml:"poll_interval" env:"PLANWISE_POLL_INTERVAL" env-default:"1m"`
	DailyAgenda  string        `yaml:"daily_agenda" env:"PLANWISE_DAILY_AGENDA" env-default:"08:00"`
}

// Load reads configuration from the environment with sane defaults.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
