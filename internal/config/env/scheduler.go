package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/config"
)

type schedulerConfig struct {
	Hour int `env:"REMINDER_HOUR" envDefault:"20"`
}

func NewSchedulerConfig() (config.SchedulerConfig, error) {
	cfg := &schedulerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scheduler config: %w", err)
	}

	if cfg.Hour < 0 || cfg.Hour > 23 {
		return nil, fmt.Errorf("REMINDER_HOUR must be between 0 and 23, got %d", cfg.Hour)
	}

	return cfg, nil
}

func (cfg *schedulerConfig) ReminderHour() int {
	return cfg.Hour
}
