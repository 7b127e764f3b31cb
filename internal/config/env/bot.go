package env

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/config"
)

type botConfig struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func NewBotConfig() (config.BotConfig, error) {
	cfg := &botConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bot config: %w", err)
	}

	if cfg.BotToken == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN not found")
	}

	return cfg, nil
}

func (cfg *botConfig) Token() string {
	return cfg.BotToken
}

func (cfg *botConfig) Debug() bool {
	return cfg.LogLevel == "debug"
}
