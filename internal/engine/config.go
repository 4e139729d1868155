package engine

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config хранит параметры запуска движка
type Config struct {
	Port         string `env:"CT_PORT" envDefault:"8080"`
	ScenarioPath string `env:"CT_SCENARIO" envDefault:"scenarios/skirmish.yaml"`

	// MaxTurns - 0 значит играть до поражения игрока
	MaxTurns     int           `env:"CT_MAX_TURNS" envDefault:"200"`
	TurnInterval time.Duration `env:"CT_TURN_INTERVAL" envDefault:"500ms"`

	// CommandTimeout - сколько ждать команду игрока из сети
	CommandTimeout time.Duration `env:"CT_COMMAND_TIMEOUT" envDefault:"400ms"`
}

// NewConfig создает конфиг по умолчанию. Значения берутся из тегов envDefault.
func NewConfig() Config {
	var cfg Config
	// Пустое окружение: ошибиться могут только сами теги
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("engine: bad config defaults: %v", err))
	}
	return cfg
}

// LoadConfig читает конфиг из переменных окружения, пропуски заполняются из envDefault.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxTurns < 0 {
		return Config{}, fmt.Errorf("CT_MAX_TURNS must not be negative, got %d", cfg.MaxTurns)
	}
	return cfg, nil
}
