package logger

import (
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init работает с настройками logrus по умолчанию.
var Log = logrus.New()

// Config - настройки логгера из окружения.
type Config struct {
	// "debug" покажет ход каждого персонажа
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"` // json | text
}

// Init читает LOG_LEVEL и LOG_FORMAT и настраивает глобальный логгер.
// Вызывается один раз при старте (main.go, TestMain).
func Init() {
	cfg, err := parseConfig()
	Setup(cfg, os.Stdout)
	if err != nil {
		Log.WithError(err).Warn("Bad logger environment, using info/text")
	}
}

func parseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{Level: "info", Format: "text"}, err
	}
	return cfg, nil
}

// Setup применяет конфиг к глобальному логгеру.
func Setup(cfg Config, out io.Writer) {
	level, levelErr := logrus.ParseLevel(cfg.Level)
	if levelErr != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для продакшена и сбора логов, "text" - для разработки.
	if strings.ToLower(cfg.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
	if levelErr != nil {
		Log.WithError(levelErr).Warn("Unknown LOG_LEVEL, using info")
	}
}
