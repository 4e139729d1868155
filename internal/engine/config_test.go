package engine

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("CT_PORT", "9090")
	t.Setenv("CT_TURN_INTERVAL", "2s")
	t.Setenv("CT_MAX_TURNS", "0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9090" || cfg.TurnInterval != 2*time.Second || cfg.MaxTurns != 0 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.CommandTimeout != 400*time.Millisecond {
		t.Errorf("Expected default command timeout, got %v", cfg.CommandTimeout)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("CT_MAX_TURNS", "-1")
	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for negative turn limit")
	}

	t.Setenv("CT_MAX_TURNS", "ten")
	if _, err := LoadConfig(); err == nil {
		t.Error("Expected parse error")
	}
}

func TestNewConfig_IgnoresEnvironment(t *testing.T) {
	t.Setenv("CT_PORT", "9090")

	cfg := NewConfig()
	want := Config{
		Port:           "8080",
		ScenarioPath:   "scenarios/skirmish.yaml",
		MaxTurns:       200,
		TurnInterval:   500 * time.Millisecond,
		CommandTimeout: 400 * time.Millisecond,
	}
	if cfg != want {
		t.Errorf("Expected defaults %+v, got %+v", want, cfg)
	}
}
