package scenario

import (
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/internal/systems"
	"cognitive-tactics/pkg/logger"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

const arena = `
name: arena
layout:
  - "#####"
  - "#...#"
  - "#...#"
  - "#####"
characters:
  - name: Hero
    role: human
    x: 1
    y: 1
    hp: 5
  - name: Villager
    role: friendly
    x: 2
    y: 3
    hp: 2
  - name: Brute
    role: friendly
    strategy: aggressor
    x: 1
    y: 3
    hp: 2
script:
  - move right
`

func TestParseAndBuild(t *testing.T) {
	sc, err := Parse([]byte(arena))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	g, err := Build(sc, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if g.Name != "arena" || g.Registry.Len() != 3 {
		t.Fatalf("Unexpected game: %s with %d characters", g.Name, g.Registry.Len())
	}
	if g.Map.HumanPosition() != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("Expected human at (1,1), got %v", g.Map.HumanPosition())
	}

	wantStrategies := []string{"human", "friendly", "aggressor"}
	for i, c := range g.Registry.All() {
		if c.StrategyName() != wantStrategies[i] {
			t.Errorf("%s: expected %s, got %s", c.Name, wantStrategies[i], c.StrategyName())
		}
		if g.Map.Cell(c.Pos.X, c.Pos.Y) != c.Symbol {
			t.Errorf("%s not on the map", c.Name)
		}
	}

	// Скрипт: герой идет вправо
	if _, err := g.RunTurn(); err != nil {
		t.Fatalf("RunTurn: %v", err)
	}
	hero, _ := g.Registry.Human()
	if hero.Pos != (domain.Position{X: 1, Y: 2}) {
		t.Errorf("Expected hero at (1,2), got %v", hero.Pos)
	}
}

func TestBuild_ExternalController(t *testing.T) {
	sc, err := Parse([]byte(arena))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Внешний контроллер важнее скрипта
	g, err := Build(sc, systems.NewScriptedController())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := g.RunTurn(); err != nil {
		t.Fatalf("RunTurn: %v", err)
	}
	hero, _ := g.Registry.Human()
	if hero.Pos != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("Hero should wait, got %v", hero.Pos)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		wantErr string
	}{
		{"unknown field", [2]string{"hp: 5", "hp: 5\n    mana: 3"}, "mana"},
		{"bad role", [2]string{"role: human", "role: wizard"}, "unknown role"},
		{"no human", [2]string{"role: human", "role: hostile"}, "exactly one human"},
		{"zero hp", [2]string{"hp: 5", "hp: 0"}, "hp must be positive"},
		{"bad script", [2]string{"move right", "jump right"}, "script line 1"},
		{"no name", [2]string{"name: arena", "name: \"\""}, "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(strings.Replace(arena, tt.replace[0], tt.replace[1], 1)))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := Parse(nil); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestBuild_PlacementErrors(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		want    error
	}{
		{"onto wall", [2]string{"x: 2\n    y: 3", "x: 0\n    y: 3"}, domain.ErrCellOccupied},
		{"onto other character", [2]string{"x: 2\n    y: 3", "x: 1\n    y: 1"}, domain.ErrCellOccupied},
		{"outside map", [2]string{"x: 2\n    y: 3", "x: 9\n    y: 3"}, domain.ErrOutOfBounds},
		{"ragged layout", [2]string{`- "#...#"`, `- "#..#"`}, domain.ErrInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := Parse([]byte(strings.Replace(arena, tt.replace[0], tt.replace[1], 1)))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if _, err := Build(sc, nil); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_BundledScenario(t *testing.T) {
	path := filepath.Join("..", "..", "scenarios", "skirmish.yaml")
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	g, err := Build(sc, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Партия должна дойти до конца без нарушений согласованности
	for i := 0; i < 200 && !g.Over(); i++ {
		if _, err := g.RunTurn(); err != nil {
			t.Fatalf("turn %d: %v", g.Turn, err)
		}
	}

	for _, c := range g.Registry.All() {
		if g.Map.Cell(c.Pos.X, c.Pos.Y) != c.Symbol {
			t.Errorf("%s: map and registry out of sync at %v", c.Name, c.Pos)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
