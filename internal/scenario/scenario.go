package scenario

import (
	"bytes"
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/internal/engine"
	"cognitive-tactics/internal/systems"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Роли персонажей в файле сценария
const (
	RoleHuman    = "human"
	RoleFriendly = "friendly"
	RoleHostile  = "hostile"
)

// Scenario - описание партии: карта, персонажи и (опционально) скрипт игрока.
type Scenario struct {
	Name       string          `yaml:"name"`
	Layout     []string        `yaml:"layout"`
	Characters []CharacterSpec `yaml:"characters"`
	Script     []string        `yaml:"script"`
}

// CharacterSpec - один персонаж. Strategy по умолчанию выводится из Role.
type CharacterSpec struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Strategy string `yaml:"strategy"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	HP       int    `yaml:"hp"`
}

func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse разбирает YAML. Неизвестные поля - ошибка, чтобы опечатки не терялись.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scenario")
		}
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate проверяет то, что можно проверить без карты.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return errors.New("name is required")
	}
	if len(sc.Characters) == 0 {
		return errors.New("no characters")
	}

	humans := 0
	for i, cs := range sc.Characters {
		if cs.Name == "" {
			return fmt.Errorf("character #%d: name is required", i)
		}
		if cs.HP <= 0 {
			return fmt.Errorf("character %s: hp must be positive, got %d", cs.Name, cs.HP)
		}
		if _, err := symbolFor(cs.Role); err != nil {
			return fmt.Errorf("character %s: %w", cs.Name, err)
		}
		if strings.ToLower(cs.Role) == RoleHuman {
			humans++
		}
	}
	if humans != 1 {
		return fmt.Errorf("exactly one human character required, got %d", humans)
	}

	for i, line := range sc.Script {
		if _, err := domain.ParseCommand(line); err != nil {
			return fmt.Errorf("script line %d: %w", i+1, err)
		}
	}
	return nil
}

// Build собирает партию. controller управляет игроком; если он nil,
// используется скрипт из сценария.
func Build(sc *Scenario, controller systems.Controller) (*engine.Game, error) {
	m, err := domain.ParseMap(sc.Layout)
	if err != nil {
		return nil, err
	}

	if controller == nil {
		controller, err = scriptController(sc.Script)
		if err != nil {
			return nil, err
		}
	}

	reg := domain.NewRegistry()
	for _, cs := range sc.Characters {
		sym, err := symbolFor(cs.Role)
		if err != nil {
			return nil, fmt.Errorf("character %s: %w", cs.Name, err)
		}

		strategyName := cs.Strategy
		if strategyName == "" {
			strategyName = defaultStrategy(sym)
		}
		strategy, err := systems.FromName(strategyName, controller)
		if err != nil {
			return nil, fmt.Errorf("character %s: %w", cs.Name, err)
		}

		c := domain.NewCharacter(cs.Name, sym, domain.Position{X: cs.X, Y: cs.Y}, cs.HP, strategy)
		if err := reg.Add(m, c); err != nil {
			return nil, err
		}
	}

	return engine.NewGame(sc.Name, m, reg), nil
}

func scriptController(lines []string) (*systems.ScriptedController, error) {
	cmds := make([]domain.Command, 0, len(lines))
	for i, line := range lines {
		cmd, err := domain.ParseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", i+1, err)
		}
		cmds = append(cmds, cmd)
	}
	return systems.NewScriptedController(cmds...), nil
}

func symbolFor(role string) (domain.Symbol, error) {
	switch strings.ToLower(role) {
	case RoleHuman:
		return domain.SymbolHuman, nil
	case RoleFriendly:
		return domain.SymbolFriendly, nil
	case RoleHostile:
		return domain.SymbolHostile, nil
	}
	return 0, fmt.Errorf("unknown role %q", role)
}

func defaultStrategy(sym domain.Symbol) string {
	switch sym {
	case domain.SymbolHuman:
		return "human"
	case domain.SymbolFriendly:
		return "friendly"
	}
	return "aggressor"
}
