package domain

import (
	"cognitive-tactics/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Strategy - поведение персонажа, вызывается один раз за ход.
// Стратегию можно заменить на лету (дружелюбный -> агрессор).
type Strategy interface {
	Execute(m *Map, c *Character, reg *Registry) error
	Name() string
}

// Character - участник боя на карте.
type Character struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Pos       Position `json:"pos"`
	HitPoints int      `json:"hp"`
	Symbol    Symbol   `json:"symbol"`

	strategy Strategy
}

// NewCharacter создает персонажа со свежим ID. На карту он попадает через Registry.Add.
func NewCharacter(name string, symbol Symbol, pos Position, hp int, s Strategy) *Character {
	return &Character{
		ID:        uuid.NewString(),
		Name:      name,
		Pos:       pos,
		HitPoints: hp,
		Symbol:    symbol,
		strategy:  s,
	}
}

func (c *Character) Strategy() Strategy { return c.strategy }

func (c *Character) SetStrategy(s Strategy) { c.strategy = s }

// StrategyName возвращает имя текущей стратегии или "none".
func (c *Character) StrategyName() string {
	if c.strategy == nil {
		return "none"
	}
	return c.strategy.Name()
}

// IsDefeated - бой для персонажа окончен при HP <= 0.
func (c *Character) IsDefeated() bool {
	return c.HitPoints <= 0
}

// Display выводит состояние персонажа в лог.
func (c *Character) Display() {
	logger.Log.WithFields(logrus.Fields{
		"component": "character",
		"id":        c.ID,
		"name":      c.Name,
		"symbol":    c.Symbol.String(),
		"x":         c.Pos.X,
		"y":         c.Pos.Y,
		"hp":        c.HitPoints,
		"strategy":  c.StrategyName(),
	}).Debug("Character turn")
}
