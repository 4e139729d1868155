package systems

import (
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AggressorStrategy - идёт к игроку и бьёт любого соседа.
type AggressorStrategy struct{}

func (s *AggressorStrategy) Name() string { return "aggressor" }

// Execute: если персонаж жив, он делает один шаг к игроку,
// а затем атакует первого найденного соседа.
func (s *AggressorStrategy) Execute(m *domain.Map, c *domain.Character, reg *domain.Registry) error {
	if c.IsDefeated() {
		return nil
	}

	c.Display()
	moveCloserToHuman(m, c, reg)
	_, err := attackAdjacentCharacter(m, c, reg)
	return err
}

// FriendlyStrategy - идёт к игроку, но не нападает.
// После первой атаки по нему Attack заменяет стратегию на AggressorStrategy.
type FriendlyStrategy struct{}

func (s *FriendlyStrategy) Name() string { return "friendly" }

func (s *FriendlyStrategy) Execute(m *domain.Map, c *domain.Character, reg *domain.Registry) error {
	if c.IsDefeated() {
		return nil
	}

	c.Display()
	moveCloserToHuman(m, c, reg)
	return nil
}

// humanTarget - клетка, к которой идут NPC. Обе оси берутся из позиции игрока.
func humanTarget(m *domain.Map) domain.Position {
	return m.HumanPosition()
}

// moveCloserToHuman делает не больше одного шага.
// Направления перебираются в порядке Up, Left, Down, Right; берётся первое,
// где клетка в пределах карты, пуста и расстояние до игрока не растёт.
// Препятствия при оценке расстояния не учитываются.
func moveCloserToHuman(m *domain.Map, c *domain.Character, reg *domain.Registry) bool {
	target := humanTarget(m)
	dist := c.Pos.ManhattanTo(target)
	if dist == 0 {
		return false
	}

	for _, dir := range domain.Directions {
		next := c.Pos.Shift(dir)
		if !m.IsEmpty(next) || next.ManhattanTo(target) > dist {
			continue
		}

		from := c.Pos
		Move(m, c, dir)
		logger.Log.WithFields(logrus.Fields{
			"component": "ai_system",
			"name":      c.Name,
			"dir":       dir.String(),
			"from":      from.String(),
			"to":        c.Pos.String(),
			"target":    target.String(),
		}).Debug("Moved closer to human")
		recordMove(reg, c, dir)
		return true
	}
	return false
}

// attackAdjacentCharacter атакует первого соседа (Up, Left, Down, Right)
// с символом персонажа. Возвращает false, если атаковать некого.
func attackAdjacentCharacter(m *domain.Map, c *domain.Character, reg *domain.Registry) (bool, error) {
	for _, dir := range domain.Directions {
		p := c.Pos.Shift(dir)
		if !m.InBounds(p) || !m.Cell(p.X, p.Y).IsCharacter() {
			continue
		}
		if _, err := Attack(m, reg, c, p); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
