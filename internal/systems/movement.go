package systems

import (
	"cognitive-tactics/internal/domain"
	"fmt"
)

// MovementResult - результат проверки шага
type MovementResult struct {
	Target    domain.Position
	HasMoved  bool
	IsWall    bool          // Стена или край карты
	BlockedBy domain.Symbol // Если врезались в персонажа
}

// CalculateMove проверяет шаг в направлении dir. Не меняет состояние карты!
func CalculateMove(m *domain.Map, c *domain.Character, dir domain.Direction) MovementResult {
	target := c.Pos.Shift(dir)
	res := MovementResult{Target: target}

	// 1. Проверка границ
	if !m.InBounds(target) {
		res.IsWall = true
		return res
	}

	// 2. Стены и персонажи
	switch cell := m.Cell(target.X, target.Y); {
	case cell == domain.SymbolWall:
		res.IsWall = true
		return res
	case cell.IsCharacter():
		res.BlockedBy = cell
		return res
	case cell != domain.SymbolEmpty:
		res.IsWall = true
		return res
	}

	res.HasMoved = true
	return res
}

// Move - примитив шага: очищает текущую клетку, сдвигает координату на 1,
// пишет символ персонажа в новую клетку.
// Границы НЕ проверяются, это делает вызывающий (CalculateMove / moveCloserToHuman).
func Move(m *domain.Map, c *domain.Character, dir domain.Direction) {
	m.ClearCell(c.Pos.X, c.Pos.Y)
	c.Pos = c.Pos.Shift(dir)
	m.SetCell(c.Pos.X, c.Pos.Y, c.Symbol)

	// Карта всегда знает, где стоит игрок
	if c.Symbol == domain.SymbolHuman {
		m.SetHumanPosition(c.Pos)
	}
}

func MoveUp(m *domain.Map, c *domain.Character)    { Move(m, c, domain.Up) }
func MoveDown(m *domain.Map, c *domain.Character)  { Move(m, c, domain.Down) }
func MoveLeft(m *domain.Map, c *domain.Character)  { Move(m, c, domain.Left) }
func MoveRight(m *domain.Map, c *domain.Character) { Move(m, c, domain.Right) }

func recordMove(reg *domain.Registry, c *domain.Character, dir domain.Direction) {
	reg.Record(domain.Event{
		Type:  domain.EventMove,
		Actor: c.Name,
		Pos:   c.Pos,
		Text:  fmt.Sprintf("%s идёт %s.", c.Name, dir),
	})
}
