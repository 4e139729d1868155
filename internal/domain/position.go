package domain

import (
	"fmt"
	"strings"
)

// Position - координаты клетки.
// X - ось строк (вверх = X-1), Y - ось столбцов (влево = Y-1).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanTo возвращает манхэттенское расстояние. Препятствия не учитываются.
func (p Position) ManhattanTo(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Shift возвращает соседнюю клетку в направлении dir, не меняя p.
func (p Position) Shift(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction - одно из четырёх направлений шага.
type Direction uint8

const (
	Up Direction = iota
	Left
	Down
	Right
)

// Directions - фиксированный порядок перебора для движения и атаки.
var Directions = [...]Direction{Up, Left, Down, Right}

// Delta возвращает смещение (dx, dy) для направления.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Left:
		return 0, -1
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection разбирает "up", "left", "down", "right" (регистр не важен).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "left", "l":
		return Left, nil
	case "down", "d":
		return Down, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
