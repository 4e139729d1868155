package domain

import (
	"fmt"
	"strings"
)

// Map - сетка символов и позиция персонажа игрока.
// Ячейки хранятся как cells[x][y]: Width - протяжённость по X (число строк),
// Length - по Y (число столбцов).
type Map struct {
	cells [][]Symbol
	human Position
}

// NewMap создает пустую карту width x length.
// Отрицательные размеры считаются нулевыми.
func NewMap(width, length int) *Map {
	width, length = max(width, 0), max(length, 0)
	cells := make([][]Symbol, width)
	for x := range cells {
		row := make([]Symbol, length)
		for y := range row {
			row[y] = SymbolEmpty
		}
		cells[x] = row
	}
	return &Map{cells: cells}
}

// ParseMap строит карту из текстовых строк: '#' - стена, '.' или ' ' - пол.
// Персонажи на раскладке не допускаются, их расставляет реестр.
func ParseMap(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}
	length := len(rows[0])
	if length == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrInvalidLayout)
	}

	m := NewMap(len(rows), length)
	for x, row := range rows {
		if len(row) != length {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidLayout, x, len(row), length)
		}
		for y := 0; y < len(row); y++ {
			switch row[y] {
			case '#':
				m.cells[x][y] = SymbolWall
			case '.', ' ':
				m.cells[x][y] = SymbolEmpty
			default:
				return nil, fmt.Errorf("%w: unexpected glyph %q at (%d,%d)", ErrInvalidLayout, row[y], x, y)
			}
		}
	}
	return m, nil
}

func (m *Map) Width() int { return len(m.cells) }

func (m *Map) Length() int {
	if len(m.cells) == 0 {
		return 0
	}
	return len(m.cells[0])
}

// InBounds проверяет, лежит ли позиция внутри карты.
func (m *Map) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.Width() && p.Y >= 0 && p.Y < m.Length()
}

// Cell возвращает символ клетки. За пределами карты - стена.
func (m *Map) Cell(x, y int) Symbol {
	if !m.InBounds(Position{X: x, Y: y}) {
		return SymbolWall
	}
	return m.cells[x][y]
}

// SetCell пишет символ в клетку. Границы не проверяются: это обязанность вызывающего.
func (m *Map) SetCell(x, y int, s Symbol) {
	m.cells[x][y] = s
}

// ClearCell делает клетку пустой.
func (m *Map) ClearCell(x, y int) {
	m.cells[x][y] = SymbolEmpty
}

// IsEmpty - клетка в пределах карты и свободна.
func (m *Map) IsEmpty(p Position) bool {
	return m.InBounds(p) && m.cells[p.X][p.Y] == SymbolEmpty
}

func (m *Map) HumanPosition() Position { return m.human }

func (m *Map) SetHumanPosition(p Position) { m.human = p }

// Rows возвращает карту построчно (по одной строке на X).
func (m *Map) Rows() []string {
	rows := make([]string, 0, m.Width())
	for _, row := range m.cells {
		b := make([]byte, len(row))
		for y, s := range row {
			b[y] = byte(s)
		}
		rows = append(rows, string(b))
	}
	return rows
}

func (m *Map) String() string {
	return strings.Join(m.Rows(), "\n")
}
