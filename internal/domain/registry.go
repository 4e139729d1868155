package domain

import "fmt"

// Registry - упорядоченный список всех персонажей одной партии.
// Передается в ход явно, глобального состояния нет.
// Заодно копит журнал событий текущего хода.
type Registry struct {
	chars  []*Character
	events []Event
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add ставит персонажа на карту и регистрирует его.
// Символ должен быть символом персонажа, клетка - в пределах карты и пустой:
// так карта и реестр остаются согласованными с первого хода.
func (r *Registry) Add(m *Map, c *Character) error {
	if !c.Symbol.IsCharacter() {
		return fmt.Errorf("add %s with symbol %q: %w", c.Name, c.Symbol, ErrNotACharacter)
	}
	if !m.InBounds(c.Pos) {
		return fmt.Errorf("add %s at %s: %w", c.Name, c.Pos, ErrOutOfBounds)
	}
	if !m.IsEmpty(c.Pos) {
		return fmt.Errorf("add %s at %s: %w", c.Name, c.Pos, ErrCellOccupied)
	}

	m.SetCell(c.Pos.X, c.Pos.Y, c.Symbol)
	if c.Symbol == SymbolHuman {
		m.SetHumanPosition(c.Pos)
	}
	r.chars = append(r.chars, c)
	return nil
}

// At ищет персонажа по точным координатам линейным проходом.
func (r *Registry) At(p Position) (*Character, bool) {
	for _, c := range r.chars {
		if c.Pos == p {
			return c, true
		}
	}
	return nil, false
}

// Human возвращает первого персонажа игрока.
func (r *Registry) Human() (*Character, bool) {
	for _, c := range r.chars {
		if c.Symbol == SymbolHuman {
			return c, true
		}
	}
	return nil, false
}

// All возвращает персонажей в порядке регистрации. Срез общий, не модифицировать.
func (r *Registry) All() []*Character {
	return r.chars
}

func (r *Registry) Len() int {
	return len(r.chars)
}

// Record добавляет событие в журнал хода.
func (r *Registry) Record(e Event) {
	r.events = append(r.events, e)
}

// Drain отдает накопленные события и очищает журнал.
func (r *Registry) Drain() []Event {
	events := r.events
	r.events = nil
	return events
}
