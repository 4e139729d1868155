package domain

// Symbol - маркер клетки на карте (пусто, стена или тип персонажа).
type Symbol byte

// Символы карты
const (
	SymbolEmpty    Symbol = ' '
	SymbolWall     Symbol = '#'
	SymbolHuman    Symbol = 'S' // Персонаж под управлением игрока
	SymbolFriendly Symbol = 'C' // Дружелюбный, пока его не тронули
	SymbolHostile  Symbol = 'O' // Агрессор
)

// IsCharacter возвращает true, если в клетке стоит персонаж.
// Именно эти символы считаются целями для атаки.
func (s Symbol) IsCharacter() bool {
	return s == SymbolHuman || s == SymbolFriendly || s == SymbolHostile
}

func (s Symbol) String() string {
	return string([]byte{byte(s)})
}

// MarshalText нужен, чтобы символ уходил клиенту строкой, а не числом.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte{byte(s)}, nil
}
