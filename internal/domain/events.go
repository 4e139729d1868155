package domain

// EventType - Внутренний числовой идентификатор события
type EventType uint8

const (
	EventUnknown EventType = iota
	EventMove
	EventAttack
	EventProvoked // дружелюбный стал агрессором
	EventDefeated
)

// Маппинг для логов Domain -> String
var eventCmdToString = map[EventType]string{
	EventMove:     "MOVE",
	EventAttack:   "ATTACK",
	EventProvoked: "PROVOKED",
	EventDefeated: "DEFEATED",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (e EventType) String() string {
	if val, ok := eventCmdToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// MarshalText отдает тип события строкой в JSON.
func (e EventType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Event - запись в журнале хода.
type Event struct {
	Type   EventType `json:"type"`
	Actor  string    `json:"actor"`
	Target string    `json:"target,omitempty"`
	Pos    Position  `json:"pos"`
	Text   string    `json:"text"`
}
