package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionAttack
	ActionWait
)

// Маппинг для конвертации текста -> Domain
var actionStringToCmd = map[string]ActionType{
	"MOVE":   ActionMove,
	"ATTACK": ActionAttack,
	"WAIT":   ActionWait,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove:   "MOVE",
	ActionAttack: "ATTACK",
	ActionWait:   "WAIT",
}

// ParseAction конвертирует строку в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
