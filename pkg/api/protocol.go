package api

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер рассылает клиентам.
// Полный снимок партии после очередного хода.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" после хода, "ERROR" на плохую команду.
	Type string `json:"type"`

	// Turn номер завершённого хода (0 - партия ещё не начиналась).
	Turn int `json:"turn"`

	// Scenario название загруженного сценария.
	Scenario string `json:"scenario,omitempty"`

	// Grid размеры карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Rows карта построчно, по символу на клетку.
	Rows []string `json:"rows,omitempty"`

	// Characters все персонажи в порядке реестра (он же порядок ходов).
	Characters []CharacterView `json:"characters,omitempty"`

	// Logs события, случившиеся за ход.
	Logs []LogEntry `json:"logs,omitempty"`

	// GameOver true, когда персонаж игрока повержен.
	GameOver bool `json:"gameOver"`

	// Error текст ошибки для Type == "ERROR".
	Error string `json:"error,omitempty"`
}

// GridMeta содержит общие размеры карты.
// Width - число строк (ось X), Length - число столбцов (ось Y).
type GridMeta struct {
	Width  int `json:"w"`
	Length int `json:"l"`
}

// CharacterView это DTO для персонажа.
type CharacterView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	HP       int    `json:"hp"`
	Strategy string `json:"strategy"`
	Defeated bool   `json:"defeated"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	Turn int    `json:"turn"`
	Type string `json:"type"` // MOVE, ATTACK, PROVOKED, DEFEATED
	Text string `json:"text"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand команда игрока на следующий ход.
type ClientCommand struct {
	// Action MOVE, ATTACK или WAIT.
	Action string `json:"action"`

	// Dir направление для MOVE и ATTACK: up, left, down, right.
	Dir string `json:"dir,omitempty"`

	// Attack направление удара после шага, только для MOVE.
	Attack string `json:"attack,omitempty"`
}

// Text возвращает команду в текстовой форме ("move up", "move up, attack left").
func (c ClientCommand) Text() string {
	if c.Dir == "" {
		return c.Action
	}
	text := c.Action + " " + c.Dir
	if c.Attack != "" {
		text += ", attack " + c.Attack
	}
	return text
}
