package domain

import (
	"fmt"
	"strings"
)

// Command - решение игрока на один ход.
// Dir имеет смысл только для MOVE и ATTACK.
// После MOVE можно добавить атаку (AttackAfter): ход игрока, как и ход NPC,
// это необязательный шаг и затем необязательный удар.
type Command struct {
	Action ActionType `json:"action"`
	Dir    Direction  `json:"dir"`

	AttackAfter bool      `json:"attackAfter,omitempty"`
	AttackDir   Direction `json:"attackDir,omitempty"`
}

// WaitCommand - пропуск хода.
var WaitCommand = Command{Action: ActionWait}

// MoveThenAttack - шаг в move, затем удар в сторону attack с новой клетки.
func MoveThenAttack(move, attack Direction) Command {
	return Command{Action: ActionMove, Dir: move, AttackAfter: true, AttackDir: attack}
}

// ParseCommand разбирает "move up", "attack left", "wait"
// и составную команду "move up, attack left".
func ParseCommand(s string) (Command, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return Command{}, fmt.Errorf("command %q: at most a move and an attack per turn", s)
	}

	cmd, err := parseSingle(parts[0])
	if err != nil {
		return Command{}, fmt.Errorf("command %q: %w", s, err)
	}
	if len(parts) == 1 {
		return cmd, nil
	}

	follow, err := parseSingle(parts[1])
	if err != nil {
		return Command{}, fmt.Errorf("command %q: %w", s, err)
	}
	if cmd.Action != ActionMove || follow.Action != ActionAttack {
		return Command{}, fmt.Errorf("command %q: only \"move <dir>, attack <dir>\" can be combined", s)
	}
	return MoveThenAttack(cmd.Dir, follow.Dir), nil
}

func parseSingle(s string) (Command, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	action := ParseAction(fields[0])
	switch action {
	case ActionWait:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("wait takes no arguments")
		}
		return WaitCommand, nil
	case ActionMove, ActionAttack:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("expected a direction")
		}
		dir, err := ParseDirection(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Action: action, Dir: dir}, nil
	}
	return Command{}, fmt.Errorf("unknown action %q", fields[0])
}

func (c Command) String() string {
	if c.Action == ActionWait || c.Action == ActionUnknown {
		return strings.ToLower(c.Action.String())
	}
	s := strings.ToLower(c.Action.String()) + " " + c.Dir.String()
	if c.AttackAfter {
		s += ", attack " + c.AttackDir.String()
	}
	return s
}
