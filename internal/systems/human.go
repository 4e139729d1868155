package systems

import (
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Controller - источник решений игрока (скрипт, WebSocket-клиент).
type Controller interface {
	NextCommand(c *domain.Character) (domain.Command, error)
}

// HumanPlayerStrategy выполняет команду, полученную от Controller.
// За ход игрок может сделать шаг, затем ударить, как и NPC.
// Невозможный шаг или удар в пустую клетку просто сгорает.
type HumanPlayerStrategy struct {
	Controller Controller
}

func (s *HumanPlayerStrategy) Name() string { return "human" }

func (s *HumanPlayerStrategy) Execute(m *domain.Map, c *domain.Character, reg *domain.Registry) error {
	if c.IsDefeated() {
		return nil
	}
	c.Display()

	if s.Controller == nil {
		return nil
	}

	humanLogger := logger.Log.WithFields(logrus.Fields{
		"component": "human_strategy",
		"name":      c.Name,
	})

	cmd, err := s.Controller.NextCommand(c)
	if err != nil {
		humanLogger.WithError(err).Warn("Controller failed, turn skipped.")
		return nil
	}
	humanLogger = humanLogger.WithField("command", cmd.String())

	switch cmd.Action {
	case domain.ActionMove:
		s.move(m, c, reg, cmd.Dir, humanLogger)
		if cmd.AttackAfter {
			return s.attack(m, c, reg, cmd.AttackDir, humanLogger)
		}

	case domain.ActionAttack:
		return s.attack(m, c, reg, cmd.Dir, humanLogger)

	default:
		humanLogger.Debug("Waiting.")
	}
	return nil
}

// move делает проверенный шаг. Отклонённый шаг не отменяет атаку того же хода.
func (s *HumanPlayerStrategy) move(m *domain.Map, c *domain.Character, reg *domain.Registry, dir domain.Direction, log *logrus.Entry) {
	res := CalculateMove(m, c, dir)
	if !res.HasMoved {
		log.WithFields(logrus.Fields{
			"is_wall":    res.IsWall,
			"blocked_by": res.BlockedBy.String(),
		}).Info("Move rejected.")
		return
	}
	Move(m, c, dir)
	recordMove(reg, c, dir)
}

// attack бьёт соседнюю клетку, если в ней персонаж.
func (s *HumanPlayerStrategy) attack(m *domain.Map, c *domain.Character, reg *domain.Registry, dir domain.Direction, log *logrus.Entry) error {
	p := c.Pos.Shift(dir)
	if !m.InBounds(p) || !m.Cell(p.X, p.Y).IsCharacter() {
		log.WithField("dir", dir.String()).Info("Nothing to attack there.")
		return nil
	}
	_, err := Attack(m, reg, c, p)
	return err
}
