package agent

import (
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Реализует systems.Controller: вместо человека решает, куда идти персонажу игрока.
//
// Жизненный цикл:
//  1. NewBot -> создание без мира (сценарий ещё не собран).
//  2. Attach -> привязка к карте и реестру собранной партии.
//  3. NextCommand -> вызывается HumanPlayerStrategy каждый ход.
//
// Поведение: бьёт соседнего врага, иначе идёт к ближайшему живому врагу.
// Дружелюбных не трогает.
type Bot struct {
	m   *domain.Map
	reg *domain.Registry
}

func NewBot() *Bot {
	return &Bot{}
}

// Attach привязывает бота к партии.
func (b *Bot) Attach(m *domain.Map, reg *domain.Registry) {
	b.m = m
	b.reg = reg
}

func (b *Bot) NextCommand(me *domain.Character) (domain.Command, error) {
	if b.m == nil || b.reg == nil {
		return domain.WaitCommand, nil
	}

	botLogger := logger.Log.WithFields(logrus.Fields{
		"component": "bot",
		"name":      me.Name,
	})

	// --- ШАГ 1: враг рядом - атакуем ---
	if dir, target, ok := b.adjacentHostile(me.Pos); ok {
		botLogger.WithField("target", target.Name).Debug("Bot attacks")
		return domain.Command{Action: domain.ActionAttack, Dir: dir}, nil
	}

	// --- ШАГ 2: ищем ближайшего живого врага ---
	target := b.nearestHostile(me)
	if target == nil {
		botLogger.Debug("No hostiles left, waiting")
		return domain.WaitCommand, nil
	}

	// --- ШАГ 3: шаг, сокращающий расстояние ---
	dist := me.Pos.ManhattanTo(target.Pos)
	for _, dir := range domain.Directions {
		next := me.Pos.Shift(dir)
		if !b.m.IsEmpty(next) || next.ManhattanTo(target.Pos) >= dist {
			continue
		}
		// Дошли до врага - бьём в тот же ход
		if attackDir, _, ok := b.adjacentHostile(next); ok {
			return domain.MoveThenAttack(dir, attackDir), nil
		}
		return domain.Command{Action: domain.ActionMove, Dir: dir}, nil
	}

	botLogger.WithField("target", target.Name).Debug("Path is blocked, waiting")
	return domain.WaitCommand, nil
}

// adjacentHostile ищет живого врага рядом с p в порядке Up, Left, Down, Right.
func (b *Bot) adjacentHostile(p domain.Position) (domain.Direction, *domain.Character, bool) {
	for _, dir := range domain.Directions {
		n := p.Shift(dir)
		if b.m.Cell(n.X, n.Y) != domain.SymbolHostile {
			continue
		}
		if target, ok := b.reg.At(n); ok && !target.IsDefeated() {
			return dir, target, true
		}
	}
	return 0, nil, false
}

func (b *Bot) nearestHostile(me *domain.Character) *domain.Character {
	var best *domain.Character
	bestDist := 0
	for _, c := range b.reg.All() {
		if c == me || c.Symbol != domain.SymbolHostile || c.IsDefeated() {
			continue
		}
		d := me.Pos.ManhattanTo(c.Pos)
		if best == nil || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
