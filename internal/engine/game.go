package engine

import (
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Game - одна партия: карта, реестр персонажей и счётчик ходов.
// Ходы строго последовательны, по одному вызову стратегии на персонажа.
type Game struct {
	Name     string
	Map      *domain.Map
	Registry *domain.Registry
	Turn     int
}

func NewGame(name string, m *domain.Map, reg *domain.Registry) *Game {
	return &Game{
		Name:     name,
		Map:      m,
		Registry: reg,
	}
}

// RunTurn выполняет стратегию каждого персонажа один раз, в порядке реестра.
// Ошибка стратегии - нарушение согласованности; ход прерывается.
func (g *Game) RunTurn() ([]domain.Event, error) {
	g.Turn++
	turnLogger := logger.Log.WithFields(logrus.Fields{
		"component": "game_loop",
		"scenario":  g.Name,
		"turn":      g.Turn,
	})

	for _, c := range g.Registry.All() {
		s := c.Strategy()
		if s == nil {
			continue
		}
		if err := s.Execute(g.Map, c, g.Registry); err != nil {
			events := g.Registry.Drain()
			return events, fmt.Errorf("turn %d, %s (%s): %w", g.Turn, c.Name, s.Name(), err)
		}
	}

	events := g.Registry.Drain()
	for _, e := range events {
		if e.Type == domain.EventMove {
			continue
		}
		turnLogger.WithField("log_type", e.Type.String()).Info(e.Text)
	}
	turnLogger.WithField("events", len(events)).Debug("Turn finished")
	return events, nil
}

// Over - партия окончена, если игрока нет или он повержен.
func (g *Game) Over() bool {
	human, ok := g.Registry.Human()
	return !ok || human.IsDefeated()
}

// TurnHandler вызывается после каждого хода с его событиями.
type TurnHandler func(events []domain.Event)

// Run крутит ходы до поражения игрока, лимита maxTurns (0 - без лимита)
// или отмены ctx. Между ходами выдерживается interval.
func (g *Game) Run(ctx context.Context, maxTurns int, interval time.Duration, onTurn TurnHandler) error {
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for !g.Over() {
		if maxTurns > 0 && g.Turn >= maxTurns {
			logger.Log.WithField("turn", g.Turn).Info("Turn limit reached")
			return nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		events, err := g.RunTurn()
		if onTurn != nil {
			onTurn(events)
		}
		if err != nil {
			return err
		}
	}

	logger.Log.WithField("turn", g.Turn).Info("Human defeated, game over")
	return nil
}
