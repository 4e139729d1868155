package agent

import (
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/internal/systems"
	"cognitive-tactics/pkg/logger"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func setup(t *testing.T, chars ...*domain.Character) (*domain.Map, *domain.Registry) {
	t.Helper()
	m, reg := domain.NewMap(7, 7), domain.NewRegistry()
	for _, c := range chars {
		if err := reg.Add(m, c); err != nil {
			t.Fatalf("Add %s: %v", c.Name, err)
		}
	}
	return m, reg
}

func TestBot_NextCommand(t *testing.T) {
	at := func(x, y int) domain.Position { return domain.Position{X: x, Y: y} }

	tests := []struct {
		name   string
		others []*domain.Character
		want   domain.Command
	}{
		{
			name:   "attacks adjacent hostile",
			others: []*domain.Character{domain.NewCharacter("Orc", domain.SymbolHostile, at(3, 4), 2, nil)},
			want:   domain.Command{Action: domain.ActionAttack, Dir: domain.Right},
		},
		{
			name:   "ignores adjacent friendly and walks to hostile",
			others: []*domain.Character{
				domain.NewCharacter("Villager", domain.SymbolFriendly, at(2, 3), 2, nil),
				domain.NewCharacter("Orc", domain.SymbolHostile, at(6, 3), 2, nil),
			},
			want: domain.Command{Action: domain.ActionMove, Dir: domain.Down},
		},
		{
			name:   "steps next to hostile and strikes",
			others: []*domain.Character{domain.NewCharacter("Orc", domain.SymbolHostile, at(3, 5), 2, nil)},
			want:   domain.MoveThenAttack(domain.Right, domain.Right),
		},
		{
			name:   "skips defeated hostile",
			others: []*domain.Character{domain.NewCharacter("Corpse", domain.SymbolHostile, at(3, 2), 0, nil)},
			want:   domain.WaitCommand,
		},
		{
			name:   "nothing to do",
			others: nil,
			want:   domain.WaitCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hero := domain.NewCharacter("Hero", domain.SymbolHuman, at(3, 3), 5, nil)
			m, reg := setup(t, append([]*domain.Character{hero}, tt.others...)...)

			bot := NewBot()
			bot.Attach(m, reg)

			got, err := bot.NextCommand(hero)
			if err != nil {
				t.Fatalf("NextCommand: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBot_DetachedWaits(t *testing.T) {
	hero := domain.NewCharacter("Hero", domain.SymbolHuman, domain.Position{}, 5, nil)
	if cmd, _ := NewBot().NextCommand(hero); cmd != domain.WaitCommand {
		t.Errorf("Detached bot should wait, got %v", cmd)
	}
}

// Бот за игрока против агрессора: рано или поздно кто-то падает
func TestBot_PlaysAgainstAggressor(t *testing.T) {
	bot := NewBot()
	hero := domain.NewCharacter("Hero", domain.SymbolHuman, domain.Position{X: 0, Y: 0}, 5, &systems.HumanPlayerStrategy{Controller: bot})
	orc := domain.NewCharacter("Orc", domain.SymbolHostile, domain.Position{X: 6, Y: 6}, 3, &systems.AggressorStrategy{})
	m, reg := setup(t, hero, orc)
	bot.Attach(m, reg)

	for turn := 0; turn < 50 && !hero.IsDefeated() && !orc.IsDefeated(); turn++ {
		for _, c := range reg.All() {
			if err := c.Strategy().Execute(m, c, reg); err != nil {
				t.Fatalf("turn %d: %v", turn, err)
			}
		}
	}

	if !orc.IsDefeated() {
		t.Errorf("Expected the hero (moving first) to win, hero=%d orc=%d", hero.HitPoints, orc.HitPoints)
	}
}
