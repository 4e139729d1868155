package systems

import (
	"cognitive-tactics/internal/domain"
	"errors"
	"testing"
)

func TestAttack_ProvokesFriendlyOnce(t *testing.T) {
	m, reg := newBoard(5, 5)
	hero := place(t, m, reg, "Hero", domain.SymbolHuman, 2, 2, 10, nil)
	npc := place(t, m, reg, "Villager", domain.SymbolFriendly, 2, 3, 5, &FriendlyStrategy{})

	res, err := Attack(m, reg, hero, npc.Pos)
	if err != nil {
		t.Fatalf("Attack: %v", err)
	}

	if !res.Provoked {
		t.Error("Expected friendly to be provoked")
	}
	if npc.Symbol != domain.SymbolHostile || m.Cell(2, 3) != domain.SymbolHostile {
		t.Errorf("Expected hostile symbol, got character %q / map %q", npc.Symbol, m.Cell(2, 3))
	}
	first, ok := npc.Strategy().(*AggressorStrategy)
	if !ok {
		t.Fatalf("Expected AggressorStrategy, got %T", npc.Strategy())
	}
	if npc.HitPoints != 4 {
		t.Errorf("Expected HP 4, got %d", npc.HitPoints)
	}

	// Второй удар: только урон
	res, err = Attack(m, reg, hero, npc.Pos)
	if err != nil {
		t.Fatalf("Attack: %v", err)
	}
	if res.Provoked {
		t.Error("Conversion must not repeat")
	}
	if npc.Strategy() != domain.Strategy(first) {
		t.Error("Strategy was replaced again")
	}
	if npc.HitPoints != 3 {
		t.Errorf("Expected HP 3, got %d", npc.HitPoints)
	}
}

func TestAttack_FlatDamage(t *testing.T) {
	tests := []struct {
		name         string
		hp           int
		wantHP       int
		wantDefeated bool
	}{
		{"healthy", 20, 19, false},
		{"kill shot", 1, 0, true},
		{"already defeated", 0, -1, false},
		{"deep negative", -3, -4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, reg := newBoard(3, 3)
			orc := place(t, m, reg, "Orc", domain.SymbolHostile, 0, 0, 5, nil)
			target := place(t, m, reg, "Goblin", domain.SymbolHostile, 0, 1, tt.hp, nil)

			res, err := Attack(m, reg, orc, target.Pos)
			if err != nil {
				t.Fatalf("Attack: %v", err)
			}
			if target.HitPoints != tt.wantHP || res.HPAfter != tt.wantHP {
				t.Errorf("Expected HP %d, got %d", tt.wantHP, target.HitPoints)
			}
			if res.Defeated != tt.wantDefeated {
				t.Errorf("Expected Defeated=%v, got %v", tt.wantDefeated, res.Defeated)
			}
			if orc.HitPoints != 5 {
				t.Error("Attacker HP must not change")
			}
		})
	}
}

func TestAttack_UnregisteredTarget(t *testing.T) {
	m, reg := newBoard(3, 3)
	orc := place(t, m, reg, "Orc", domain.SymbolHostile, 1, 1, 5, nil)
	// Символ на карте без записи в реестре
	m.SetCell(0, 1, domain.SymbolFriendly)

	_, err := Attack(m, reg, orc, domain.Position{X: 0, Y: 1})
	if !errors.Is(err, domain.ErrNoCharacterAt) {
		t.Fatalf("Expected ErrNoCharacterAt, got %v", err)
	}
	if m.Cell(0, 1) != domain.SymbolFriendly {
		t.Error("Failed attack must not touch the map")
	}
	if len(reg.Drain()) != 0 {
		t.Error("Failed attack must not record events")
	}
}

func TestAttack_RecordsEvents(t *testing.T) {
	m, reg := newBoard(3, 3)
	hero := place(t, m, reg, "Hero", domain.SymbolHuman, 1, 1, 5, nil)
	place(t, m, reg, "Villager", domain.SymbolFriendly, 1, 2, 1, &FriendlyStrategy{})

	if _, err := Attack(m, reg, hero, domain.Position{X: 1, Y: 2}); err != nil {
		t.Fatalf("Attack: %v", err)
	}

	var types []domain.EventType
	for _, e := range reg.Drain() {
		types = append(types, e.Type)
	}
	want := []domain.EventType{domain.EventProvoked, domain.EventAttack, domain.EventDefeated}
	if len(types) != len(want) {
		t.Fatalf("Expected events %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], types[i])
		}
	}
}
