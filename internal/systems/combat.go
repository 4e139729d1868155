package systems

import (
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/pkg/logger"
	"fmt"

	"github.com/sirupsen/logrus"
)

// AttackDamage - фиксированный урон. Бросков и брони пока нет.
const AttackDamage = 1

// AttackResult - что произошло с целью
type AttackResult struct {
	Target   *domain.Character
	HPBefore int
	HPAfter  int
	Provoked bool // дружелюбный стал агрессором
	Defeated bool // цель опустилась до 0 HP этим ударом
}

// Attack атакует персонажа в клетке at.
// Цель ищется в реестре по координатам. Если её там нет, карта и реестр
// рассогласованы: возвращается ErrNoCharacterAt, состояние не меняется.
func Attack(m *domain.Map, reg *domain.Registry, attacker *domain.Character, at domain.Position) (AttackResult, error) {
	target, ok := reg.At(at)
	if !ok {
		return AttackResult{}, fmt.Errorf("%s attacks %s: %w", attacker.Name, at, domain.ErrNoCharacterAt)
	}

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	res := AttackResult{Target: target, HPBefore: target.HitPoints}

	// Тронули дружелюбного - он навсегда становится агрессором
	if target.Symbol == domain.SymbolFriendly {
		target.Symbol = domain.SymbolHostile
		m.SetCell(target.Pos.X, target.Pos.Y, domain.SymbolHostile)
		target.SetStrategy(&AggressorStrategy{})
		res.Provoked = true

		combatLogger.Info("Friendly character provoked, switching to aggressor.")
		reg.Record(domain.Event{
			Type:  domain.EventProvoked,
			Actor: target.Name,
			Pos:   target.Pos,
			Text:  fmt.Sprintf("%s становится враждебным.", target.Name),
		})
	}

	// Урон не зависит от состояния цели, даже поверженной
	target.HitPoints -= AttackDamage
	res.HPAfter = target.HitPoints
	res.Defeated = res.HPBefore > 0 && res.HPAfter <= 0

	combatLogger.WithFields(logrus.Fields{
		"damage":      AttackDamage,
		"hp_before":   res.HPBefore,
		"hp_after":    res.HPAfter,
		"target_died": res.Defeated,
	}).Info("Attack resolved.")

	reg.Record(domain.Event{
		Type:   domain.EventAttack,
		Actor:  attacker.Name,
		Target: target.Name,
		Pos:    target.Pos,
		Text:   fmt.Sprintf("%s наносит %d урона по %s.", attacker.Name, AttackDamage, target.Name),
	})
	if res.Defeated {
		reg.Record(domain.Event{
			Type:  domain.EventDefeated,
			Actor: target.Name,
			Pos:   target.Pos,
			Text:  fmt.Sprintf("%s повержен.", target.Name),
		})
	}

	return res, nil
}
