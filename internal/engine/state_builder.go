package engine

import (
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/pkg/api"
)

// BuildState создает снимок партии для клиентов.
// Вызывать только из горутины игрового цикла.
func (g *Game) BuildState(events []domain.Event) api.ServerResponse {
	resp := api.ServerResponse{
		Type:     "UPDATE",
		Turn:     g.Turn,
		Scenario: g.Name,
		Grid: &api.GridMeta{
			Width:  g.Map.Width(),
			Length: g.Map.Length(),
		},
		Rows:     g.Map.Rows(),
		GameOver: g.Over(),
	}

	for _, c := range g.Registry.All() {
		resp.Characters = append(resp.Characters, api.CharacterView{
			ID:       c.ID,
			Name:     c.Name,
			Symbol:   c.Symbol.String(),
			X:        c.Pos.X,
			Y:        c.Pos.Y,
			HP:       c.HitPoints,
			Strategy: c.StrategyName(),
			Defeated: c.IsDefeated(),
		})
	}

	for _, e := range events {
		resp.Logs = append(resp.Logs, api.LogEntry{
			Turn: g.Turn,
			Type: e.Type.String(),
			Text: e.Text,
		})
	}
	return resp
}
