package systems

import (
	"cognitive-tactics/internal/domain"
	"fmt"
	"strings"
)

// FromName строит стратегию по имени из файла сценария.
// controller нужен только для "human".
func FromName(name string, controller Controller) (domain.Strategy, error) {
	switch strings.ToLower(name) {
	case "human":
		return &HumanPlayerStrategy{Controller: controller}, nil
	case "aggressor":
		return &AggressorStrategy{}, nil
	case "friendly":
		return &FriendlyStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}
