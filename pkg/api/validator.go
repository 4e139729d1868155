package api

import (
	"errors"
	"strings"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (c ClientCommand) Validate() error {
	action := strings.ToUpper(c.Action)
	if c.Attack != "" && action != "MOVE" {
		return errors.New("attack after step is allowed only with MOVE")
	}
	switch action {
	case "WAIT":
		if c.Dir != "" {
			return errors.New("wait takes no direction")
		}
		return nil
	case "MOVE", "ATTACK":
		if c.Dir == "" {
			return errors.New("dir is required")
		}
		return nil
	case "":
		return errors.New("action is required")
	}
	return errors.New("unknown action")
}
