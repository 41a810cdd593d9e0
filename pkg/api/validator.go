package api

import (
	"errors"

	"tunnel-server/internal/core/types/enums"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Direction == "" {
		return errors.New("direction is required")
	}
	if enums.ParseDirection(p.Direction) == enums.DirNone {
		return errors.New("unknown direction")
	}
	return nil
}

func (p RefillPayload) Validate() error {
	if p.Water < 0 || p.Sonar < 0 || p.Gold < 0 {
		return errors.New("refill amounts cannot be negative")
	}
	if p.Water == 0 && p.Sonar == 0 && p.Gold == 0 {
		return errors.New("nothing to refill")
	}
	return nil
}

func (p SpawnPayload) Validate() error {
	if p.Template == "" {
		return errors.New("template is required")
	}
	return nil
}
