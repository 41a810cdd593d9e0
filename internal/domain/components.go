package domain

import "tunnel-server/internal/core/types/enums"

// --- КОМПОНЕНТЫ ---

// PlayerComponent - Ресурсы игрока
type PlayerComponent struct {
	HP           int `json:"hp"`
	Water        int `json:"water"`
	Sonar        int `json:"sonar"`
	Gold         int `json:"gold"`
	BarrelsFound int `json:"barrelsFound"`
}

// BoulderComponent - Физика валуна
type BoulderComponent struct {
	State enums.BoulderState `json:"state"`
	Dwell int                `json:"dwell"` // сколько тиков провисел без опоры
}

// PickupComponent - Предмет на поле
type PickupComponent struct {
	// Кто может подобрать: игрок или протестующий (только брошенное золото)
	PlayerCollectable bool `json:"playerCollectable"`
	Temporary         bool `json:"temporary"`
	Lifetime          int  `json:"lifetime"`
	Age               int  `json:"age"`
}

// SquirtComponent - Струя из водомета
type SquirtComponent struct {
	TravelLeft int `json:"travelLeft"`
}

// ProtesterComponent - Мозги протестующего
type ProtesterComponent struct {
	State      enums.ProtesterState `json:"state"`
	HP         int                  `json:"hp"`
	StepBudget int                  `json:"stepBudget"` // шагов до смены направления
	// RestCounter растет до порога отдыха; отрицательное значение — оглушение.
	RestCounter     int `json:"restCounter"`
	TicksSinceShout int `json:"ticksSinceShout"`
	TicksSinceTurn  int `json:"ticksSinceTurn"`
}

// IsHardcore — подвид определяется видом сущности, компонент хранит только состояние.
func (e *Entity) IsHardcore() bool {
	return e.Kind == enums.EntityHardcoreProtester
}
