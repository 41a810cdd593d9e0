package domain

import (
	"tunnel-server/internal/core/types"
	"tunnel-server/internal/core/types/enums"
)

// --- СУЩНОСТЬ ---

// Entity — общая запись для всего, что стоит на поле.
// Ровно один компонент, соответствующий Kind, не nil.
type Entity struct {
	// Идентификация
	ID   types.EntityID   `json:"id"`
	Kind enums.EntityKind `json:"kind"`

	Pos     Position        `json:"pos"`
	Facing  enums.Direction `json:"facing"`
	Visible bool            `json:"visible"`
	Alive   bool            `json:"alive"`

	// Компоненты (Если nil - значит свойство отсутствует)
	Player    *PlayerComponent    `json:"player,omitempty"`
	Boulder   *BoulderComponent   `json:"boulder,omitempty"`
	Pickup    *PickupComponent    `json:"pickup,omitempty"`
	Squirt    *SquirtComponent    `json:"squirt,omitempty"`
	Protester *ProtesterComponent `json:"protester,omitempty"`
}

// Depth — порядок отрисовки.
func (e *Entity) Depth() int {
	return e.Kind.Depth()
}

// Kill помечает сущность мертвой. Из мира ее убирает только контроллер (Purge).
func (e *Entity) Kill() {
	e.Alive = false
}

// MoveTo переносит якорь. Проверки проходимости — на вызывающей стороне.
func (e *Entity) MoveTo(p Position) {
	e.Pos = p
}

// --- ФАБРИКИ ---

func NewPlayer() *Entity {
	return &Entity{
		Kind:    enums.EntityPlayer,
		Pos:     PlayerStart,
		Facing:  enums.DirRight,
		Visible: true,
		Alive:   true,
		Player: &PlayerComponent{
			HP:    PlayerStartHP,
			Water: PlayerStartWater,
			Sonar: PlayerStartSonar,
		},
	}
}

func NewBoulder(pos Position) *Entity {
	return &Entity{
		Kind:    enums.EntityBoulder,
		Pos:     pos,
		Facing:  enums.DirDown,
		Visible: true,
		Alive:   true,
		Boulder: &BoulderComponent{State: enums.BoulderStable},
	}
}

// NewHiddenPickup — бочка или золото, закопанные при генерации уровня.
func NewHiddenPickup(kind enums.EntityKind, pos Position) *Entity {
	return &Entity{
		Kind:   kind,
		Pos:    pos,
		Facing: enums.DirRight,
		Alive:  true,
		Pickup: &PickupComponent{PlayerCollectable: true},
	}
}

// NewGoodie — вода или сонар, видимые и исчезающие через lifetime тиков.
func NewGoodie(kind enums.EntityKind, pos Position, lifetime int) *Entity {
	return &Entity{
		Kind:    kind,
		Pos:     pos,
		Facing:  enums.DirRight,
		Visible: true,
		Alive:   true,
		Pickup: &PickupComponent{
			PlayerCollectable: true,
			Temporary:         true,
			Lifetime:          lifetime,
		},
	}
}

// NewDroppedGold — приманка для протестующих, брошенная игроком.
func NewDroppedGold(pos Position) *Entity {
	return &Entity{
		Kind:    enums.EntityGold,
		Pos:     pos,
		Facing:  enums.DirRight,
		Visible: true,
		Alive:   true,
		Pickup: &PickupComponent{
			Temporary: true,
			Lifetime:  DroppedGoldLife,
		},
	}
}

func NewSquirt(pos Position, facing enums.Direction) *Entity {
	return &Entity{
		Kind:    enums.EntitySquirt,
		Pos:     pos,
		Facing:  facing,
		Visible: true,
		Alive:   true,
		Squirt:  &SquirtComponent{TravelLeft: SquirtTravel},
	}
}

// NewProtester создает протестующего у точки входа, лицом влево.
func NewProtester(kind enums.EntityKind, stepBudget int) *Entity {
	hp := RegularProtesterHP
	if kind == enums.EntityHardcoreProtester {
		hp = HardcoreProtesterHP
	}
	return &Entity{
		Kind:    kind,
		Pos:     EntryPoint,
		Facing:  enums.DirLeft,
		Visible: true,
		Alive:   true,
		Protester: &ProtesterComponent{
			State:           enums.ProtesterActive,
			HP:              hp,
			StepBudget:      stepBudget,
			RestCounter:     PrimedRestCounter,
			TicksSinceShout: PrimedShoutCounter,
		},
	}
}
