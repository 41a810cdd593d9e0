package systems

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
)

// TickEntity — диспетчер по виду сущности. Игрок тикает отдельно (TickPlayer).
func TickEntity(e *domain.Entity, w *domain.World) {
	if !e.Alive {
		return
	}
	switch {
	case e.Kind == enums.EntityBoulder:
		TickBoulder(e, w)
	case e.Kind == enums.EntitySquirt:
		TickSquirt(e, w)
	case e.Kind.IsProtester():
		TickProtester(e, w)
	case e.Kind.IsPickup():
		TickPickup(e, w)
	}
}
