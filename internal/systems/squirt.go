package systems

import (
	"tunnel-server/internal/domain"
)

// TickSquirt — струя летит SquirtTravel тайлов или до первого препятствия.
func TickSquirt(s *domain.Entity, w *domain.World) {
	comp := s.Squirt
	if comp == nil || !s.Alive {
		return
	}

	if hit := w.ProtestersWithin(s.Pos, domain.SquirtHitRadius); len(hit) > 0 {
		Annoy(hit[0], domain.SquirtDamage, w)
		s.Kill()
		return
	}

	if comp.TravelLeft <= 0 {
		s.Kill()
		return
	}

	if !TryMove(s, s.Facing, w) {
		s.Kill()
		return
	}
	comp.TravelLeft--
}
