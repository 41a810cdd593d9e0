package systems

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// BoulderCanFall — под валуном нет грунта, другого валуна и края поля.
func BoulderCanFall(b *domain.Entity, w *domain.World) bool {
	return CalculateMove(b, enums.DirDown, w).HasMoved
}

// TickBoulder продвигает машину состояний валуна: Stable -> Unstable -> Falling -> Dead.
func TickBoulder(b *domain.Entity, w *domain.World) {
	comp := b.Boulder
	if comp == nil || !b.Alive {
		return
	}

	switch comp.State {
	case enums.BoulderStable:
		if BoulderCanFall(b, w) {
			comp.State = enums.BoulderUnstable
			comp.Dwell = 1
		}

	case enums.BoulderUnstable:
		comp.Dwell++
		if comp.Dwell >= domain.BoulderDwellTicks {
			comp.State = enums.BoulderFalling
			w.PlaySound(enums.SoundFallingRock)
			logger.Log.WithFields(logrus.Fields{
				"component": "physics_system",
				"entity_id": b.ID,
				"pos":       b.Pos,
			}).Debug("Boulder starts falling")
		}

	case enums.BoulderFalling:
		if !BoulderCanFall(b, w) {
			comp.State = enums.BoulderDead
			b.Kill()
			return
		}
		b.MoveTo(b.Pos.Step(enums.DirDown))
		smash(b, w)
	}
}

// smash давит всех в радиусе падения.
func smash(b *domain.Entity, w *domain.World) {
	for _, p := range w.ProtestersWithin(b.Pos, domain.SmashRadius) {
		Annoy(p, domain.BoulderDamage, w)
	}
	if pl := w.PlayerWithin(b.Pos, domain.SmashRadius); pl != nil {
		Annoy(pl, domain.BoulderDamage, w)
	}
}
