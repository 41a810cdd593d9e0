package systems

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// GoodieLifetime — сколько живут вода и сонар на уровне.
func GoodieLifetime(level int) int {
	return max(100, 300-10*level)
}

// TickPickup — общий тик для бочек, золота, воды и сонара.
func TickPickup(e *domain.Entity, w *domain.World) {
	comp := e.Pickup
	if comp == nil || !e.Alive {
		return
	}

	if comp.Temporary {
		if comp.Age >= comp.Lifetime {
			e.Kill()
			return
		}
		comp.Age++
	}

	if !e.Visible && w.PlayerWithin(e.Pos, domain.RevealRadius) != nil {
		e.Visible = true
		return
	}

	if comp.PlayerCollectable {
		if pl := w.PlayerWithin(e.Pos, domain.CollectRadius); pl != nil {
			applyPickup(e, pl, w)
			e.Kill()
		}
		return
	}

	// Брошенное золото достается первому протестующему рядом
	if prots := w.ProtestersWithin(e.Pos, domain.BribeRadius); len(prots) > 0 {
		Bribe(prots[0], w)
		e.Kill()
	}
}

// applyPickup — эффект предмета на игрока.
func applyPickup(e, pl *domain.Entity, w *domain.World) {
	comp := pl.Player

	switch e.Kind {
	case enums.EntityBarrel:
		w.PlaySound(enums.SoundFoundOil)
		w.AddScore(domain.ScoreBarrel)
		comp.BarrelsFound++
	case enums.EntityGold:
		w.PlaySound(enums.SoundGotGoodie)
		w.AddScore(domain.ScoreGold)
		comp.Gold++
	case enums.EntityWater:
		w.PlaySound(enums.SoundGotGoodie)
		w.AddScore(domain.ScoreWater)
		comp.Water += domain.WaterRefillAmount
	case enums.EntitySonar:
		w.PlaySound(enums.SoundGotGoodie)
		w.AddScore(domain.ScoreSonar)
		comp.Sonar++
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "pickup_system",
		"kind":      e.Kind,
		"score":     w.Progress.Score,
	}).Debug("Pickup collected")
}
