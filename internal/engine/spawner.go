package engine

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/internal/systems"
	"tunnel-server/pkg/logger"
	"tunnel-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// SpawnDirector решает, когда на поле появляются протестующие, вода и сонар.
type SpawnDirector struct {
	level int

	cooldown int
	cap      int

	ticksSinceProtester int
}

func NewSpawnDirector(level int) *SpawnDirector {
	return &SpawnDirector{
		level:    level,
		cooldown: ProtesterCooldown(level),
		cap:      ProtesterCap(level),
		// Первый протестующий выходит на первом же тике
		ticksSinceProtester: ProtesterCooldown(level),
	}
}

// ProtesterCooldown - минимум тиков между появлениями.
func ProtesterCooldown(level int) int {
	return max(25, 200-level)
}

// ProtesterCap - сколько протестующих может быть на поле одновременно.
func ProtesterCap(level int) int {
	return min(15, int(2+1.5*float64(level)))
}

// HardcoreChance - вероятность (в процентах), что новый протестующий будет упорным.
func HardcoreChance(level int) int {
	return min(90, level*10+30)
}

// GoodieOdds - вода или сонар появляются с шансом 1 из GoodieOdds за тик.
func GoodieOdds(level int) int {
	return level*25 + 300
}

// Tick - протестующие, затем вода/сонар.
func (d *SpawnDirector) Tick(w *domain.World) {
	d.tickProtesters(w)
	d.tickGoodies(w)
}

func (d *SpawnDirector) tickProtesters(w *domain.World) {
	if d.ticksSinceProtester >= d.cooldown && w.CountProtesters() < d.cap {
		kind := enums.EntityRegularProtester
		if utils.RandRange(w.Rng, 1, 100) <= HardcoreChance(d.level) {
			kind = enums.EntityHardcoreProtester
		}
		p := domain.NewProtester(kind, systems.RollStepBudget(w))
		w.Spawn(p)

		logger.Log.WithFields(logrus.Fields{
			"component": "spawn_director",
			"tick":      w.GlobalTick,
			"kind":      kind,
			"entity_id": p.ID,
		}).Debug("Protester spawned")

		d.ticksSinceProtester = -1
	}
	d.ticksSinceProtester++
}

func (d *SpawnDirector) tickGoodies(w *domain.World) {
	if w.Rng.Intn(GoodieOdds(d.level)) != 0 {
		return
	}

	lifetime := systems.GoodieLifetime(d.level)

	if w.Rng.Intn(5) == 0 {
		w.Spawn(domain.NewGoodie(enums.EntitySonar, domain.SonarSpawn, lifetime))
		return
	}

	pos, ok := findWaterSpot(w)
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "spawn_director",
			"tick":      w.GlobalTick,
		}).Warn("No dug-out spot for water, skipped")
		return
	}
	w.Spawn(domain.NewGoodie(enums.EntityWater, pos, lifetime))
}

// findWaterSpot - случайная точка без грунта под всем спрайтом.
func findWaterSpot(w *domain.World) (domain.Position, bool) {
	for attempt := 0; attempt < domain.MaxPlacementAttempts; attempt++ {
		pos := domain.Position{
			X: utils.RandRange(w.Rng, 0, domain.FieldWidth-domain.UnitSize),
			Y: utils.RandRange(w.Rng, 0, domain.FieldHeight-domain.UnitSize),
		}
		if !w.HasTerrainAt(pos) {
			return pos, true
		}
	}
	return domain.Position{}, false
}
