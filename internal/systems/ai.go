package systems

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RestTicks — сколько тиков протестующий отдыхает между действиями.
func RestTicks(level int) int {
	return max(0, 3-level/4)
}

// HardcoreSenseMoves — на каком расстоянии (в шагах) элитный протестующий чует игрока.
func HardcoreSenseMoves(level int) int {
	return 16 + 2*level
}

// RollStepBudget — сколько шагов пройти в новом направлении, U[8,60].
func RollStepBudget(w *domain.World) int {
	return domain.MinStepBudget + w.Rng.Intn(domain.MaxStepBudget-domain.MinStepBudget+1)
}

// TickProtester — один тик протестующего.
func TickProtester(p *domain.Entity, w *domain.World) {
	comp := p.Protester
	if comp == nil || !p.Alive {
		return
	}

	if comp.State == enums.ProtesterExiting {
		leaveField(p, w)
		return
	}

	if comp.RestCounter < RestTicks(w.Level) {
		comp.RestCounter++
		return
	}
	comp.RestCounter = 0

	pl := w.Player()
	if pl == nil || !pl.Alive {
		return
	}

	// 1. Кричим на игрока
	if withinShoutingDistanceAndFacing(p, pl) {
		if comp.TicksSinceShout >= domain.ShoutCooldown {
			Annoy(pl, domain.ShoutDamage, w)
			w.PlaySound(enums.SoundProtesterYell)
			comp.TicksSinceShout = 0
		} else {
			comp.TicksSinceShout++
		}
		comp.TicksSinceTurn++
		return
	}

	// 2. Преследуем
	if canMoveTowardPlayer(p, pl, w) {
		old := p.Facing
		d, ok := directionTowardPlayer(p, pl, w)
		if ok {
			if justTurned90(old, d) {
				comp.TicksSinceTurn = -1
			}
			comp.StepBudget = 0
			TryMove(p, d, w)
		}
		comp.TicksSinceTurn++
		comp.TicksSinceShout++
		return
	}

	// 3. Бродим
	wander(p, w)
	comp.TicksSinceShout++
	comp.TicksSinceTurn++
}

// leaveField — уходящий идет к точке входа без пауз и исчезает там.
func leaveField(p *domain.Entity, w *domain.World) {
	if p.Pos == domain.EntryPoint {
		p.Kill()
		logger.Log.WithFields(logrus.Fields{
			"component": "ai_system",
			"entity_id": p.ID,
		}).Debug("Protester left the field")
		return
	}
	if d, ok := BestDirectionToward(w, p, domain.EntryPoint); ok {
		TryMove(p, d, w)
	}
}

func withinShoutingDistanceAndFacing(p, pl *domain.Entity) bool {
	if p.Pos.DistanceTo(pl.Pos) > domain.ShoutRadius {
		return false
	}
	switch p.Facing {
	case enums.DirUp:
		return pl.Pos.Y > p.Pos.Y
	case enums.DirDown:
		return pl.Pos.Y < p.Pos.Y
	case enums.DirLeft:
		return pl.Pos.X < p.Pos.X
	case enums.DirRight:
		return pl.Pos.X > p.Pos.X
	}
	return false
}

func canMoveTowardPlayer(p, pl *domain.Entity, w *domain.World) bool {
	if HasStraightLineTo(p.Pos, pl.Pos, w) {
		return true
	}
	return p.IsHardcore() && IsWithinNMoves(w, p, HardcoreSenseMoves(w.Level))
}

// HasStraightLineTo — цель в той же строке или столбце и между ними нет грунта и валунов.
// Последний якорь перед целью при движении вниз/влево не проверяется: игрок там копает.
func HasStraightLineTo(from, to domain.Position, w *domain.World) bool {
	if from.X != to.X && from.Y != to.Y {
		return false
	}

	var d enums.Direction
	steps := 0
	switch {
	case from.X == to.X && from.Y < to.Y:
		d, steps = enums.DirUp, to.Y-from.Y
	case from.X == to.X && from.Y > to.Y:
		d, steps = enums.DirDown, from.Y-to.Y-1
	case from.Y == to.Y && from.X < to.X:
		d, steps = enums.DirRight, to.X-from.X
	case from.Y == to.Y && from.X > to.X:
		d, steps = enums.DirLeft, from.X-to.X-1
	}

	cur := from
	for i := 0; i < steps; i++ {
		if w.HasTerrainAt(cur) || w.BoulderOverlaps(cur, nil) {
			return false
		}
		cur = cur.Step(d)
	}
	return true
}

// directionTowardPlayer: обычный просто разворачивается к игроку, элитный идет по BFS.
func directionTowardPlayer(p, pl *domain.Entity, w *domain.World) (enums.Direction, bool) {
	if p.IsHardcore() {
		return BestDirectionToward(w, p, pl.Pos)
	}
	return facePlayer(p.Facing, p.Pos, pl.Pos), true
}

// facePlayer — последнее сравнение побеждает, вертикаль важнее.
// Стоя на игроке, сохраняет текущий курс cur.
func facePlayer(cur enums.Direction, from, to domain.Position) enums.Direction {
	d := cur
	if to.X > from.X {
		d = enums.DirRight
	}
	if to.X < from.X {
		d = enums.DirLeft
	}
	if to.Y < from.Y {
		d = enums.DirDown
	}
	if to.Y > from.Y {
		d = enums.DirUp
	}
	return d
}

func wander(p *domain.Entity, w *domain.World) {
	comp := p.Protester

	comp.StepBudget--
	if comp.StepBudget <= 0 {
		old := p.Facing
		if d, ok := rollViableDirection(p, w, enums.AllDirections[:]); ok {
			p.Facing = d
		}
		if justTurned90(old, p.Facing) {
			comp.TicksSinceTurn = -1
		}
		comp.StepBudget = RollStepBudget(w)
	}

	if comp.TicksSinceTurn >= domain.ForcedTurnTicks && atIntersection(p, w) {
		comp.StepBudget = RollStepBudget(w)
		perp := p.Facing.Perpendicular()
		if d, ok := rollViableDirection(p, w, perp[:]); ok {
			p.Facing = d
		}
		comp.TicksSinceTurn = -1
	}

	if IsViable(p, p.Facing, w) {
		TryMove(p, p.Facing, w)
	} else {
		comp.StepBudget = 0
	}
}

// atIntersection — можно свернуть под прямым углом.
func atIntersection(p *domain.Entity, w *domain.World) bool {
	for _, d := range p.Facing.Perpendicular() {
		if IsViable(p, d, w) {
			return true
		}
	}
	return false
}

// rollViableDirection бросает кубик среди candidates, пока не выпадет проходимое.
// Попыток не больше MaxDirectionRolls, затем берется первое проходимое по порядку.
func rollViableDirection(p *domain.Entity, w *domain.World, candidates []enums.Direction) (enums.Direction, bool) {
	for i := 0; i < domain.MaxDirectionRolls; i++ {
		d := candidates[w.Rng.Intn(len(candidates))]
		if IsViable(p, d, w) {
			return d, true
		}
	}
	for _, d := range candidates {
		if IsViable(p, d, w) {
			return d, true
		}
	}
	return enums.DirNone, false
}
