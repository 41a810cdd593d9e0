package domain

import (
	"tunnel-server/internal/core/types/enums"
)

// Запросы к миру, которыми пользуются поведения сущностей.

// HasTerrainAt — есть ли грунт под квадратом с якорем p.
func (w *World) HasTerrainAt(p Position) bool {
	return w.Terrain.HasTerrainAt(p.X, p.Y)
}

// ClearTerrain выкапывает квадрат с якорем p.
func (w *World) ClearTerrain(p Position) bool {
	return w.Terrain.ClearTerrain(p.X, p.Y)
}

// BoulderOverlaps — квадрат с якорем p пересекает живой валун (кроме self).
func (w *World) BoulderOverlaps(p Position, self *Entity) bool {
	for _, id := range w.order {
		e := w.Get(id)
		if e == nil || e == self || !e.Alive || e.Kind != enums.EntityBoulder {
			continue
		}
		if FootprintsOverlap(p, e.Pos) {
			return true
		}
	}
	return false
}

// BoulderWithin — якорь живого валуна на расстоянии <= r от p.
func (w *World) BoulderWithin(p Position, r float64) bool {
	for _, id := range w.order {
		e := w.Get(id)
		if e == nil || !e.Alive || e.Kind != enums.EntityBoulder {
			continue
		}
		if p.DistanceTo(e.Pos) <= r {
			return true
		}
	}
	return false
}

// PlayerWithin возвращает игрока, если он жив и в радиусе r от p.
func (w *World) PlayerWithin(p Position, r float64) *Entity {
	pl := w.Player()
	if pl == nil || !pl.Alive {
		return nil
	}
	if p.DistanceTo(pl.Pos) <= r {
		return pl
	}
	return nil
}

// ProtestersWithin — живые протестующие в радиусе r, в порядке вставки.
func (w *World) ProtestersWithin(p Position, r float64) []*Entity {
	var out []*Entity
	for _, id := range w.order {
		e := w.Get(id)
		if e == nil || !e.Alive || !e.Kind.IsProtester() {
			continue
		}
		if p.DistanceTo(e.Pos) <= r {
			out = append(out, e)
		}
	}
	return out
}

// Illuminate делает видимым все, что строго ближе r к p. Возвращает число раскрытых.
func (w *World) Illuminate(p Position, r float64) int {
	n := 0
	for _, id := range w.order {
		e := w.Get(id)
		if e == nil || !e.Alive || e.Visible {
			continue
		}
		if p.DistanceTo(e.Pos) < r {
			e.Visible = true
			n++
		}
	}
	return n
}

// IsMoveBlocked — шаг из from в направлении d упрется в край поля, грунт или валун.
// self исключается из проверки валунов (нужно самим валунам).
func (w *World) IsMoveBlocked(from Position, d enums.Direction, self *Entity) bool {
	to := from.Step(d)
	if !WouldFitInField(to.X, to.Y) {
		return true
	}
	if w.HasTerrainAt(to) {
		return true
	}
	return w.BoulderOverlaps(to, self)
}

// ViableDirections — направления без препятствий, в порядке up/down/left/right.
func (w *World) ViableDirections(from Position, self *Entity) []enums.Direction {
	out := make([]enums.Direction, 0, len(enums.AllDirections))
	for _, d := range enums.AllDirections {
		if !w.IsMoveBlocked(from, d, self) {
			out = append(out, d)
		}
	}
	return out
}

// IsSpotFree — квадрат в поле, без грунта и не пересекает валуны.
func (w *World) IsSpotFree(p Position) bool {
	return WouldFitInField(p.X, p.Y) && !w.HasTerrainAt(p) && !w.BoulderOverlaps(p, nil)
}
