package systems

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
)

// DistanceField — число шагов от каждого якоря до цели. domain.Unreachable — недостижимо.
type DistanceField [domain.FieldWidth][domain.FieldHeight]int

// At возвращает расстояние; вне поля — Unreachable.
func (f *DistanceField) At(p domain.Position) int {
	if !domain.InBounds(p.X, p.Y) {
		return domain.Unreachable
	}
	return f[p.X][p.Y]
}

// BuildDistanceField — BFS от цели по якорям. Ребро есть, если шаг не упирается
// в край, грунт или валун. Корень всегда имеет расстояние 0.
// Поле строится заново на каждый вызов: мир меняется каждый тик.
func BuildDistanceField(w *domain.World, target domain.Position) *DistanceField {
	f := new(DistanceField)
	for x := range f {
		for y := range f[x] {
			f[x][y] = domain.Unreachable
		}
	}
	if !domain.InBounds(target.X, target.Y) {
		return f
	}

	f[target.X][target.Y] = 0
	queue := make([]domain.Position, 0, 256)
	queue = append(queue, target)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next := f[cur.X][cur.Y] + 1

		for _, d := range enums.AllDirections {
			if w.IsMoveBlocked(cur, d, nil) {
				continue
			}
			n := cur.Step(d)
			if f[n.X][n.Y] != domain.Unreachable {
				continue
			}
			f[n.X][n.Y] = next
			queue = append(queue, n)
		}
	}
	return f
}

// bestNeighbour — направление к соседу с минимальным расстоянием.
// Порядок перебора up/down/left/right, при равенстве побеждает первый.
func bestNeighbour(f *DistanceField, from domain.Position) (enums.Direction, int) {
	best := enums.DirNone
	bestDist := domain.Unreachable
	for _, d := range enums.AllDirections {
		if dist := f.At(from.Step(d)); dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best, bestDist
}

// BestDirectionToward — первый шаг кратчайшего пути от e к цели.
// false, если ни один сосед не достижим: в этом тике сущность стоит.
func BestDirectionToward(w *domain.World, e *domain.Entity, target domain.Position) (enums.Direction, bool) {
	f := BuildDistanceField(w, target)
	d, _ := bestNeighbour(f, e.Pos)
	return d, d != enums.DirNone
}

// IsWithinNMoves — игрок достижим из e меньше чем за n шагов.
func IsWithinNMoves(w *domain.World, e *domain.Entity, n int) bool {
	pl := w.Player()
	if pl == nil {
		return false
	}
	f := BuildDistanceField(w, pl.Pos)
	_, dist := bestNeighbour(f, e.Pos)
	return dist < n
}
