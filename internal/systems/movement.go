package systems

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewPos    domain.Position
	HasMoved  bool
	IsEdge    bool // уперлись в край поля
	IsTerrain bool // уперлись в грунт
	IsBoulder bool // уперлись в валун
}

// CalculateMove вычисляет шаг для всех, кто не умеет копать. Не меняет состояние мира!
func CalculateMove(e *domain.Entity, d enums.Direction, w *domain.World) MovementResult {
	target := e.Pos.Step(d)
	res := MovementResult{NewPos: target}

	// 1. Проверка границ
	if d == enums.DirNone || !domain.WouldFitInField(target.X, target.Y) {
		res.IsEdge = true
		return res
	}

	// 2. Проверка грунта
	if w.HasTerrainAt(target) {
		res.IsTerrain = true
		return res
	}

	// 3. Проверка валунов (сам валун себе не мешает)
	if w.BoulderOverlaps(target, e) {
		res.IsBoulder = true
		return res
	}

	res.HasMoved = true
	return res
}

// TryMove поворачивает сущность в d и делает шаг, если путь свободен.
// DirNone не меняет ни курс, ни позицию.
func TryMove(e *domain.Entity, d enums.Direction, w *domain.World) bool {
	if d == enums.DirNone {
		return false
	}
	e.Facing = d
	res := CalculateMove(e, d, w)
	if res.HasMoved {
		e.MoveTo(res.NewPos)
	}
	return res.HasMoved
}

// IsViable — можно ли шагнуть в направлении d.
func IsViable(e *domain.Entity, d enums.Direction, w *domain.World) bool {
	return CalculateMove(e, d, w).HasMoved
}

// justTurned90 — смена оси движения.
func justTurned90(from, to enums.Direction) bool {
	if from == enums.DirNone || to == enums.DirNone {
		return false
	}
	return from.IsVertical() != to.IsVertical()
}
