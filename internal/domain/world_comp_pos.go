package domain

import (
	"math"

	"tunnel-server/internal/core/types/enums"
)

// Position — якорь сущности: левый нижний тайл ее квадрата UnitSize x UnitSize.
// Ось Y направлена вверх.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo возвращает евклидово расстояние между якорями
func (p Position) DistanceTo(other Position) float64 {
	return Distance(p.X, p.Y, other.X, other.Y)
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Shift возвращает новую позицию со смещением
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step — позиция на один тайл в направлении d.
func (p Position) Step(d enums.Direction) Position {
	dx, dy := d.Delta()
	return p.Shift(dx, dy)
}

// Distance — евклидово расстояние между двумя точками.
func Distance(x1, y1, x2, y2 int) float64 {
	return math.Hypot(float64(x1-x2), float64(y1-y2))
}

// InBounds — тайл внутри поля.
func InBounds(x, y int) bool {
	return x >= 0 && x < FieldWidth && y >= 0 && y < FieldHeight
}

// WouldFitInField — квадрат с якорем (x,y) целиком помещается в поле.
func WouldFitInField(x, y int) bool {
	return x >= 0 && x <= FieldWidth-UnitSize && y >= 0 && y <= FieldHeight-UnitSize
}

// FootprintsOverlap — пересекаются ли квадраты двух якорей.
func FootprintsOverlap(a, b Position) bool {
	return abs(a.X-b.X) < UnitSize && abs(a.Y-b.Y) < UnitSize
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
