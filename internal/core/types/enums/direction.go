package enums

import "strings"

// Direction — одно из четырех направлений. None используется как "нет хода".
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// AllDirections — фиксированный порядок перебора (up, down, left, right).
// От него зависят разрешение ничьих в поиске пути и детерминизм.
var AllDirections = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

var directionToString = map[Direction]string{
	DirUp:    "UP",
	DirDown:  "DOWN",
	DirLeft:  "LEFT",
	DirRight: "RIGHT",
}

var directionStringToType = map[string]Direction{
	"UP":    DirUp,
	"DOWN":  DirDown,
	"LEFT":  DirLeft,
	"RIGHT": DirRight,
}

func (d Direction) String() string {
	if val, ok := directionToString[d]; ok {
		return val
	}
	return "NONE"
}

// ParseDirection — для команд клиента ("up", "LEFT"...).
func ParseDirection(s string) Direction {
	if val, ok := directionStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return DirNone
}

// Delta — смещение на один тайл (ось Y направлена вверх).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// IsVertical — true для up/down.
func (d Direction) IsVertical() bool {
	return d == DirUp || d == DirDown
}

// Perpendicular возвращает два направления под прямым углом.
func (d Direction) Perpendicular() [2]Direction {
	if d.IsVertical() {
		return [2]Direction{DirLeft, DirRight}
	}
	return [2]Direction{DirUp, DirDown}
}
