package engine

import "fmt"

// StatusLine - значения для строки статуса.
type StatusLine struct {
	Level       int
	Lives       int
	Health      int // проценты
	Water       int
	Gold        int
	BarrelsLeft int
	Sonar       int
	Score       int
}

const statusFormat = "Lvl: %2d Lives: %d Hlth: %d%% Wtr: %2d Gld: %2d Oil Left: %2d Sonar: %2d Scr: %06d"

// FormatStatus собирает строку фиксированной ширины для верхней строки экрана.
func FormatStatus(s StatusLine) string {
	return fmt.Sprintf(statusFormat,
		s.Level, s.Lives, s.Health, s.Water, s.Gold, s.BarrelsLeft, s.Sonar, s.Score)
}
