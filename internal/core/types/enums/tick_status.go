package enums

// TickStatus — итог одного тика уровня.
type TickStatus uint8

const (
	TickContinue TickStatus = iota
	TickPlayerDied
	TickLevelCompleted
)

func (s TickStatus) String() string {
	switch s {
	case TickContinue:
		return "CONTINUE"
	case TickPlayerDied:
		return "PLAYER_DIED"
	case TickLevelCompleted:
		return "LEVEL_COMPLETED"
	}
	return "UNKNOWN"
}
