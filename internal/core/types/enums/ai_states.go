package enums

// BoulderState — стадии валуна. Переходы только вперед.
type BoulderState uint8

const (
	BoulderStable BoulderState = iota
	BoulderUnstable
	BoulderFalling
	BoulderDead
)

var boulderStateToString = map[BoulderState]string{
	BoulderStable:   "STABLE",
	BoulderUnstable: "UNSTABLE",
	BoulderFalling:  "FALLING",
	BoulderDead:     "DEAD",
}

func (s BoulderState) String() string {
	if val, ok := boulderStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// ProtesterState — Active (преследует/бродит) или Exiting (уходит к выходу).
type ProtesterState uint8

const (
	ProtesterActive ProtesterState = iota
	ProtesterExiting
)

func (s ProtesterState) String() string {
	switch s {
	case ProtesterActive:
		return "ACTIVE"
	case ProtesterExiting:
		return "EXITING"
	}
	return "UNKNOWN"
}
