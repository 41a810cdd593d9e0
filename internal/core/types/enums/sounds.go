package enums

// Sound — звуковой сигнал для презентационного слоя.
type Sound uint8

const (
	SoundNone Sound = iota
	SoundDig
	SoundSquirt
	SoundSonar
	SoundFallingRock
	SoundFoundOil
	SoundGotGoodie
	SoundProtesterYell
	SoundProtesterGiveUp
	SoundProtesterFoundGold
	SoundPlayerGiveUp
	SoundFinishedLevel
	SoundTheme
)

var soundToString = map[Sound]string{
	SoundDig:                "dig",
	SoundSquirt:             "squirt",
	SoundSonar:              "sonar",
	SoundFallingRock:        "falling-rock",
	SoundFoundOil:           "found-oil",
	SoundGotGoodie:          "got-goodie",
	SoundProtesterYell:      "protester-yell",
	SoundProtesterGiveUp:    "protester-give-up",
	SoundProtesterFoundGold: "protester-found-gold",
	SoundPlayerGiveUp:       "player-give-up",
	SoundFinishedLevel:      "finished-level",
	SoundTheme:              "theme",
}

func (s Sound) String() string {
	if val, ok := soundToString[s]; ok {
		return val
	}
	return "none"
}
