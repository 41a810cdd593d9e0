package domain

// Progress — то, что переживает смену уровня: счет, жизни, номер уровня.
type Progress struct {
	Score int `json:"score"`
	Lives int `json:"lives"`
	Level int `json:"level"`
}

func NewProgress() *Progress {
	return &Progress{Lives: PlayerStartLives}
}

// GameOver — жизни кончились.
func (p *Progress) GameOver() bool {
	return p.Lives <= 0
}
