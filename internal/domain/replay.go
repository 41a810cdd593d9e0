package domain

// ReplayAction - одна команда игрока, реально исполненная в тике
type ReplayAction struct {
	Tick    int     `json:"tick"`
	Round   int     `json:"round"` // порядковый номер запуска уровня в сессии
	Command Command `json:"command"`
}

// ReplaySession - полная запись партии
type ReplaySession struct {
	StartLevel int            `json:"startLevel"`
	Seed       int64          `json:"seed"` // Зерно генерации мира и рандома
	Timestamp  int64          `json:"timestamp"`
	Actions    []ReplayAction `json:"actions"`

	// Точка, на которой запись остановлена, и счет в ней (для сверки при проигрывании)
	EndRound   int `json:"endRound"`
	EndTick    int `json:"endTick"`
	FinalScore int `json:"finalScore"`

	// Cheated - в партии исполнялись админ-команды, повтор по записи разойдется
	Cheated bool `json:"cheated"`
}

// Close фиксирует точку окончания записи.
func (s *ReplaySession) Close(round, tick, score int) {
	s.EndRound = round
	s.EndTick = tick
	s.FinalScore = score
}

// Reached - дошло ли проигрывание до конца записи.
func (s *ReplaySession) Reached(round, tick int) bool {
	return round > s.EndRound || (round == s.EndRound && tick >= s.EndTick)
}

// Record добавляет исполненную команду.
func (s *ReplaySession) Record(round, tick int, cmd Command) {
	s.Actions = append(s.Actions, ReplayAction{Tick: tick, Round: round, Command: cmd})
}
