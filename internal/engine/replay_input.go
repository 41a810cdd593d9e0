package engine

import (
	"tunnel-server/internal/domain"
)

// ReplayInput подает записанные команды вместо живого ввода.
// Команда отдается только в тот (раунд, тик), в котором была исполнена при записи.
type ReplayInput struct {
	actions []domain.ReplayAction
	next    int

	round int
	tick  int
}

func NewReplayInput(session *domain.ReplaySession) *ReplayInput {
	return &ReplayInput{actions: session.Actions}
}

// Seek выставляет текущие раунд и тик. Вызывается перед каждым тиком.
func (r *ReplayInput) Seek(round, tick int) {
	r.round = round
	r.tick = tick
}

func (r *ReplayInput) NextCommand() (domain.Command, bool) {
	for r.next < len(r.actions) {
		a := r.actions[r.next]
		if a.Round < r.round || (a.Round == r.round && a.Tick < r.tick) {
			// Запись, которую уже не исполнить (рассинхрон) - пропускаем
			r.next++
			continue
		}
		if a.Round == r.round && a.Tick == r.tick {
			r.next++
			return a.Command, true
		}
		break
	}
	return domain.Command{}, false
}

// Done - все записанные команды выданы.
func (r *ReplayInput) Done() bool {
	return r.next >= len(r.actions)
}

// Remaining - сколько команд еще впереди.
func (r *ReplayInput) Remaining() int {
	return len(r.actions) - r.next
}
