package domain

import (
	"sync"

	"tunnel-server/internal/core/types/enums"
)

// AudioSink принимает звуковые сигналы симуляции.
type AudioSink interface {
	PlaySound(s enums.Sound)
}

// StatusSink принимает строку статуса.
type StatusSink interface {
	SetStatusText(text string)
}

// InputSource отдает следующую команду игрока, если она есть. Не блокирует.
type InputSource interface {
	NextCommand() (Command, bool)
}

// Presenter — все, что нужно уровню от презентационного слоя.
type Presenter interface {
	AudioSink
	StatusSink
	InputSource
}

// NopAudio глушит звук (тесты, повторы).
type NopAudio struct{}

func (NopAudio) PlaySound(enums.Sound) {}

// QueuePresenter — потокобезопасная очередь команд плюс запись звуков и статуса.
// Сервис кладет сюда команды из сети; звуки уходят клиентам со снимком.
type QueuePresenter struct {
	mu       sync.Mutex
	commands []Command
	sounds   []enums.Sound
	status   string
}

func NewQueuePresenter() *QueuePresenter {
	return &QueuePresenter{}
}

// Push ставит команду в конец очереди.
func (q *QueuePresenter) Push(cmd Command) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.commands = append(q.commands, cmd)
}

func (q *QueuePresenter) NextCommand() (Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.commands) == 0 {
		return Command{}, false
	}
	cmd := q.commands[0]
	q.commands = q.commands[1:]
	return cmd, true
}

func (q *QueuePresenter) PlaySound(s enums.Sound) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sounds = append(q.sounds, s)
}

func (q *QueuePresenter) SetStatusText(text string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.status = text
}

// Status — последняя строка статуса.
func (q *QueuePresenter) Status() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.status
}

// DrainSounds возвращает накопленные звуки и очищает буфер.
func (q *QueuePresenter) DrainSounds() []enums.Sound {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.sounds
	q.sounds = nil
	return out
}

// Pending — сколько команд ждет в очереди.
func (q *QueuePresenter) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.commands)
}
