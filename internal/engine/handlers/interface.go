package handlers

import (
	"encoding/json"

	"tunnel-server/internal/domain"
)

// CommandSink - очередь, из которой игрок читает по одной команде за тик.
type CommandSink interface {
	Push(cmd domain.Command)
}

// Context передает хендлеру состояние уровня.
// Хендлеры вызываются из горутины игрового цикла между тиками, поэтому могут мутировать мир.
type Context struct {
	World    *domain.World
	Player   *domain.Entity
	Input    CommandSink
	Progress *domain.Progress
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, ERROR)
}

// HandlerFunc - это контракт для любой команды (MOVE, SQUIRT, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
