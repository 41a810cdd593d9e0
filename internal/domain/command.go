package domain

import (
	"encoding/json"

	"tunnel-server/internal/core/types/enums"
)

// Command — команда игрока, уже разобранная и готовая к исполнению в тике.
type Command struct {
	Action    ActionType
	Direction enums.Direction // только для MOVE
}

// Move — удобный конструктор для MOVE.
func Move(d enums.Direction) Command {
	return Command{Action: ActionMove, Direction: d}
}

// InternalCommand - сырая команда из транспорта.
// Payload разбирается хендлером в Command.
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	Token   string          // ID сессии отправителя
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
