package actions

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/internal/engine/handlers"
	"tunnel-server/pkg/api"
)

// HandleMove ставит MOVE в очередь игрока. Поворот или шаг решается уже в тике.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	dir := enums.ParseDirection(p.Direction)
	ctx.Input.Push(domain.Move(dir))
	return handlers.EmptyResult(), nil
}
