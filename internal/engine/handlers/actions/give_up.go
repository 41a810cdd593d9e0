package actions

import (
	"tunnel-server/internal/domain"
	"tunnel-server/internal/engine/handlers"
)

// HandleGiveUp - игрок сдается, уровень будет потерян на ближайшем тике.
func HandleGiveUp(ctx handlers.Context) (handlers.Result, error) {
	ctx.Input.Push(domain.Command{Action: domain.ActionGiveUp})
	return handlers.Result{Msg: "Игрок сдался.", MsgType: "INFO"}, nil
}
