package actions

import "tunnel-server/internal/engine/handlers"

func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать на месторождение.",
		MsgType: "INFO",
	}, nil
}
