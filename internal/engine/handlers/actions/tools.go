package actions

import (
	"tunnel-server/internal/domain"
	"tunnel-server/internal/engine/handlers"
)

// Команды без данных: проверка запасов происходит в тике игрока,
// здесь только постановка в очередь.

func HandleSquirt(ctx handlers.Context) (handlers.Result, error) {
	ctx.Input.Push(domain.Command{Action: domain.ActionSquirt})
	return handlers.EmptyResult(), nil
}

func HandleSonar(ctx handlers.Context) (handlers.Result, error) {
	ctx.Input.Push(domain.Command{Action: domain.ActionSonar})
	return handlers.EmptyResult(), nil
}

func HandleDropGold(ctx handlers.Context) (handlers.Result, error) {
	ctx.Input.Push(domain.Command{Action: domain.ActionDropGold})
	return handlers.EmptyResult(), nil
}
