package admin

import (
	"fmt"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/internal/engine/handlers"
	"tunnel-server/pkg/api"
	"tunnel-server/pkg/dungeon"
)

// revealAllRadius покрывает все поле из любой точки
const revealAllRadius = domain.FieldWidth * 2

// boulderOffset - валун ставится перед игроком, дальше радиуса столкновения
const boulderOffset = 4

func HandleReveal(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Player == nil {
		return handlers.Result{Msg: "No player on the field", MsgType: "ERROR"}, nil
	}
	n := ctx.World.Illuminate(ctx.Player.Pos, revealAllRadius)
	return handlers.Result{
		Msg:     fmt.Sprintf("Revealed %d objects via Admin Magic", n),
		MsgType: "INFO",
	}, nil
}

func HandleRefill(ctx handlers.Context, p api.RefillPayload) (handlers.Result, error) {
	if ctx.Player == nil {
		return handlers.Result{Msg: "No player on the field", MsgType: "ERROR"}, nil
	}
	comp := ctx.Player.Player
	comp.Water += p.Water
	comp.Sonar += p.Sonar
	comp.Gold += p.Gold

	return handlers.Result{
		Msg:     fmt.Sprintf("Refilled: water %d, sonar %d, gold %d", comp.Water, comp.Sonar, comp.Gold),
		MsgType: "INFO",
	}, nil
}

func HandleHeal(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Player == nil || !ctx.Player.Alive {
		return handlers.Result{Msg: "Nobody to heal", MsgType: "ERROR"}, nil
	}
	ctx.Player.Player.HP = domain.PlayerStartHP
	return handlers.Result{Msg: "Fully Healed", MsgType: "INFO"}, nil
}

// HandleSpawn ставит объект по шаблону уровня под игроком, а валун - в четырех тайлах по курсу.
func HandleSpawn(ctx handlers.Context, p api.SpawnPayload) (handlers.Result, error) {
	tmpl, ok := dungeon.PlacementTemplates[p.Template]
	if !ok {
		return handlers.Result{Msg: "Unknown template", MsgType: "ERROR"}, nil
	}
	if ctx.Player == nil {
		return handlers.Result{Msg: "No player on the field", MsgType: "ERROR"}, nil
	}

	pos := ctx.Player.Pos
	if tmpl.Kind == enums.EntityBoulder {
		for i := 0; i < boulderOffset; i++ {
			pos = pos.Step(ctx.Player.Facing)
		}
		if !domain.WouldFitInField(pos.X, pos.Y) || ctx.World.BoulderOverlaps(pos, nil) {
			return handlers.Result{Msg: "No room for a boulder ahead", MsgType: "ERROR"}, nil
		}
		ctx.World.ClearTerrain(pos)
	}

	e := tmpl.SpawnEntity(pos)
	ctx.World.Spawn(e)
	if e.Kind == enums.EntityBarrel {
		ctx.World.BarrelsRequired++
	}

	return handlers.Result{Msg: fmt.Sprintf("Spawned %s", p.Template), MsgType: "INFO"}, nil
}
