package systems

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TickPlayer — ход игрока. Сначала копаем под собой; команда читается,
// только если под ногами уже пусто. Возвращает исполненную команду.
func TickPlayer(p *domain.Entity, w *domain.World, input domain.InputSource) (domain.Command, bool) {
	if !p.Alive {
		return domain.Command{}, false
	}

	if w.ClearTerrain(p.Pos) {
		w.PlaySound(enums.SoundDig)
		return domain.Command{}, false
	}

	if input == nil {
		return domain.Command{}, false
	}
	cmd, ok := input.NextCommand()
	if !ok {
		return domain.Command{}, false
	}

	ExecutePlayerCommand(p, cmd, w)
	return cmd, true
}

// ExecutePlayerCommand применяет одну команду игрока к миру.
func ExecutePlayerCommand(p *domain.Entity, cmd domain.Command, w *domain.World) {
	comp := p.Player

	switch cmd.Action {
	case domain.ActionGiveUp:
		Annoy(p, domain.GiveUpDamage, w)

	case domain.ActionSquirt:
		if comp.Water <= 0 {
			return
		}
		fireSquirt(p, w)
		w.PlaySound(enums.SoundSquirt)
		comp.Water--

	case domain.ActionSonar:
		if comp.Sonar <= 0 {
			return
		}
		comp.Sonar--
		n := w.Illuminate(p.Pos, domain.SonarRadius)
		w.PlaySound(enums.SoundSonar)
		logger.Log.WithFields(logrus.Fields{
			"component": "player_system",
			"revealed":  n,
		}).Debug("Sonar ping")

	case domain.ActionDropGold:
		if comp.Gold <= 0 {
			return
		}
		w.Spawn(domain.NewDroppedGold(p.Pos))
		comp.Gold--

	case domain.ActionMove:
		movePlayer(p, cmd.Direction, w)
	}
}

// movePlayer: если смотрим не туда — только поворот. Грунт не мешает (его копают),
// мешают край поля и валуны ближе 3.
func movePlayer(p *domain.Entity, d enums.Direction, w *domain.World) {
	if d == enums.DirNone {
		return
	}
	if p.Facing != d {
		p.Facing = d
		return
	}
	target := p.Pos.Step(d)
	if !domain.WouldFitInField(target.X, target.Y) {
		return
	}
	if w.BoulderWithin(target, domain.BoulderRadius) {
		return
	}
	p.MoveTo(target)
}

// fireSquirt ставит струю на UnitSize впереди, если там есть место.
func fireSquirt(p *domain.Entity, w *domain.World) {
	dx, dy := p.Facing.Delta()
	start := p.Pos.Shift(dx*domain.UnitSize, dy*domain.UnitSize)

	if !domain.WouldFitInField(start.X, start.Y) {
		return
	}
	if w.HasTerrainAt(start) || w.BoulderWithin(start, domain.BoulderRadius) {
		return
	}
	w.Spawn(domain.NewSquirt(start, p.Facing))
}
