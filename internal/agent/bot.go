package agent

import (
	"context"
	"encoding/json"
	"strconv"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/internal/engine"
	"tunnel-server/internal/systems"
	"tunnel-server/pkg/api"
	"tunnel-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Bot - автопилот (Headless Agent).
// Подключается к сервису так же, как внешний клиент: получает снимки из хаба
// и отвечает командами через ProcessCommand. Прямого доступа к миру у него нет.
//
// Жизненный цикл:
//  1. NewBot -> регистрация в хабе, личный канал (Inbox).
//  2. Run -> слушает Inbox, на каждый снимок решает, что делать.
//  3. Новая команда уходит, только когда очередь сервиса пуста:
//     иначе бот обгонял бы собственные ходы.
type Bot struct {
	Session string
	Service *engine.GameService
	Inbox   chan api.ServerResponse

	brain *Brain
	log   *logrus.Entry
}

func NewBot(session string, service *engine.GameService) *Bot {
	l := logger.Log.WithFields(logrus.Fields{
		"component": "bot",
		"session":   session,
	})
	l.Info("Creating autopilot agent")
	return &Bot{
		Session: session,
		Service: service,
		// Бот регистрируется в хабе как обычный клиент и получает свой канал для обновлений.
		Inbox: service.Hub.Register(session),
		brain: NewBrain(),
		log:   l,
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run(ctx context.Context) {
	defer b.Service.Hub.Unregister(b.Session)

	for {
		select {
		case <-ctx.Done():
			b.log.Info("Agent stopped")
			return
		case event, ok := <-b.Inbox:
			if !ok {
				return
			}
			if event.Type == "GAME_OVER" {
				b.log.WithField("score", event.Progress.Score).Info("Agent finished the game")
				return
			}
			if event.Type != "UPDATE" || b.Service.PendingCommands() > 0 {
				continue
			}
			b.act(event)
		}
	}
}

func (b *Bot) act(state api.ServerResponse) {
	cmd, ok := b.brain.Decide(state)
	if !ok {
		return
	}
	cmd.Token = b.Session

	if err := b.Service.ProcessCommand(cmd); err != nil {
		b.log.WithError(err).WithField("action", cmd.Action).Debug("Command not accepted")
	}
}

// --- МОЗГ ---

// Brain принимает решения по одному снимку. Помнит только маршрут обхода поля.
type Brain struct {
	waypoints []domain.Position
	next      int
	round     int
	sonarUsed bool
}

func NewBrain() *Brain {
	return &Brain{waypoints: sweepRoute()}
}

// sweepRoute - змейка по полю: найти бочки, которые видны только вблизи.
func sweepRoute() []domain.Position {
	var route []domain.Position
	maxX := domain.FieldWidth - domain.UnitSize
	row := 0
	for y := 56; y >= 0; y -= 8 {
		if row%2 == 0 {
			for x := 0; x <= maxX; x += 12 {
				route = append(route, domain.Position{X: x, Y: y})
			}
		} else {
			for x := maxX; x >= 0; x -= 12 {
				route = append(route, domain.Position{X: x, Y: y})
			}
		}
		row++
	}
	return route
}

// perception - то, что бот восстановил из снимка.
type perception struct {
	world      *domain.World
	me         *api.EntityView
	protesters []api.EntityView
	targets    []api.EntityView
}

// Decide выбирает команду: стрелять в протестующего перед собой,
// подобрать ближайший видимый предмет, прощупать сонаром, иначе идти по маршруту.
func (br *Brain) Decide(state api.ServerResponse) (api.ClientCommand, bool) {
	if state.Round != br.round {
		// Новый раунд: уровень сгенерирован заново
		br.round = state.Round
		br.next = 0
		br.sonarUsed = false
	}

	p := perceive(state)
	if p.me == nil || p.me.Stats == nil {
		return api.ClientCommand{}, false
	}
	me := p.me
	pos := domain.Position{X: me.Pos.X, Y: me.Pos.Y}
	facing := enums.ParseDirection(me.Facing)

	for _, pr := range p.protesters {
		at := domain.Position{X: pr.Pos.X, Y: pr.Pos.Y}
		if me.Stats.Water > 0 && inLineOfFire(pos, facing, at) {
			return api.ClientCommand{Action: domain.ActionSquirt.String()}, true
		}
	}

	if len(p.targets) == 0 && !br.sonarUsed && me.Stats.Sonar > 0 {
		br.sonarUsed = true
		return api.ClientCommand{Action: domain.ActionSonar.String()}, true
	}

	self := domain.NewPlayer()
	self.Pos = pos

	if t, ok := nearest(pos, p.targets); ok {
		if d, ok := systems.BestDirectionToward(p.world, self, t); ok {
			return moveCommand(d), true
		}
	}

	for br.next < len(br.waypoints) {
		wp := br.waypoints[br.next]
		if pos.DistanceTo(wp) < 2 {
			br.next++
			continue
		}
		if d, ok := systems.BestDirectionToward(p.world, self, wp); ok {
			return moveCommand(d), true
		}
		// Точка недостижима (валун) - берем следующую
		br.next++
	}

	// Маршрут пройден, а бочки остались: начинаем сначала
	br.next = 0
	return api.ClientCommand{}, false
}

// perceive строит локальный мир без грунта: игрок копает, мешают только валуны.
func perceive(state api.ServerResponse) perception {
	level := 0
	if state.Progress != nil {
		level = state.Progress.Level
	}
	p := perception{world: domain.NewWorld(level, nil, nil, nil)}

	for i := range state.Entities {
		ev := state.Entities[i]
		at := domain.Position{X: ev.Pos.X, Y: ev.Pos.Y}

		switch enums.ParseEntityKind(ev.Kind) {
		case enums.EntityPlayer:
			if ev.ID == state.MyEntityID {
				p.me = &state.Entities[i]
			}
		case enums.EntityBoulder:
			p.world.Spawn(domain.NewBoulder(at))
		case enums.EntityRegularProtester, enums.EntityHardcoreProtester:
			if ev.State != enums.ProtesterExiting.String() {
				p.protesters = append(p.protesters, ev)
			}
		case enums.EntityBarrel, enums.EntityGold, enums.EntityWater, enums.EntitySonar:
			p.targets = append(p.targets, ev)
		}
	}
	return p
}

// inLineOfFire - протестующий прямо перед игроком на расстоянии выстрела.
func inLineOfFire(from domain.Position, facing enums.Direction, target domain.Position) bool {
	reach := float64(domain.SquirtTravel + domain.UnitSize)
	if from.DistanceTo(target) > reach {
		return false
	}
	dx, dy := target.X-from.X, target.Y-from.Y
	switch facing {
	case enums.DirUp:
		return dy > 0 && abs(dx) < domain.UnitSize
	case enums.DirDown:
		return dy < 0 && abs(dx) < domain.UnitSize
	case enums.DirLeft:
		return dx < 0 && abs(dy) < domain.UnitSize
	case enums.DirRight:
		return dx > 0 && abs(dy) < domain.UnitSize
	}
	return false
}

func nearest(from domain.Position, views []api.EntityView) (domain.Position, bool) {
	best := domain.Position{}
	bestDist := -1
	for _, v := range views {
		at := domain.Position{X: v.Pos.X, Y: v.Pos.Y}
		if d := from.DistanceSquaredTo(at); bestDist < 0 || d < bestDist {
			best, bestDist = at, d
		}
	}
	return best, bestDist >= 0
}

func moveCommand(d enums.Direction) api.ClientCommand {
	payload, _ := json.Marshal(api.DirectionPayload{Direction: d.String()})
	return api.ClientCommand{Action: domain.ActionMove.String(), Payload: payload}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SessionName - имя сессии бота в хабе.
func SessionName(n int) string {
	return "autopilot-" + strconv.Itoa(n)
}
