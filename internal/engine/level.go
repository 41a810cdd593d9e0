package engine

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/internal/systems"
	"tunnel-server/pkg/logger"
	"tunnel-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Level представляет собой один запущенный уровень: мир, спавнер и презентационный слой.
// Все методы вызываются из одной горутины игрового цикла.
type Level struct {
	World *domain.World

	// Round - порядковый номер запуска уровня в партии
	Round int
	Seed  int64

	// player держится и после очистки, чтобы статус показывал итог тика
	player    *domain.Entity
	presenter domain.Presenter
	spawner   *SpawnDirector

	// OnCommand вызывается для каждой реально исполненной команды игрока (запись повтора).
	OnCommand func(tick int, cmd domain.Command)

	log *logrus.Entry
}

// NewLevel создает и заселяет уровень. Зерно уровня выводится из мастер-зерна.
func NewLevel(number, round int, masterSeed int64, presenter domain.Presenter, progress *domain.Progress) *Level {
	seed := utils.DeriveSeed(masterSeed, number)

	var audio domain.AudioSink
	if presenter != nil {
		audio = presenter
	}
	w := domain.NewWorld(number, utils.NewRng(seed), audio, progress)
	PopulateLevel(w)

	l := newLevel(w, round, presenter)
	l.Seed = seed

	l.log.WithFields(logrus.Fields{
		"seed":     seed,
		"entities": w.Len(),
		"barrels":  w.BarrelsRequired,
	}).Info("Level started")

	return l
}

// newLevel оборачивает уже заселенный мир.
func newLevel(w *domain.World, round int, presenter domain.Presenter) *Level {
	return &Level{
		World:     w,
		Round:     round,
		player:    w.Player(),
		presenter: presenter,
		spawner:   NewSpawnDirector(w.Level),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "level",
			"level":     w.Level,
			"round":     round,
		}),
	}
}

// Tick - один шаг симуляции в фиксированном порядке:
// статус, спавн протестующих, спавн воды/сонара, игрок, остальные по порядку вставки, очистка, статус.
func (l *Level) Tick() enums.TickStatus {
	w := l.World

	l.updateStatus()

	l.spawner.Tick(w)

	player := l.player
	if player == nil || !player.Alive {
		return l.finish(enums.TickPlayerDied)
	}

	if cmd, ok := systems.TickPlayer(player, w, l.presenter); ok {
		l.log.WithFields(logrus.Fields{
			"tick":   w.GlobalTick,
			"action": cmd.Action,
		}).Debug("Player command executed")
		if l.OnCommand != nil {
			l.OnCommand(w.GlobalTick, cmd)
		}
	}
	if !player.Alive {
		return l.finish(enums.TickPlayerDied)
	}

	// Len перечитывается: сущности, рожденные в этом тике, тоже ходят
	for i := 0; i < w.Len(); i++ {
		e := w.At(i)
		if e == nil || !e.Alive || e.Kind == enums.EntityPlayer {
			continue
		}

		systems.TickEntity(e, w)

		if !player.Alive {
			return l.finish(enums.TickPlayerDied)
		}
		if l.Completed() {
			w.PlaySound(enums.SoundFinishedLevel)
			return l.finish(enums.TickLevelCompleted)
		}
	}

	return l.finish(enums.TickContinue)
}

// Player - игрок уровня (остается доступен и после очистки мира).
func (l *Level) Player() *domain.Entity {
	return l.player
}

// Completed - все размещенные бочки найдены.
func (l *Level) Completed() bool {
	p := l.player
	return p != nil && p.Player.BarrelsFound == l.World.BarrelsRequired
}

// BarrelsLeft - для статуса и снапшотов.
func (l *Level) BarrelsLeft() int {
	p := l.player
	if p == nil {
		return l.World.BarrelsRequired
	}
	return l.World.BarrelsRequired - p.Player.BarrelsFound
}

// StatusText - строка статуса для текущего состояния.
func (l *Level) StatusText() string {
	w := l.World
	p := l.player
	if p == nil {
		return ""
	}
	return FormatStatus(StatusLine{
		Level:       w.Level,
		Lives:       w.Progress.Lives,
		Health:      max(0, p.Player.HP) * domain.StatusHealthMultiplier,
		Water:       p.Player.Water,
		Gold:        p.Player.Gold,
		BarrelsLeft: l.BarrelsLeft(),
		Sonar:       p.Player.Sonar,
		Score:       w.Progress.Score,
	})
}

func (l *Level) updateStatus() {
	if l.presenter == nil {
		return
	}
	l.presenter.SetStatusText(l.StatusText())
}

// finish - общий выход из тика: мертвых убираем при любом исходе.
func (l *Level) finish(status enums.TickStatus) enums.TickStatus {
	if removed := l.World.Purge(); removed > 0 {
		l.log.WithFields(logrus.Fields{
			"tick":    l.World.GlobalTick,
			"removed": removed,
		}).Debug("Purged dead entities")
	}
	l.updateStatus()
	l.World.GlobalTick++

	if status != enums.TickContinue {
		l.log.WithFields(logrus.Fields{
			"tick":   l.World.GlobalTick,
			"status": status,
			"score":  l.World.Progress.Score,
		}).Info("Level tick ended the round")
	}
	return status
}
