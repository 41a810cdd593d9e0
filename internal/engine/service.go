package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/internal/engine/handlers"
	"tunnel-server/internal/engine/handlers/actions"
	"tunnel-server/internal/engine/handlers/admin"
	"tunnel-server/internal/network"
	"tunnel-server/pkg/api"
	"tunnel-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrQueueFull     = errors.New("command queue full")
	ErrReadOnly      = errors.New("replay is read-only")
	ErrGameOver      = errors.New("game is over")
)

// levelPresenter собирает презентер уровня из частей: звук и статус идут в очередь сервиса,
// ввод - из очереди или из записи повтора.
type levelPresenter struct {
	domain.AudioSink
	domain.StatusSink
	domain.InputSource
}

// GameService ведет партию: жизни, смену уровней, реальное время и рассылку снимков.
type GameService struct {
	Config   Config
	Progress *domain.Progress
	Replay   *domain.ReplaySession
	Hub      *network.Broadcaster

	CommandChan chan domain.InternalCommand

	queue    *domain.QueuePresenter
	playback *ReplayInput
	source   *domain.ReplaySession // запись, которую проигрываем (nil в живой игре)

	handlers map[domain.ActionType]handlers.HandlerFunc

	mu    sync.RWMutex
	level *Level
	round int
	over  bool
	logs  []api.LogEntry

	log *logrus.Entry
}

// NewService создает живую партию и запускает первый уровень.
func NewService(cfg Config) *GameService {
	s := newService(cfg)
	s.registerHandlers()
	s.startLevel()
	return s
}

// NewReplayService проигрывает запись: сид и стартовый уровень берутся из нее.
func NewReplayService(cfg Config, session *domain.ReplaySession) *GameService {
	cfg.Seed = session.Seed
	cfg.StartLevel = session.StartLevel

	s := newService(cfg)
	s.source = session
	s.playback = NewReplayInput(session)
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.startLevel()

	s.log.WithFields(logrus.Fields{
		"actions":   len(session.Actions),
		"end_round": session.EndRound,
		"end_tick":  session.EndTick,
	}).Info("Replay loaded")
	return s
}

func newService(cfg Config) *GameService {
	progress := domain.NewProgress()
	progress.Level = cfg.StartLevel

	return &GameService{
		Config:   cfg,
		Progress: progress,
		Replay: &domain.ReplaySession{
			StartLevel: cfg.StartLevel,
			Seed:       cfg.Seed,
			Timestamp:  time.Now().Unix(),
			Actions:    make([]domain.ReplayAction, 0),
		},
		Hub:         network.NewBroadcaster(),
		CommandChan: make(chan domain.InternalCommand, 100),
		queue:       domain.NewQueuePresenter(),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
		logs:        []api.LogEntry{},
		log: logger.Log.WithFields(logrus.Fields{
			"component": "game_service",
			"seed":      cfg.Seed,
		}),
	}
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionSquirt] = handlers.WithEmptyPayload(actions.HandleSquirt)
	s.handlers[domain.ActionSonar] = handlers.WithEmptyPayload(actions.HandleSonar)
	s.handlers[domain.ActionDropGold] = handlers.WithEmptyPayload(actions.HandleDropGold)
	s.handlers[domain.ActionGiveUp] = handlers.WithEmptyPayload(actions.HandleGiveUp)

	if s.Config.Cheats {
		s.handlers[domain.ActionAdminReveal] = handlers.WithEmptyPayload(admin.HandleReveal)
		s.handlers[domain.ActionAdminRefill] = handlers.WithPayload(admin.HandleRefill)
		s.handlers[domain.ActionAdminHeal] = handlers.WithEmptyPayload(admin.HandleHeal)
		s.handlers[domain.ActionAdminSpawn] = handlers.WithPayload(admin.HandleSpawn)
		s.log.Warn("Admin commands enabled")
	}
}

// Presenter - очередь ввода и приемник звука/статуса (терминальный клиент вешает на нее колбэки).
func (s *GameService) Presenter() *domain.QueuePresenter {
	return s.queue
}

// IsReplay - партия проигрывается из записи.
func (s *GameService) IsReplay() bool {
	return s.playback != nil
}

// startLevel запускает уровень Progress.Level заново (и после смерти, и после победы).
func (s *GameService) startLevel() {
	s.round++

	var input domain.InputSource = s.queue
	if s.playback != nil {
		input = s.playback
	}

	l := NewLevel(s.Progress.Level, s.round, s.Config.Seed, levelPresenter{
		AudioSink:   s.queue,
		StatusSink:  s.queue,
		InputSource: input,
	}, s.Progress)

	if s.playback == nil {
		l.OnCommand = func(tick int, cmd domain.Command) {
			s.Replay.Record(l.Round, tick, cmd)
		}
	}
	s.level = l
}

// Start запускает игровой цикл в отдельной горутине
func (s *GameService) Start(ctx context.Context) {
	go func() {
		if err := s.RunGameLoop(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.log.WithError(err).Error("Game loop stopped")
		}
	}()
}

// --- GAME LOOP ---

// RunGameLoop тикает уровень с частотой Config.TickHz до конца партии или отмены контекста.
func (s *GameService) RunGameLoop(ctx context.Context) error {
	s.log.WithField("tick_hz", s.Config.TickHz).Info("Game loop started")

	ticker := time.NewTicker(s.Config.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.Step() {
				s.log.WithFields(logrus.Fields{
					"score": s.Progress.Score,
					"level": s.Progress.Level,
				}).Info("Game loop finished")
				return nil
			}
		}
	}
}

// Step - один тик партии: команды из сети, тик уровня, переходы, рассылка.
// Возвращает false, когда партия закончена.
func (s *GameService) Step() bool {
	s.mu.Lock()
	if s.over {
		s.mu.Unlock()
		return false
	}

	s.drainCommands()

	l := s.level
	if s.playback != nil {
		if s.source.Reached(l.Round, l.World.GlobalTick) {
			s.finishPlayback()
			s.mu.Unlock()
			s.publishUpdate()
			return false
		}
		s.playback.Seek(l.Round, l.World.GlobalTick)
	}

	status := l.Tick()
	s.handleStatus(status)
	if s.over && s.playback != nil {
		s.finishPlayback()
	}
	over := s.over
	s.mu.Unlock()

	s.publishUpdate()
	return !over
}

// handleStatus - жизни и смена уровня по итогу тика.
func (s *GameService) handleStatus(status enums.TickStatus) {
	switch status {
	case enums.TickPlayerDied:
		s.Progress.Lives--
		s.AddLog(fmt.Sprintf("Игрок погиб. Осталось жизней: %d", s.Progress.Lives), "INFO")
		s.log.WithFields(logrus.Fields{
			"level": s.Progress.Level,
			"lives": s.Progress.Lives,
		}).Info("Player died")

		if s.Progress.GameOver() {
			s.over = true
			s.Replay.Close(s.level.Round, s.level.World.GlobalTick, s.Progress.Score)
			s.AddLog("Игра окончена.", "INFO")
			s.log.WithField("score", s.Progress.Score).Info("Game over")
			return
		}
		s.startLevel()

	case enums.TickLevelCompleted:
		s.Progress.Level++
		s.AddLog(fmt.Sprintf("Уровень пройден. Следующий: %d", s.Progress.Level), "INFO")
		s.startLevel()
	}
}

func (s *GameService) finishPlayback() {
	s.over = true
	entry := s.log.WithFields(logrus.Fields{
		"score":    s.Progress.Score,
		"expected": s.source.FinalScore,
		"skipped":  s.playback.Remaining(),
	})
	if s.Progress.Score == s.source.FinalScore {
		entry.Info("Replay finished, score matches")
		return
	}
	entry.Warn("Replay diverged from recording")
}

// FinishRecording фиксирует текущую точку как конец записи и возвращает ее.
func (s *GameService) FinishRecording() *domain.ReplaySession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.over {
		s.Replay.Close(s.level.Round, s.level.World.GlobalTick, s.Progress.Score)
	}
	return s.Replay
}

// IsOver - партия закончена (жизни кончились или запись доиграна).
func (s *GameService) IsOver() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.over
}

// PendingCommands - сколько команд ждут исполнения (в канале и в очереди игрока).
func (s *GameService) PendingCommands() int {
	return len(s.CommandChan) + s.queue.Pending()
}

// ProcessCommand принимает команду от внешнего мира (WebSocket, бот, терминал).
// Сама команда исполняется в горутине цикла перед следующим тиком.
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) error {
	actionType := domain.ParseAction(externalCmd.Action)
	if _, ok := s.handlers[actionType]; !ok {
		if s.playback != nil && actionType != domain.ActionUnknown {
			return ErrReadOnly
		}
		return fmt.Errorf("%w: %s", ErrUnknownAction, externalCmd.Action)
	}
	if s.IsOver() {
		return ErrGameOver
	}

	select {
	case s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}:
		return nil
	default:
		return ErrQueueFull
	}
}

// drainCommands исполняет все пришедшие команды. Вызывается под замком.
func (s *GameService) drainCommands() {
	for {
		select {
		case cmd := <-s.CommandChan:
			s.executeCommand(cmd)
		default:
			return
		}
	}
}

// executeCommand выполняет хендлер и пишет логи
func (s *GameService) executeCommand(cmd domain.InternalCommand) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		World:    s.level.World,
		Player:   s.level.Player(),
		Input:    s.queue,
		Progress: s.Progress,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"action":  cmd.Action,
			"session": cmd.Token,
		}).WithError(err).Warn("Command rejected")
		s.AddLog(err.Error(), "ERROR")
		return
	}

	if cmd.Action.IsAdmin() && s.Replay != nil && !s.Replay.Cheated {
		s.Replay.Cheated = true
		s.log.WithFields(logrus.Fields{
			"action":  cmd.Action,
			"session": cmd.Token,
		}).Warn("Admin command used, recording will not be saved")
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.AddLog(result.Msg, msgType)
	}
}

// AddLog добавляет запись в лог, который уйдет со следующим снимком. Вызывается под замком.
func (s *GameService) AddLog(text, logType string) {
	s.logs = append(s.logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", s.round, time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// WithLevel дает доступ к текущему уровню на чтение (отладочные ручки, тесты).
func (s *GameService) WithLevel(fn func(l *Level)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.level)
}
