// Command terminal - локальная игра в терминале: тот же GameService, что и у сервера,
// но снимки рисуются через tcell, а звуки играются через beep.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"tunnel-server/internal/engine"
	"tunnel-server/internal/infrastructure/storage"
	"tunnel-server/internal/version"
	"tunnel-server/pkg/api"
	"tunnel-server/pkg/logger"

	"github.com/gdamore/tcell/v2"
)

const (
	sessionName = "terminal"
	maxLogLines = 3
)

func init() {
	// Экран занят игрой: без LOG_FILE логи уходят в файл рядом
	if os.Getenv("LOG_FILE") == "" {
		_ = os.Setenv("LOG_FILE", "tunnel-terminal.log")
	}
	logger.Init()
}

func main() {
	var seed int64
	var configPath string
	var level int
	var mute, record bool
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&configPath, "config", "", "Path to YAML config")
	flag.IntVar(&level, "level", -1, "Start level (overrides config)")
	flag.BoolVar(&mute, "mute", false, "Disable audio")
	flag.BoolVar(&record, "record", true, "Save replay on exit")
	flag.Parse()

	logger.Log.Info(version.String())

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if level >= 0 {
		cfg.StartLevel = level
	}

	if err := run(cfg, mute, record); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg engine.Config, mute, record bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	audio := NewAudio(mute)
	defer audio.Close()

	game := engine.NewService(cfg)
	updates := game.Hub.Register(sessionName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	game.Start(ctx)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var logs []string
	last := game.Snapshot()
	draw(screen, composeFrame(last), logs)

loop:
	for {
		select {
		case state, ok := <-updates:
			if !ok {
				break loop
			}
			last = state
			logs = appendLogs(logs, state.Logs)
			audio.Play(state.Sounds)
			draw(screen, composeFrame(state), logs)

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, composeFrame(last), logs)
			case *tcell.EventKey:
				act := translateKey(ev)
				if act.quit {
					break loop
				}
				if !act.ok {
					continue
				}
				act.cmd.Token = sessionName
				if err := game.ProcessCommand(act.cmd); err != nil {
					logs = appendLogs(logs, []api.LogEntry{{Text: err.Error(), Type: "ERROR"}})
					draw(screen, composeFrame(last), logs)
				}
			}
		}
	}

	cancel()
	game.Hub.Unregister(sessionName)

	if record {
		session := game.FinishRecording()
		if _, err := storage.NewReplayService(cfg.ReplayDir).Save(session); errors.Is(err, storage.ErrNotReplayable) {
			logger.Log.Warn("Replay not saved: admin commands were used")
		} else if err != nil {
			logger.Log.WithError(err).Error("Failed to save replay")
		}
	}
	return nil
}

// appendLogs держит последние maxLogLines сообщений.
func appendLogs(lines []string, entries []api.LogEntry) []string {
	for _, e := range entries {
		lines = append(lines, e.Text)
	}
	if len(lines) > maxLogLines {
		lines = lines[len(lines)-maxLogLines:]
	}
	return lines
}
