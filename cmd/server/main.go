package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"tunnel-server/internal/agent"
	"tunnel-server/internal/engine"
	"tunnel-server/internal/infrastructure/storage"
	"tunnel-server/internal/server"
	"tunnel-server/internal/version"
	"tunnel-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var configPath, replayPath string
	var autopilot, cheats bool
	// Читаем флаг -seed. По умолчанию 0 (значит из конфига или случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for config/random)")
	flag.StringVar(&configPath, "config", "", "Path to YAML config")
	flag.StringVar(&replayPath, "replay", "", "Path to .tmrp replay file to simulate ('latest' for the newest)")
	flag.BoolVar(&autopilot, "autopilot", false, "Let the built-in agent play")
	flag.BoolVar(&cheats, "cheats", false, "Enable ADMIN_* commands")
	flag.Parse()

	logger.Log.Info("Starting Tunnel server...")
	logger.Log.Info(version.String())

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	cfg.Autopilot = cfg.Autopilot || autopilot
	cfg.Cheats = cfg.Cheats || cheats
	if port := os.Getenv("TUNNEL_PORT"); port != "" {
		cfg.Port = port
	}

	replays := storage.NewReplayService(cfg.ReplayDir)

	// РЕЖИМ РЕПЛЕЯ: прогоняем запись без ожидания тикера и выходим
	if replayPath != "" {
		runReplay(cfg, replays, replayPath)
		return
	}

	logger.Log.Infof("Using master seed: %d", cfg.Seed)

	// 2. Инициализация ядра с конфигом
	gameService := engine.NewService(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameService.Start(ctx)

	if cfg.Autopilot {
		bot := agent.NewBot(agent.SessionName(1), gameService)
		go bot.Run(ctx)
	}

	// 3. Запуск сервера
	srv := server.New(gameService, cfg.Port)
	go func() {
		if err := srv.Run(ctx); err != nil {
			logger.Log.WithError(err).Fatal("Server start error")
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down...")

	if _, err := replays.Save(gameService.FinishRecording()); errors.Is(err, storage.ErrNotReplayable) {
		logger.Log.Warn("Replay not saved: admin commands were used")
	} else if err != nil {
		logger.Log.WithError(err).Error("Failed to save replay")
	}

	logger.Log.Info("Done.")
}

func runReplay(cfg engine.Config, replays *storage.ReplayService, path string) {
	logger.Log.Info("Mode: Replay Simulation")

	if path == "latest" {
		latest, err := replays.Latest()
		if err != nil {
			logger.Log.WithError(err).Fatal("No replay to run")
		}
		path = latest
	}

	session, err := replays.Load(path)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load replay")
	}

	game := engine.NewReplayService(cfg, session)
	for game.Step() {
	}

	logger.Log.WithFields(logrus.Fields{
		"path":     path,
		"score":    game.Progress.Score,
		"expected": session.FinalScore,
		"level":    game.Progress.Level,
	}).Info("Replay simulated")

	if game.Progress.Score != session.FinalScore {
		os.Exit(2)
	}
}
