package main

import (
	"fmt"
	"os"
	"time"

	"tunnel-server/internal/domain"
	"tunnel-server/internal/engine"
	"tunnel-server/internal/infrastructure/storage"
	"tunnel-server/pkg/logger"
)

func main() {
	logger.Init()

	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "list":
		dir := "./replays"
		if len(os.Args) > 2 {
			dir = os.Args[2]
		}
		files, err := storage.NewReplayService(dir).List()
		if err != nil {
			fmt.Printf("Cannot list %s: %v\n", dir, err)
			os.Exit(1)
		}
		for _, f := range files {
			fmt.Println(f)
		}
	case "info":
		if len(os.Args) < 3 {
			fmt.Println("Usage: replayutil info <file>")
			return
		}
		f, err := os.Open(os.Args[2])
		if err != nil {
			fmt.Printf("Cannot open: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		h, err := storage.ReadHeader(f)
		if err != nil {
			fmt.Printf("Invalid replay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("seed:        %d\n", h.Seed)
		fmt.Printf("recorded:    %s\n", time.Unix(h.Timestamp, 0).Format(time.RFC3339))
		fmt.Printf("start level: %d\n", h.StartLevel)
		fmt.Printf("actions:     %d\n", h.ActionCount)
		fmt.Printf("end:         round %d, tick %d\n", h.EndRound, h.EndTick)
		fmt.Printf("final score: %d\n", h.FinalScore)
	case "dump":
		if len(os.Args) < 3 {
			fmt.Println("Usage: replayutil dump <file>")
			return
		}
		session, err := load(os.Args[2])
		if err != nil {
			fmt.Printf("Invalid replay: %v\n", err)
			os.Exit(1)
		}
		for _, a := range session.Actions {
			fmt.Printf("round %3d tick %6d  %-10s %s\n", a.Round, a.Tick, a.Command.Action, a.Command.Direction)
		}
	case "verify":
		if len(os.Args) < 3 {
			fmt.Println("Usage: replayutil verify <file>")
			return
		}
		session, err := load(os.Args[2])
		if err != nil {
			fmt.Printf("Invalid replay: %v\n", err)
			os.Exit(1)
		}
		game := engine.NewReplayService(engine.NewConfig(), session)
		for game.Step() {
		}
		if game.Progress.Score != session.FinalScore {
			fmt.Printf("DIVERGED: score %d, recorded %d\n", game.Progress.Score, session.FinalScore)
			os.Exit(2)
		}
		fmt.Printf("OK: score %d\n", game.Progress.Score)
	default:
		printHelp()
	}
}

func load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return storage.ReadBinary(f)
}

func printHelp() {
	fmt.Println(`Replay Utility - работа с записями партий (.tmrp)
Commands:
  list [dir]      - записи в папке (по умолчанию ./replays)
  info <file>     - заголовок записи без распаковки
  dump <file>     - все команды по раундам и тикам
  verify <file>   - прогнать запись и сверить итоговый счет`)
}
