package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tunnel-server/internal/domain"
	"tunnel-server/pkg/logger"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `TMRP` // 4 байта
	Version1    uint32 = 1

	// FileExt - расширение файлов записи
	FileExt = ".tmrp"
)

// ReplayFileHeader — точное представление заголовка файла в памяти.
// Пишется без сжатия, чтобы утилиты могли читать его без распаковки.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        int64   // 8 байт
	Timestamp   int64   // 8 байт
	StartLevel  int32   // 4 байта
	ActionCount int32   // 4 байта
	EndRound    int32   // 4 байта
	EndTick     int32   // 4 байта
	FinalScore  int32   // 4 байта
}

// ActionRecord — одна команда. После заголовка идут подряд в zstd-потоке.
type ActionRecord struct {
	Round      int32 // 4
	Tick       int32 // 4
	ActionType uint8 // 1
	Direction  uint8 // 1
}

// ErrNotReplayable - запись с админ-командами не воспроизводится, ее не сохраняем.
var ErrNotReplayable = errors.New("session used admin commands")

type ReplayService struct {
	SaveDir string
	log     *logrus.Entry
}

func NewReplayService(dir string) *ReplayService {
	// Создаем папку если нет
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Log.WithError(err).WithField("dir", dir).Warn("Cannot create replay dir")
	}
	return &ReplayService{
		SaveDir: dir,
		log:     logger.Log.WithFields(logrus.Fields{"component": "replay_storage", "dir": dir}),
	}
}

// FileName - имя файла для записи: сид, стартовый уровень, время.
func FileName(session *domain.ReplaySession) string {
	return fmt.Sprintf("replay_%d_lvl%d_%d%s", session.Seed, session.StartLevel, session.Timestamp, FileExt)
}

// Save пишет запись в SaveDir и возвращает путь к файлу.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	if session.Cheated {
		return "", ErrNotReplayable
	}
	path := filepath.Join(s.SaveDir, FileName(session))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := WriteBinary(bw, session); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"path":    path,
		"actions": len(session.Actions),
		"score":   session.FinalScore,
	}).Info("Replay saved")
	return path, nil
}

func WriteBinary(w io.Writer, s *domain.ReplaySession) error {
	// 1. Глобальный заголовок
	header := ReplayFileHeader{
		Version:     Version1,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		StartLevel:  int32(s.StartLevel),
		ActionCount: int32(len(s.Actions)),
		EndRound:    int32(s.EndRound),
		EndTick:     int32(s.EndTick),
		FinalScore:  int32(s.FinalScore),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Действия, сжатые одним кадром
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("failed to init encoder: %w", err)
	}

	for _, act := range s.Actions {
		rec := ActionRecord{
			Round:      int32(act.Round),
			Tick:       int32(act.Tick),
			ActionType: uint8(act.Command.Action),
			Direction:  uint8(act.Command.Direction),
		}
		if err := binary.Write(enc, binary.LittleEndian, &rec); err != nil {
			_ = enc.Close()
			return fmt.Errorf("failed to write action: %w", err)
		}
	}

	return enc.Close()
}
