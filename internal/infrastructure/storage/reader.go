package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"

	"github.com/klauspost/compress/zstd"
)

var ErrInvalidMagic = errors.New("invalid magic")

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadBinary(f)
}

// Latest - самая свежая запись в SaveDir (имена файлов упорядочены по времени внутри сида).
func (s *ReplayService) Latest() (string, error) {
	entries, err := os.ReadDir(s.SaveDir)
	if err != nil {
		return "", err
	}

	var best string
	var bestMod int64
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), FileExt) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); best == "" || mod > bestMod {
			best, bestMod = e.Name(), mod
		}
	}
	if best == "" {
		return "", fmt.Errorf("no replays in %s", s.SaveDir)
	}
	return filepath.Join(s.SaveDir, best), nil
}

// List - все записи в SaveDir по имени.
func (s *ReplayService) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.SaveDir, "*"+FileExt))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// ReadHeader читает и проверяет только заголовок.
func ReadHeader(r io.Reader) (ReplayFileHeader, error) {
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return header, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return header, ErrInvalidMagic
	}
	if header.Version != Version1 {
		return header, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	if header.ActionCount < 0 {
		return header, fmt.Errorf("corrupted header: %d actions", header.ActionCount)
	}
	return header, nil
}

func ReadBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Заголовок
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	session := &domain.ReplaySession{
		Seed:       header.Seed,
		Timestamp:  header.Timestamp,
		StartLevel: int(header.StartLevel),
		EndRound:   int(header.EndRound),
		EndTick:    int(header.EndTick),
		FinalScore: int(header.FinalScore),
		Actions:    make([]domain.ReplayAction, 0, header.ActionCount),
	}

	// 2. Действия
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to init decoder: %w", err)
	}
	defer dec.Close()

	for i := 0; i < int(header.ActionCount); i++ {
		var rec ActionRecord
		if err := binary.Read(dec, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}

		session.Actions = append(session.Actions, domain.ReplayAction{
			Round: int(rec.Round),
			Tick:  int(rec.Tick),
			Command: domain.Command{
				Action:    domain.ActionType(rec.ActionType),
				Direction: enums.Direction(rec.Direction),
			},
		})
	}

	return session, nil
}
