package dungeon

import (
	"tunnel-server/internal/domain"
	"tunnel-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CreatePlayer ставит игрока в стартовую точку над шахтой
func CreatePlayer(w *domain.World) *domain.Entity {
	p := domain.NewPlayer()
	w.Spawn(p)

	logger.Log.WithFields(logrus.Fields{
		"component": "level_builder",
		"level":     w.Level,
		"entity_id": p.ID,
	}).Debug("Player placed")

	return p
}
