package dungeon

import (
	"math/rand"

	"tunnel-server/internal/domain"
	"tunnel-server/pkg/logger"
	"tunnel-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// LevelBuilder предоставляет fluent API для заселения уровня.
// Все случайные решения берутся из генератора мира, поэтому заселение детерминировано.
type LevelBuilder struct {
	world   *domain.World
	rng     *rand.Rand
	skipped int
}

// NewLevel создает builder поверх пустого мира
func NewLevel(w *domain.World) *LevelBuilder {
	return &LevelBuilder{
		world: w,
		rng:   w.Rng,
	}
}

func (b *LevelBuilder) randRange(min, max int) int {
	return utils.RandRange(b.rng, min, max)
}

// WithTerrain заполняет поле стартовым грунтом с шахтой
func (b *LevelBuilder) WithTerrain() *LevelBuilder {
	b.world.Terrain.FillDefault()
	return b
}

// Spawn размещает count объектов по шаблону.
// Точка подбирается случайно, но не ближе 6 к уже стоящим объектам.
// Если за MaxPlacementAttempts попыток места нет, объект пропускается.
func (b *LevelBuilder) Spawn(t PlacementTemplate, count int) *LevelBuilder {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "level_builder",
		"level":     b.world.Level,
		"template":  t.Name,
	})

	for i := 0; i < count; i++ {
		pos, ok := b.findSpot(t)
		if !ok {
			b.skipped++
			log.WithField("attempts", domain.MaxPlacementAttempts).Warn("No room for object, skipped")
			continue
		}

		e := t.SpawnEntity(pos)
		if e.Boulder != nil {
			b.world.ClearTerrain(pos)
		}
		b.world.Spawn(e)
	}

	return b
}

// SpawnBoulders, SpawnBarrels, SpawnGold — количество по формулам уровня.
func (b *LevelBuilder) SpawnBoulders() *LevelBuilder {
	return b.Spawn(Boulder, Boulder.Count(b.world.Level))
}

func (b *LevelBuilder) SpawnBarrels() *LevelBuilder {
	return b.Spawn(Barrel, Barrel.Count(b.world.Level))
}

func (b *LevelBuilder) SpawnGold() *LevelBuilder {
	return b.Spawn(Gold, Gold.Count(b.world.Level))
}

// WithPlayer ставит игрока. Вызывается последним: игрок не участвует в проверке дистанции.
func (b *LevelBuilder) WithPlayer() *LevelBuilder {
	CreatePlayer(b.world)
	return b
}

// Skipped — сколько объектов не удалось разместить.
func (b *LevelBuilder) Skipped() int {
	return b.skipped
}

// Build фиксирует число бочек и возвращает готовый мир
func (b *LevelBuilder) Build() *domain.World {
	b.world.BarrelsRequired = b.world.CountKind(Barrel.Kind)
	return b.world
}

func (b *LevelBuilder) findSpot(t PlacementTemplate) (domain.Position, bool) {
	for attempt := 0; attempt < domain.MaxPlacementAttempts; attempt++ {
		pos := domain.Position{
			X: b.randRange(t.MinX, t.MaxX),
			Y: b.randRange(t.MinY, t.MaxY),
		}
		if t.AvoidShaft && nearShaft(pos) {
			continue
		}
		if b.tooClose(pos) {
			continue
		}
		return pos, true
	}
	return domain.Position{}, false
}

// tooClose — есть ли объект на расстоянии <= 6. Игрок не считается.
func (b *LevelBuilder) tooClose(pos domain.Position) bool {
	for _, e := range b.world.Entities() {
		if e.Player != nil {
			continue
		}
		if pos.DistanceTo(e.Pos) <= domain.PlacementSpacing {
			return true
		}
	}
	return false
}

// Populate — стандартное заселение уровня целиком.
func Populate(w *domain.World) *domain.World {
	return NewLevel(w).
		WithTerrain().
		SpawnBoulders().
		SpawnBarrels().
		SpawnGold().
		WithPlayer().
		Build()
}
