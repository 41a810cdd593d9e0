package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
)

func TestBoulder_SupportedStaysStable(t *testing.T) {
	w, q := newTestWorld(1)
	fillRect(w, 10, 26, 13, 29)
	b := spawnAt(w, domain.NewBoulder(domain.Position{}), 10, 30)

	for i := 0; i < 100; i++ {
		TickBoulder(b, w)
	}
	assert.Equal(t, enums.BoulderStable, b.Boulder.State)
	assert.Equal(t, 30, b.Pos.Y)
	assert.Empty(t, q.DrainSounds())
}

func TestBoulder_FallTiming(t *testing.T) {
	w, q := newTestWorld(1)
	fillRect(w, 10, 0, 13, 19)
	b := spawnAt(w, domain.NewBoulder(domain.Position{}), 10, 30)

	// 30 тиков: нестабилен, потом начинает падать, но еще не сдвинулся
	for i := 0; i < domain.BoulderDwellTicks; i++ {
		TickBoulder(b, w)
	}
	require.Equal(t, enums.BoulderFalling, b.Boulder.State)
	assert.Equal(t, 30, b.Pos.Y)
	assert.Equal(t, []enums.Sound{enums.SoundFallingRock}, q.DrainSounds())

	for k := 1; k <= 5; k++ {
		TickBoulder(b, w)
		assert.Equal(t, 30-k, b.Pos.Y, "after %d falling ticks", k)
	}
}

func TestBoulder_StopsOnTerrain(t *testing.T) {
	w, _ := newTestWorld(1)
	fillRect(w, 10, 0, 13, 19)
	b := spawnAt(w, domain.NewBoulder(domain.Position{}), 10, 22)

	for i := 0; i < domain.BoulderDwellTicks+2; i++ {
		TickBoulder(b, w)
	}
	assert.Equal(t, 20, b.Pos.Y)
	assert.True(t, b.Alive)

	TickBoulder(b, w)
	assert.False(t, b.Alive)
	assert.Equal(t, enums.BoulderDead, b.Boulder.State)
	assert.Equal(t, 20, b.Pos.Y)
}

func TestBoulder_StopsOnAnotherBoulder(t *testing.T) {
	w, _ := newTestWorld(1)
	fillRect(w, 0, 0, 63, 9)
	spawnAt(w, domain.NewBoulder(domain.Position{}), 10, 10)
	top := spawnAt(w, domain.NewBoulder(domain.Position{}), 10, 16)

	for i := 0; i < domain.BoulderDwellTicks+2; i++ {
		TickBoulder(top, w)
	}
	assert.Equal(t, 14, top.Pos.Y)
	TickBoulder(top, w)
	assert.False(t, top.Alive)
}

func TestBoulder_SmashesProtesterAndPlayer(t *testing.T) {
	w, q := newTestWorld(1)
	fillRect(w, 0, 0, 63, 9)
	b := spawnAt(w, domain.NewBoulder(domain.Position{}), 20, 30)
	b.Boulder.State = enums.BoulderFalling

	prot := spawnAt(w, domain.NewProtester(enums.EntityRegularProtester, 10), 22, 26)
	pl := w.Player()
	pl.Pos = domain.Position{X: 20, Y: 25}

	TickBoulder(b, w)
	assert.Equal(t, 29, b.Pos.Y)
	assert.Equal(t, enums.ProtesterExiting, prot.Protester.State)
	assert.Equal(t, domain.ScoreBoulderKill, w.Progress.Score)
	assert.False(t, pl.Alive)
	assert.Contains(t, q.DrainSounds(), enums.SoundPlayerGiveUp)
}
