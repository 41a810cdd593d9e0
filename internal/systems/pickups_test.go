package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
)

func TestTickPickup_RevealThenCollect(t *testing.T) {
	w, q := newTestWorld(1)
	pl := w.Player()
	pl.Pos = domain.Position{X: 20, Y: 20}
	b := spawnAt(w, domain.NewHiddenPickup(enums.EntityBarrel, domain.Position{}), 22, 20)

	TickPickup(b, w)
	assert.True(t, b.Visible)
	assert.True(t, b.Alive, "revealing takes the whole tick")

	TickPickup(b, w)
	assert.False(t, b.Alive)
	assert.Equal(t, 1, pl.Player.BarrelsFound)
	assert.Equal(t, domain.ScoreBarrel, w.Progress.Score)
	assert.Equal(t, []enums.Sound{enums.SoundFoundOil}, q.DrainSounds())
}

func TestTickPickup_Effects(t *testing.T) {
	tests := []struct {
		kind      enums.EntityKind
		wantScore int
		check     func(t *testing.T, c *domain.PlayerComponent)
	}{
		{enums.EntityGold, domain.ScoreGold, func(t *testing.T, c *domain.PlayerComponent) { assert.Equal(t, 1, c.Gold) }},
		{enums.EntityWater, domain.ScoreWater, func(t *testing.T, c *domain.PlayerComponent) {
			assert.Equal(t, domain.PlayerStartWater+domain.WaterRefillAmount, c.Water)
		}},
		{enums.EntitySonar, domain.ScoreSonar, func(t *testing.T, c *domain.PlayerComponent) {
			assert.Equal(t, domain.PlayerStartSonar+1, c.Sonar)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w, q := newTestWorld(1)
			pl := w.Player()
			pl.Pos = domain.Position{X: 20, Y: 20}
			e := spawnAt(w, domain.NewGoodie(tt.kind, domain.Position{}, 100), 20, 23)

			TickPickup(e, w)
			assert.False(t, e.Alive)
			assert.Equal(t, tt.wantScore, w.Progress.Score)
			assert.Equal(t, []enums.Sound{enums.SoundGotGoodie}, q.DrainSounds())
			tt.check(t, pl.Player)
		})
	}
}

func TestTickPickup_Expires(t *testing.T) {
	w, _ := newTestWorld(1)
	e := spawnAt(w, domain.NewGoodie(enums.EntityWater, domain.Position{}, 100), 0, 0)

	for i := 0; i < 100; i++ {
		TickPickup(e, w)
	}
	assert.True(t, e.Alive)

	TickPickup(e, w)
	assert.False(t, e.Alive, "dies on the 101st tick")
}

func TestTickPickup_DroppedGoldBribes(t *testing.T) {
	w, q := newTestWorld(1)
	g := spawnAt(w, domain.NewDroppedGold(domain.Position{}), 40, 40)
	prot := spawnAt(w, domain.NewProtester(enums.EntityRegularProtester, 10), 43, 40)

	// Игрок рядом не может поднять брошенное золото
	w.Player().Pos = domain.Position{X: 40, Y: 41}

	TickPickup(g, w)
	assert.False(t, g.Alive)
	assert.Equal(t, enums.ProtesterExiting, prot.Protester.State)
	assert.Equal(t, domain.ScoreBribeRegular, w.Progress.Score)
	assert.Equal(t, []enums.Sound{enums.SoundProtesterFoundGold}, q.DrainSounds())
}

func TestTickPickup_DroppedGoldIgnoresPlayer(t *testing.T) {
	w, _ := newTestWorld(1)
	g := spawnAt(w, domain.NewDroppedGold(domain.Position{}), 40, 40)
	w.Player().Pos = domain.Position{X: 40, Y: 40}

	TickPickup(g, w)
	assert.True(t, g.Alive)
	assert.Equal(t, 0, w.Player().Player.Gold)
}

func TestGoodieLifetime(t *testing.T) {
	tests := []struct{ level, want int }{{0, 300}, {1, 290}, {20, 100}, {30, 100}}
	for _, tt := range tests {
		if got := GoodieLifetime(tt.level); got != tt.want {
			t.Errorf("GoodieLifetime(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
