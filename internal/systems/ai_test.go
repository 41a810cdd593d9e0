package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
)

func TestTickProtester_RestThrottle(t *testing.T) {
	w, _ := newTestWorld(1) // отдых 3 тика
	p := w.Get(w.Spawn(domain.NewProtester(enums.EntityRegularProtester, 10)))

	TickProtester(p, w)
	require.Equal(t, 59, p.Pos.X, "acts on the very first tick")

	for i := 0; i < 3; i++ {
		TickProtester(p, w)
		assert.Equal(t, 59, p.Pos.X, "resting tick %d", i+1)
	}

	TickProtester(p, w)
	assert.Equal(t, 58, p.Pos.X)
}

func TestTickProtester_Shout(t *testing.T) {
	w, q := newTestWorld(12) // без отдыха
	pl := w.Player()
	p := spawnAt(w, domain.NewProtester(enums.EntityRegularProtester, 10), 34, 60)

	TickProtester(p, w)
	assert.Equal(t, 8, pl.Player.HP)
	assert.Equal(t, []enums.Sound{enums.SoundProtesterYell}, q.DrainSounds())
	assert.Equal(t, 34, p.Pos.X, "shouting protester does not move")

	for i := 0; i < domain.ShoutCooldown; i++ {
		TickProtester(p, w)
	}
	assert.Equal(t, 8, pl.Player.HP, "cooldown not over yet")

	TickProtester(p, w)
	assert.Equal(t, 6, pl.Player.HP)
}

func TestTickProtester_TurnsBeforeShouting(t *testing.T) {
	w, _ := newTestWorld(12)
	pl := w.Player()
	p := spawnAt(w, domain.NewProtester(enums.EntityRegularProtester, 10), 34, 60)
	p.Facing = enums.DirRight

	TickProtester(p, w)
	assert.Equal(t, enums.DirLeft, p.Facing)
	assert.Equal(t, 33, p.Pos.X)
	assert.Equal(t, domain.PlayerStartHP, pl.Player.HP)
	assert.Equal(t, 0, p.Protester.StepBudget)

	TickProtester(p, w)
	assert.Equal(t, domain.PlayerStartHP-domain.ShoutDamage, pl.Player.HP)
}

func TestTickProtester_HardcoreUsesPathfinder(t *testing.T) {
	w, _ := newTestWorld(2)
	p := spawnAt(w, domain.NewProtester(enums.EntityHardcoreProtester, 10), 40, 50)

	TickProtester(p, w)
	assert.Equal(t, domain.Position{X: 40, Y: 51}, p.Pos)
	assert.Equal(t, enums.DirUp, p.Facing)
}

func TestTickProtester_HardcoreOutOfRangeWanders(t *testing.T) {
	w, _ := newTestWorld(1)
	// 19 шагов до игрока, а чует только на 18
	p := spawnAt(w, domain.NewProtester(enums.EntityHardcoreProtester, 10), 40, 50)

	TickProtester(p, w)
	assert.Equal(t, domain.Position{X: 39, Y: 50}, p.Pos, "keeps wandering left")
	assert.Equal(t, 9, p.Protester.StepBudget)
}

func TestTickProtester_BlockedHeadingResetsBudget(t *testing.T) {
	w, _ := newTestWorld(12)
	fillRect(w, 46, 40, 49, 43)
	p := spawnAt(w, domain.NewProtester(enums.EntityRegularProtester, 10), 50, 40)

	TickProtester(p, w)
	assert.Equal(t, domain.Position{X: 50, Y: 40}, p.Pos)
	assert.Equal(t, 0, p.Protester.StepBudget)

	// Следующий тик выбирает новое проходимое направление
	TickProtester(p, w)
	assert.NotEqual(t, enums.DirLeft, p.Facing)
	assert.GreaterOrEqual(t, p.Protester.StepBudget, domain.MinStepBudget-1)
	assert.NotEqual(t, domain.Position{X: 50, Y: 40}, p.Pos)
}

func TestTickProtester_ForcedTurn(t *testing.T) {
	w, _ := newTestWorld(12)
	p := spawnAt(w, domain.NewProtester(enums.EntityRegularProtester, 10), 50, 40)
	p.Protester.TicksSinceTurn = domain.ForcedTurnTicks

	TickProtester(p, w)
	assert.True(t, p.Facing.IsVertical(), "forced perpendicular turn, got %v", p.Facing)
	assert.Equal(t, 0, p.Protester.TicksSinceTurn)
	assert.Equal(t, 50, p.Pos.X)
	assert.Equal(t, 1, abs(p.Pos.Y-40))
}

func TestTickProtester_Exiting(t *testing.T) {
	w, _ := newTestWorld(1)
	p := spawnAt(w, domain.NewProtester(enums.EntityRegularProtester, 10), 58, 60)
	p.Protester.State = enums.ProtesterExiting
	p.Protester.RestCounter = -100 // уходящих не тормозит даже оглушение

	TickProtester(p, w)
	TickProtester(p, w)
	require.Equal(t, domain.EntryPoint, p.Pos)
	assert.True(t, p.Alive)

	TickProtester(p, w)
	assert.False(t, p.Alive)
}

func TestTickProtester_StunnedStaysPut(t *testing.T) {
	w, _ := newTestWorld(1)
	p := w.Get(w.Spawn(domain.NewProtester(enums.EntityRegularProtester, 10)))
	Annoy(p, domain.SquirtDamage, w)

	for i := 0; i < StunTicks(1); i++ {
		TickProtester(p, w)
	}
	assert.Equal(t, domain.EntryPoint, p.Pos)

	TickProtester(p, w)
	assert.Equal(t, 59, p.Pos.X, "acts again once the stun is over")
}

func TestTickProtester_OnTopOfPlayerKeepsHeading(t *testing.T) {
	w, _ := newTestWorld(12) // без отдыха
	pl := w.Player()
	p := spawnAt(w, domain.NewProtester(enums.EntityRegularProtester, 10), pl.Pos.X, pl.Pos.Y)

	TickProtester(p, w)
	assert.Equal(t, enums.DirLeft, p.Facing)
	assert.Equal(t, pl.Pos.X-1, p.Pos.X, "steps along the current heading")

	for i := 0; i < 5; i++ {
		TickProtester(p, w)
		require.NotEqual(t, enums.DirNone, p.Facing, "tick %d", i+2)
	}
}

func TestHasStraightLineTo(t *testing.T) {
	w, _ := newTestWorld(1)
	from := domain.Position{X: 50, Y: 40}

	assert.True(t, HasStraightLineTo(from, domain.Position{X: 20, Y: 40}, w))
	assert.True(t, HasStraightLineTo(from, domain.Position{X: 50, Y: 10}, w))
	assert.False(t, HasStraightLineTo(from, domain.Position{X: 20, Y: 41}, w), "not aligned")

	fillRect(w, 30, 40, 30, 40)
	assert.False(t, HasStraightLineTo(from, domain.Position{X: 20, Y: 40}, w))

	spawnAt(w, domain.NewBoulder(domain.Position{}), 50, 25)
	assert.False(t, HasStraightLineTo(from, domain.Position{X: 50, Y: 10}, w))
}

func TestFacePlayer(t *testing.T) {
	from := domain.Position{X: 10, Y: 10}
	tests := []struct {
		to   domain.Position
		want enums.Direction
	}{
		{domain.Position{X: 20, Y: 10}, enums.DirRight},
		{domain.Position{X: 0, Y: 10}, enums.DirLeft},
		{domain.Position{X: 20, Y: 0}, enums.DirDown},
		{domain.Position{X: 0, Y: 20}, enums.DirUp},
		{from, enums.DirLeft},
	}
	for _, tt := range tests {
		if got := facePlayer(enums.DirLeft, from, tt.to); got != tt.want {
			t.Errorf("facePlayer(%v) = %v, want %v", tt.to, got, tt.want)
		}
	}
}

func TestRestTicks(t *testing.T) {
	tests := []struct{ level, want int }{{0, 3}, {3, 3}, {4, 2}, {8, 1}, {12, 0}, {20, 0}}
	for _, tt := range tests {
		if got := RestTicks(tt.level); got != tt.want {
			t.Errorf("RestTicks(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
