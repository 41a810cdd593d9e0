package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
)

func TestBuildDistanceField_OpenField(t *testing.T) {
	w, _ := newTestWorld(1)
	f := BuildDistanceField(w, domain.EntryPoint)

	assert.Equal(t, 0, f.At(domain.EntryPoint))
	assert.Equal(t, 1, f.At(domain.Position{X: 59, Y: 60}))
	assert.Equal(t, 10, f.At(domain.Position{X: 55, Y: 55}))
	assert.Equal(t, domain.Unreachable, f.At(domain.Position{X: 61, Y: 60}), "anchor outside the field")
	assert.Equal(t, domain.Unreachable, f.At(domain.Position{X: -1, Y: 0}))
}

func TestBuildDistanceField_WallsOffRegion(t *testing.T) {
	w, _ := newTestWorld(1)
	// Горизонтальная стена грунта через все поле
	fillRect(w, 0, 30, 63, 33)

	f := BuildDistanceField(w, domain.Position{X: 10, Y: 50})
	assert.Equal(t, domain.Unreachable, f.At(domain.Position{X: 10, Y: 10}))
	assert.Less(t, f.At(domain.Position{X: 10, Y: 40}), domain.Unreachable)
}

func TestBestDirectionToward(t *testing.T) {
	w, _ := newTestWorld(1)
	e := &domain.Entity{Kind: enums.EntityRegularProtester, Pos: domain.Position{X: 50, Y: 60}}

	d, ok := BestDirectionToward(w, e, domain.EntryPoint)
	require.True(t, ok)
	assert.Equal(t, enums.DirRight, d)

	e.Pos = domain.Position{X: 60, Y: 50}
	d, ok = BestDirectionToward(w, e, domain.EntryPoint)
	require.True(t, ok)
	assert.Equal(t, enums.DirUp, d)
}

func TestBestDirectionToward_TieGoesToFirstInOrder(t *testing.T) {
	w, _ := newTestWorld(1)
	e := &domain.Entity{Kind: enums.EntityRegularProtester, Pos: domain.Position{X: 50, Y: 50}}

	// Цель по диагонали: up и right одинаково хороши, up проверяется первым
	d, ok := BestDirectionToward(w, e, domain.EntryPoint)
	require.True(t, ok)
	assert.Equal(t, enums.DirUp, d)
}

func TestBestDirectionToward_Unreachable(t *testing.T) {
	w, _ := newTestWorld(1)
	fillRect(w, 0, 30, 63, 33)
	e := &domain.Entity{Kind: enums.EntityRegularProtester, Pos: domain.Position{X: 10, Y: 10}}

	_, ok := BestDirectionToward(w, e, domain.EntryPoint)
	assert.False(t, ok)
}

func TestBestDirectionToward_AvoidsBoulder(t *testing.T) {
	w, _ := newTestWorld(1)
	// Коридор в грунте: стена снизу и сверху, валун посередине перекрывает путь вправо
	fillRect(w, 0, 0, 63, 49)
	fillRect(w, 0, 55, 63, 63)
	spawnAt(w, domain.NewBoulder(domain.Position{}), 30, 51)

	e := &domain.Entity{Kind: enums.EntityRegularProtester, Pos: domain.Position{X: 20, Y: 50}}
	_, ok := BestDirectionToward(w, e, domain.Position{X: 50, Y: 50})
	assert.False(t, ok, "the corridor is fully blocked by the boulder")
}

func TestIsWithinNMoves(t *testing.T) {
	w, _ := newTestWorld(1)
	pl := w.Player()
	pl.Pos = domain.Position{X: 40, Y: 60}
	e := &domain.Entity{Kind: enums.EntityHardcoreProtester, Pos: domain.EntryPoint}

	// Сосед (59,60) в 19 шагах от игрока
	assert.True(t, IsWithinNMoves(w, e, 20))
	assert.False(t, IsWithinNMoves(w, e, 19))
}
