package engine

import (
	"tunnel-server/internal/domain"
	"tunnel-server/pkg/dungeon"
)

// PopulateLevel заполняет пустой мир: грунт, валуны, бочки, золото, игрок.
// Количество объектов зависит от номера уровня, позиции - от генератора мира.
func PopulateLevel(w *domain.World) *domain.World {
	return dungeon.Populate(w)
}
