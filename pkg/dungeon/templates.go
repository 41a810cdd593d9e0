package dungeon

import (
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
)

// PlacementTemplate — правило размещения одного вида объектов при заселении уровня.
// Диапазоны якоря включительные.
type PlacementTemplate struct {
	Name string
	Kind enums.EntityKind

	MinX, MaxX int
	MinY, MaxY int

	// AvoidShaft — не ставить у центральной шахты.
	AvoidShaft bool

	// Count — сколько штук на данном уровне.
	Count func(level int) int
}

// SpawnEntity создает сущность по шаблону в заданной точке.
func (t PlacementTemplate) SpawnEntity(pos domain.Position) *domain.Entity {
	switch t.Kind {
	case enums.EntityBoulder:
		return domain.NewBoulder(pos)
	default:
		return domain.NewHiddenPickup(t.Kind, pos)
	}
}

// --- ШАБЛОНЫ ---

var Boulder = PlacementTemplate{
	Name:       "boulder",
	Kind:       enums.EntityBoulder,
	MinX:       1,
	MaxX:       54,
	MinY:       20,
	MaxY:       54,
	AvoidShaft: true,
	Count:      BoulderCount,
}

var Barrel = PlacementTemplate{
	Name:  "barrel",
	Kind:  enums.EntityBarrel,
	MinX:  0,
	MaxX:  60,
	MinY:  0,
	MaxY:  55,
	Count: BarrelCount,
}

var Gold = PlacementTemplate{
	Name:  "gold",
	Kind:  enums.EntityGold,
	MinX:  0,
	MaxX:  59,
	MinY:  0,
	MaxY:  55,
	Count: GoldCount,
}

// PlacementTemplates — шаблоны по имени (для отладочных ручек).
var PlacementTemplates = map[string]PlacementTemplate{
	Boulder.Name: Boulder,
	Barrel.Name:  Barrel,
	Gold.Name:    Gold,
}

func BoulderCount(level int) int {
	return min(level/2+2, 9)
}

func BarrelCount(level int) int {
	return min(21, 2+level)
}

func GoldCount(level int) int {
	return max(2, 5-level/2)
}

// nearShaft — зона вокруг шахты, где валунам не место.
func nearShaft(p domain.Position) bool {
	return p.X >= 26 && p.X <= 34 && p.Y >= 4
}
