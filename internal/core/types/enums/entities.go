package enums

import "strings"

// EntityKind — вид объекта на поле. Диспетчеризация поведения идет по нему.
type EntityKind uint8

const (
	EntityUnknown EntityKind = iota
	EntityTerrain
	EntityPlayer
	EntityBoulder
	EntityBarrel
	EntityGold
	EntityWater
	EntitySonar
	EntitySquirt
	EntityRegularProtester
	EntityHardcoreProtester
)

var entityKindToString = map[EntityKind]string{
	EntityTerrain:           "TERRAIN",
	EntityPlayer:            "PLAYER",
	EntityBoulder:           "BOULDER",
	EntityBarrel:            "BARREL",
	EntityGold:              "GOLD",
	EntityWater:             "WATER",
	EntitySonar:             "SONAR",
	EntitySquirt:            "SQUIRT",
	EntityRegularProtester:  "PROTESTER",
	EntityHardcoreProtester: "HARDCORE_PROTESTER",
}

var entityKindStringToType = map[string]EntityKind{
	"TERRAIN":            EntityTerrain,
	"PLAYER":             EntityPlayer,
	"BOULDER":            EntityBoulder,
	"BARREL":             EntityBarrel,
	"GOLD":               EntityGold,
	"WATER":              EntityWater,
	"SONAR":              EntitySonar,
	"SQUIRT":             EntitySquirt,
	"PROTESTER":          EntityRegularProtester,
	"HARDCORE_PROTESTER": EntityHardcoreProtester,
}

// String возвращает строковое представление (для логов и дебага)
func (k EntityKind) String() string {
	if val, ok := entityKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind конвертирует строку в Enum (нужно для отладочных фильтров)
func ParseEntityKind(s string) EntityKind {
	upper := strings.ToUpper(s)
	if val, ok := entityKindStringToType[upper]; ok {
		return val
	}
	return EntityUnknown
}

// IsProtester — оба подвида протестующих.
func (k EntityKind) IsProtester() bool {
	return k == EntityRegularProtester || k == EntityHardcoreProtester
}

// IsPickup — предметы, которые можно подобрать.
func (k EntityKind) IsPickup() bool {
	switch k {
	case EntityBarrel, EntityGold, EntityWater, EntitySonar:
		return true
	}
	return false
}

// Depth — порядок отрисовки: меньше значит ближе к зрителю.
func (k EntityKind) Depth() int {
	switch k {
	case EntityPlayer, EntityRegularProtester, EntityHardcoreProtester:
		return 0
	case EntityBoulder, EntitySquirt:
		return 1
	case EntityBarrel, EntityGold, EntityWater, EntitySonar:
		return 2
	case EntityTerrain:
		return 3
	}
	return 4
}
