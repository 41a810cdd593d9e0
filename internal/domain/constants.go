package domain

// Геометрия поля
const (
	FieldWidth  = 64
	FieldHeight = 64
	UnitSize    = 4 // сторона квадрата любой сущности в тайлах
)

// Unreachable — "бесконечность" для поля расстояний BFS.
const Unreachable = FieldWidth * FieldHeight

// Стартовые позиции
var (
	PlayerStart = Position{X: 30, Y: 60}
	EntryPoint  = Position{X: 60, Y: 60}
	SonarSpawn  = Position{X: 0, Y: 60}
)

// Игрок
const (
	PlayerStartHP     = 10
	PlayerStartWater  = 5
	PlayerStartSonar  = 1
	SonarRadius       = 12
	DroppedGoldLife   = 100
	WaterRefillAmount = 5
	GiveUpDamage      = 100
)

// Радиусы (евклидовы, между якорями)
const (
	RevealRadius     = 4.0
	CollectRadius    = 3.0
	BoulderRadius    = 3.0
	SmashRadius      = 4.0
	ShoutRadius      = 4.0
	SquirtHitRadius  = 3.0
	BribeRadius      = 3.0
	PlacementSpacing = 6.0
)

// Валун
const (
	BoulderDwellTicks = 30
	BoulderDamage     = 100
)

// Струя
const (
	SquirtTravel = 4
	SquirtDamage = 2
)

// Протестующие
const (
	RegularProtesterHP  = 5
	HardcoreProtesterHP = 20
	MinStepBudget       = 8
	MaxStepBudget       = 60
	ShoutCooldown       = 15
	ShoutDamage         = 2
	ForcedTurnTicks     = 200
	// Стартовые значения счетчиков: первый тик сразу активен, крик доступен сразу.
	PrimedRestCounter  = 1000
	PrimedShoutCounter = 1000
)

// Очки
const (
	ScoreBarrel            = 1000
	ScoreWater             = 100
	ScoreSonar             = 75
	ScoreGold              = 10
	ScoreSquirtRegular     = 100
	ScoreSquirtHardcore    = 250
	ScoreBoulderKill       = 500
	ScoreBribeRegular      = 25
	ScoreBribeHardcore     = 50
	PlayerStartLives       = 3
	StatusHealthMultiplier = 10
)

// Ограничения случайных циклов
const (
	MaxPlacementAttempts = 1000
	MaxDirectionRolls    = 64
)
