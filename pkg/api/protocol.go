package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Представляет полный "снимок" уровня после очередного тика.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "GAME_OVER".
	Type string `json:"type"`

	// Tick номер тика внутри текущего уровня.
	Tick int `json:"tick"`

	// Round порядковый номер запуска уровня в партии (растет и при повторе уровня).
	Round int `json:"round"`

	// MyEntityID ID сущности игрока.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Grid метаданные о размере поля.
	Grid *GridMeta `json:"grid,omitempty"`

	// Terrain строки грунта сверху вниз: '#' - грунт, '.' - пусто.
	Terrain []string `json:"terrain,omitempty"`

	// Entities срез видимых сущностей.
	Entities []EntityView `json:"entities,omitempty"`

	// Status строка статуса в том же виде, что и на экране.
	Status string `json:"status"`

	Progress *ProgressView `json:"progress,omitempty"`

	// Sounds звуки, сыгранные с прошлого снимка.
	Sounds []string `json:"sounds,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого снимка.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит размеры поля и размер спрайта.
type GridMeta struct {
	Width    int `json:"w"`
	Height   int `json:"h"`
	UnitSize int `json:"unit"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"` // PLAYER, BOULDER, BARREL, PROTESTER...
	Facing string `json:"facing,omitempty"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
		Depth  int    `json:"depth"`
	} `json:"render"`

	// State состояние автомата (валун, протестующий).
	State string `json:"state,omitempty"`

	// Stats есть только у игрока.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для запасов игрока.
type StatsView struct {
	HP           int `json:"hp"`
	Water        int `json:"water"`
	Sonar        int `json:"sonar"`
	Gold         int `json:"gold"`
	BarrelsFound int `json:"barrelsFound"`
}

// ProgressView то, что переживает смену уровня.
type ProgressView struct {
	Score       int  `json:"score"`
	Lives       int  `json:"lives"`
	Level       int  `json:"level"`
	BarrelsLeft int  `json:"barrelsLeft"`
	GameOver    bool `json:"gameOver,omitempty"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сессии. Проставляется сервером, клиентский игнорируется.
	Token string `json:"token,omitempty"`

	// Action название действия: MOVE, SQUIRT, SONAR, DROP_GOLD, GIVE_UP, INIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE.
type DirectionPayload struct {
	Direction string `json:"direction"` // UP, DOWN, LEFT, RIGHT
}

// RefillPayload используется отладочной командой ADMIN_REFILL.
type RefillPayload struct {
	Water int `json:"water"`
	Sonar int `json:"sonar"`
	Gold  int `json:"gold"`
}

// SpawnPayload используется отладочной командой ADMIN_SPAWN.
type SpawnPayload struct {
	Template string `json:"template"` // boulder, barrel, gold
}
