package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionSquirt
	ActionSonar
	ActionDropGold
	ActionGiveUp

	// Отладочные (регистрируются только при включенных читах)
	ActionAdminReveal
	ActionAdminRefill
	ActionAdminHeal
	ActionAdminSpawn
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":      ActionInit,
	"MOVE":      ActionMove,
	"SQUIRT":    ActionSquirt,
	"SONAR":     ActionSonar,
	"DROP_GOLD": ActionDropGold,
	"GIVE_UP":   ActionGiveUp,

	"ADMIN_REVEAL": ActionAdminReveal,
	"ADMIN_REFILL": ActionAdminRefill,
	"ADMIN_HEAL":   ActionAdminHeal,
	"ADMIN_SPAWN":  ActionAdminSpawn,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:     "INIT",
	ActionMove:     "MOVE",
	ActionSquirt:   "SQUIRT",
	ActionSonar:    "SONAR",
	ActionDropGold: "DROP_GOLD",
	ActionGiveUp:   "GIVE_UP",

	ActionAdminReveal: "ADMIN_REVEAL",
	ActionAdminRefill: "ADMIN_REFILL",
	ActionAdminHeal:   "ADMIN_HEAL",
	ActionAdminSpawn:  "ADMIN_SPAWN",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// IsAdmin - отладочная команда, меняющая мир в обход записи
func (a ActionType) IsAdmin() bool {
	return a >= ActionAdminReveal && a <= ActionAdminSpawn
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
