package main

import (
	"encoding/json"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/pkg/api"

	"github.com/gdamore/tcell/v2"
)

// keyAction - во что превращается нажатие.
type keyAction struct {
	cmd  api.ClientCommand
	ok   bool
	quit bool
}

var arrowDirections = map[tcell.Key]enums.Direction{
	tcell.KeyUp:    enums.DirUp,
	tcell.KeyDown:  enums.DirDown,
	tcell.KeyLeft:  enums.DirLeft,
	tcell.KeyRight: enums.DirRight,
}

// vi-раскладка для тех, у кого нет стрелок
var runeDirections = map[rune]enums.Direction{
	'k': enums.DirUp,
	'j': enums.DirDown,
	'h': enums.DirLeft,
	'l': enums.DirRight,
}

// translateKey: стрелки - ход, пробел - водомет, z - сонар, tab - золото, esc - сдаться, q - выход.
func translateKey(ev *tcell.EventKey) keyAction {
	if d, ok := arrowDirections[ev.Key()]; ok {
		return keyAction{cmd: moveCommand(d), ok: true}
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return keyAction{quit: true}
	case tcell.KeyTab:
		return action(domain.ActionDropGold)
	case tcell.KeyEscape:
		return action(domain.ActionGiveUp)
	case tcell.KeyRune:
	default:
		return keyAction{}
	}

	r := ev.Rune()
	if d, ok := runeDirections[r]; ok {
		return keyAction{cmd: moveCommand(d), ok: true}
	}
	switch r {
	case ' ':
		return action(domain.ActionSquirt)
	case 'z', 'Z':
		return action(domain.ActionSonar)
	case 'q', 'Q':
		return keyAction{quit: true}
	}
	return keyAction{}
}

func action(a domain.ActionType) keyAction {
	return keyAction{cmd: api.ClientCommand{Action: a.String()}, ok: true}
}

func moveCommand(d enums.Direction) api.ClientCommand {
	payload, _ := json.Marshal(api.DirectionPayload{Direction: d.String()})
	return api.ClientCommand{Action: domain.ActionMove.String(), Payload: payload}
}
