package engine

import (
	"tunnel-server/internal/core/types"
	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/pkg/api"
)

// publishUpdate рассылает актуальный снимок всем подписчикам.
// Логи и звуки уходят ровно один раз: после рассылки буферы очищаются.
func (s *GameService) publishUpdate() {
	s.mu.Lock()
	state := s.buildState()
	state.Logs = s.logs
	s.logs = []api.LogEntry{}
	s.mu.Unlock()

	for _, snd := range s.queue.DrainSounds() {
		state.Sounds = append(state.Sounds, snd.String())
	}

	s.Hub.Broadcast(*state)
}

// Snapshot - снимок текущего уровня без побочных эффектов (INIT, отладка).
func (s *GameService) Snapshot() api.ServerResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.buildState()
}

// buildState собирает снимок. Вызывается под замком.
func (s *GameService) buildState() *api.ServerResponse {
	l := s.level
	w := l.World

	msgType := "UPDATE"
	if s.over {
		msgType = "GAME_OVER"
	}

	resp := &api.ServerResponse{
		Type:    msgType,
		Tick:    w.GlobalTick,
		Round:   l.Round,
		Grid:    &api.GridMeta{Width: domain.FieldWidth, Height: domain.FieldHeight, UnitSize: domain.UnitSize},
		Terrain: w.Terrain.Rows(),
		Status:  l.StatusText(),
		Progress: &api.ProgressView{
			Score:       s.Progress.Score,
			Lives:       s.Progress.Lives,
			Level:       s.Progress.Level,
			BarrelsLeft: l.BarrelsLeft(),
			GameOver:    s.over,
		},
	}

	if p := w.Player(); p != nil {
		resp.MyEntityID = p.ID.String()
	}

	// Скрытые объекты клиенту не отдаем
	for _, e := range w.Entities() {
		if !e.Visible || !e.Alive {
			continue
		}
		resp.Entities = append(resp.Entities, toEntityView(e))
	}

	return resp
}

// toEntityView конвертирует доменную сущность в DTO для отправки клиенту.
func toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   e.ID.String(),
		Kind: e.Kind.String(),
	}
	if e.Facing != enums.DirNone {
		view.Facing = e.Facing.String()
	}
	view.Pos.X = e.Pos.X
	view.Pos.Y = e.Pos.Y

	g := types.GlyphFor(e.Kind)
	view.Render.Symbol = string(g.Char())
	view.Render.Color = g.HexColor()
	view.Render.Depth = e.Depth()

	switch {
	case e.Boulder != nil:
		view.State = e.Boulder.State.String()
	case e.Protester != nil:
		view.State = e.Protester.State.String()
	case e.Player != nil:
		view.Stats = &api.StatsView{
			HP:           e.Player.HP,
			Water:        e.Player.Water,
			Sonar:        e.Player.Sonar,
			Gold:         e.Player.Gold,
			BarrelsFound: e.Player.BarrelsFound,
		}
	}

	return view
}
