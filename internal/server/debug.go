package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/terrain", h.handleTerrain)
	mux.HandleFunc("/debug/status", h.handleStatus)
}

// /debug/entities?kind=protester - дамп сущностей уровня, включая скрытые и внутренние счетчики
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	filter := enums.EntityUnknown
	if k := r.URL.Query().Get("kind"); k != "" {
		filter = enums.ParseEntityKind(k)
		if filter == enums.EntityUnknown {
			http.Error(w, "unknown kind", http.StatusBadRequest)
			return
		}
	}

	// Компоненты - указатели в живой мир, поэтому сериализуем под замком
	var body []byte
	var err error
	h.Service.WithLevel(func(l *engine.Level) {
		dump := make([]*domain.Entity, 0, l.World.Len())
		for _, e := range l.World.Entities() {
			if filter != enums.EntityUnknown && e.Kind != filter {
				continue
			}
			dump = append(dump, e)
		}
		body, err = json.Marshal(dump)
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// /debug/terrain - грунт текстом, верхняя строка поля первой
func (h *DebugHandler) handleTerrain(w http.ResponseWriter, r *http.Request) {
	var rows []string
	h.Service.WithLevel(func(l *engine.Level) {
		rows = l.World.Terrain.Rows()
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(strings.Join(rows, "\n") + "\n"))
}

// /debug/status - сводка партии
func (h *DebugHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	type StatusView struct {
		Status          string `json:"status"`
		Round           int    `json:"round"`
		Tick            int    `json:"tick"`
		Seed            int64  `json:"seed"`
		Entities        int    `json:"entities"`
		Protesters      int    `json:"protesters"`
		BarrelsRequired int    `json:"barrels_required"`
		BarrelsLeft     int    `json:"barrels_left"`
		Pending         int    `json:"pending_commands"`
		Subscribers     int    `json:"subscribers"`
		Replay          bool   `json:"replay"`
		Over            bool   `json:"over"`
	}

	var view StatusView
	h.Service.WithLevel(func(l *engine.Level) {
		view = StatusView{
			Status:          l.StatusText(),
			Round:           l.Round,
			Tick:            l.World.GlobalTick,
			Seed:            l.Seed,
			Entities:        l.World.Len(),
			Protesters:      l.World.CountProtesters(),
			BarrelsRequired: l.World.BarrelsRequired,
			BarrelsLeft:     l.BarrelsLeft(),
		}
	})
	view.Pending = h.Service.PendingCommands()
	view.Subscribers = h.Service.Hub.SubscriberCount()
	view.Replay = h.Service.IsReplay()
	view.Over = h.Service.IsOver()

	writeJSON(w, view)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой список отдаем как [], а не null
	if data == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}

	_ = json.NewEncoder(w).Encode(data)
}
