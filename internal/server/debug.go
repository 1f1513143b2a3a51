package server

import (
	"encoding/json"
	"net/http"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/engine"
)

// DebugHandler открывает доступ к внутреннему состоянию движка.
// Только чтение; ручки предназначены для локальной отладки.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты.
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/zone", h.handleZone)
}

// /debug/state - снимок состояния, каким его видит клиент.
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Snapshot())
}

// /debug/entities - полный дамп сущностей, включая скрытые компоненты.
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	inst := h.Service.Instance()
	writeJSON(w, inst.Ctx.Entities)
}

// /debug/zone - метаданные текущей зоны.
func (h *DebugHandler) handleZone(w http.ResponseWriter, r *http.Request) {
	inst := h.Service.Instance()

	type ZoneSummary struct {
		Depth       int    `json:"depth"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		EntityCount int    `json:"entity_count"`
		Tick        int64  `json:"tick"`
		RunState    string `json:"run_state"`
	}

	writeJSON(w, ZoneSummary{
		Depth:       inst.Depth,
		Width:       inst.Zone.Width,
		Height:      inst.Zone.Height,
		EntityCount: len(inst.Ctx.Entities),
		Tick:        inst.Tick,
		RunState:    inst.RunState.String(),
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Локальный debug-клиент ходит с file:// - пускаем любой источник
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
