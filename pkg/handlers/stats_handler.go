package handlers

import (
	"fmt"
	"strconv"

	"github.com/backsoul/gamebot/pkg/storage"
	"github.com/backsoul/gamebot/pkg/websocket"
	fasthttpws "github.com/fasthttp/websocket"
	"github.com/valyala/fasthttp"
)

// StatsHandler expone estadísticas, actividad y salud del servicio
type StatsHandler struct {
	store storage.Storage
	hub   *websocket.Hub
}

func NewStatsHandler(store storage.Storage, hub *websocket.Hub) *StatsHandler {
	return &StatsHandler{
		store: store,
		hub:   hub,
	}
}

var dashboardUpgrader = fasthttpws.FastHTTPUpgrader{
	CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
		return true // Permitir conexiones desde cualquier origen en desarrollo
	},
}

// HealthCheck maneja GET /api/health
func (h *StatsHandler) HealthCheck(ctx *fasthttp.RequestCtx) {
	if err := h.store.HealthCheck(); err != nil {
		respondWithError(ctx, fasthttp.StatusServiceUnavailable, fmt.Sprintf("Storage no disponible: %v", err))
		return
	}
	respondWithSuccess(ctx, map[string]string{"status": "ok"}, "Servicio funcionando")
}

// GetStats maneja GET /api/stats
func (h *StatsHandler) GetStats(ctx *fasthttp.RequestCtx) {
	stats, err := h.store.GetBotStats()
	if err != nil {
		respondWithError(ctx, fasthttp.StatusInternalServerError, fmt.Sprintf("Error obteniendo estadísticas: %v", err))
		return
	}
	respondWithSuccess(ctx, stats, "Estadísticas obtenidas exitosamente")
}

// GetActivity maneja GET /api/activity?limit=N
func (h *StatsHandler) GetActivity(ctx *fasthttp.RequestCtx) {
	limit := 0
	if raw := string(ctx.QueryArgs().Peek("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(ctx, fasthttp.StatusBadRequest, "Límite inválido")
			return
		}
		limit = parsed
	}

	entries, err := h.store.GetActivity(limit)
	if err != nil {
		respondWithError(ctx, fasthttp.StatusInternalServerError, fmt.Sprintf("Error obteniendo actividad: %v", err))
		return
	}
	respondWithSuccess(ctx, entries, "Actividad obtenida exitosamente")
}

// HandleDashboardWebSocket maneja /ws: el dashboard recibe eventos de
// actividad y estadísticas en vivo
func (h *StatsHandler) HandleDashboardWebSocket(ctx *fasthttp.RequestCtx) {
	err := dashboardUpgrader.Upgrade(ctx, func(ws *fasthttpws.Conn) {
		defer ws.Close()

		h.hub.Register(ws)
		defer h.hub.Unregister(ws)

		// Mantener la conexión leyendo hasta que el cliente corte
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	})

	if err != nil {
		ctx.Error("Error upgrading to WebSocket", fasthttp.StatusInternalServerError)
	}
}
