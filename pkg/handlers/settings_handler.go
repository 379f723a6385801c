package handlers

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/backsoul/gamebot/pkg/locale"
	"github.com/backsoul/gamebot/pkg/models"
	"github.com/backsoul/gamebot/pkg/storage"
	"github.com/valyala/fasthttp"
)

// SettingsHandler maneja la configuración del bot y de los juegos
// desde el dashboard
type SettingsHandler struct {
	store       storage.Storage
	catalog     *locale.Catalog
	catalogPath string
}

func NewSettingsHandler(store storage.Storage, catalog *locale.Catalog, catalogPath string) *SettingsHandler {
	return &SettingsHandler{
		store:       store,
		catalog:     catalog,
		catalogPath: catalogPath,
	}
}

// GetBotSettings maneja GET /api/bot/settings
func (h *SettingsHandler) GetBotSettings(ctx *fasthttp.RequestCtx) {
	settings, err := h.store.GetBotSettings()
	if err != nil {
		respondWithError(ctx, fasthttp.StatusInternalServerError, fmt.Sprintf("Error obteniendo configuración: %v", err))
		return
	}
	respondWithSuccess(ctx, settings, "Configuración obtenida exitosamente")
}

// UpdateBotSettings maneja POST /api/bot/settings
func (h *SettingsHandler) UpdateBotSettings(ctx *fasthttp.RequestCtx) {
	var settings models.BotSettings
	if err := json.Unmarshal(ctx.PostBody(), &settings); err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, "Configuración inválida")
		return
	}

	updated, err := h.store.UpdateBotSettings(&settings)
	if err != nil {
		respondWithError(ctx, fasthttp.StatusInternalServerError, fmt.Sprintf("Error actualizando configuración: %v", err))
		return
	}

	log.Println("⚙️  Configuración del bot actualizada desde el dashboard")
	respondWithSuccess(ctx, updated, "Configuración actualizada exitosamente")
}

// GetGameSettings maneja GET /api/games/settings
func (h *SettingsHandler) GetGameSettings(ctx *fasthttp.RequestCtx) {
	settings, err := h.store.GetGameSettings()
	if err != nil {
		respondWithError(ctx, fasthttp.StatusInternalServerError, fmt.Sprintf("Error obteniendo juegos: %v", err))
		return
	}
	respondWithSuccess(ctx, settings, "Juegos obtenidos exitosamente")
}

// ToggleGame maneja PATCH /api/games/{gameName}/toggle
func (h *SettingsHandler) ToggleGame(ctx *fasthttp.RequestCtx) {
	gameName := ctx.UserValue("gameName").(string)

	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.Unmarshal(ctx.PostBody(), &body); err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, "Cuerpo inválido")
		return
	}

	updated, err := h.store.UpdateGameSetting(models.GameKind(gameName), body.Enabled)
	if err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("Error actualizando juego: %v", err))
		return
	}

	log.Printf("🎛️  Juego %s %s desde el dashboard", gameName, enabledText(body.Enabled))
	respondWithSuccess(ctx, updated, "Juego actualizado exitosamente")
}

// ReloadCatalog maneja POST /api/catalog/reload
func (h *SettingsHandler) ReloadCatalog(ctx *fasthttp.RequestCtx) {
	if err := h.catalog.LoadFromFile(h.catalogPath); err != nil {
		respondWithError(ctx, fasthttp.StatusInternalServerError, fmt.Sprintf("Error recargando catálogo: %v", err))
		return
	}
	respondWithSuccess(ctx, nil, "Catálogo recargado exitosamente")
}

func enabledText(enabled bool) string {
	if enabled {
		return "habilitado"
	}
	return "deshabilitado"
}
