package handlers

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/backsoul/gamebot/pkg/models"
	"github.com/backsoul/gamebot/pkg/services"
	"github.com/fasthttp/websocket"
	"github.com/valyala/fasthttp"
)

// ChatHandler expone el motor de juegos al canal de mensajería: un
// endpoint HTTP para transportes que entregan por request y un
// WebSocket para la consola de chat del dashboard
type ChatHandler struct {
	engine *services.GameEngine
}

func NewChatHandler(engine *services.GameEngine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

var chatUpgrader = websocket.FastHTTPUpgrader{
	CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
		return true // Permitir conexiones desde cualquier origen en desarrollo
	},
}

// PostMessage maneja POST /api/chat/message
func (h *ChatHandler) PostMessage(ctx *fasthttp.RequestCtx) {
	var request models.ChatRequest
	if err := json.Unmarshal(ctx.PostBody(), &request); err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, "Cuerpo de mensaje inválido")
		return
	}

	request.UserID = strings.TrimSpace(request.UserID)
	if request.UserID == "" {
		respondWithError(ctx, fasthttp.StatusBadRequest, "userId es requerido")
		return
	}

	reply, err := h.engine.HandleMessage(request.UserID, request.Message)
	if err != nil {
		log.Printf("❌ Error procesando mensaje de %s: %v", request.UserID, err)
		respondWithError(ctx, fasthttp.StatusInternalServerError, "Error procesando mensaje")
		return
	}

	respondWithSuccess(ctx, models.ChatResponse{
		UserID: request.UserID,
		Reply:  reply,
	}, "Mensaje procesado")
}

// HandleChatWebSocket maneja /ws/chat?user=<id>: cada frame de texto
// entrante se despacha al motor y la respuesta vuelve por el mismo
// socket
func (h *ChatHandler) HandleChatWebSocket(ctx *fasthttp.RequestCtx) {
	userID := strings.TrimSpace(string(ctx.QueryArgs().Peek("user")))
	if userID == "" {
		respondWithError(ctx, fasthttp.StatusBadRequest, "Parámetro user es requerido")
		return
	}

	err := chatUpgrader.Upgrade(ctx, func(ws *websocket.Conn) {
		defer ws.Close()
		log.Printf("💬 Chat WebSocket abierto para %s", userID)

		for {
			_, message, err := ws.ReadMessage()
			if err != nil {
				log.Printf("💬 Chat WebSocket cerrado para %s: %v", userID, err)
				return
			}

			reply, err := h.engine.HandleMessage(userID, string(message))
			if err != nil {
				log.Printf("❌ Error procesando mensaje de %s: %v", userID, err)
				continue
			}
			if reply == "" {
				continue
			}
			if err := ws.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
				log.Printf("Error enviando respuesta WebSocket: %v", err)
				return
			}
		}
	})

	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		ctx.Error("Error upgrading to WebSocket", fasthttp.StatusInternalServerError)
	}
}
