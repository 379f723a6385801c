package handlers

import (
	"fmt"
	"log"
	"sync"

	"github.com/backsoul/gamebot/pkg/models"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/valyala/fasthttp"
)

// TransportHandler administra el emparejamiento con el canal de
// mensajería externo: emite un token de vinculación y lo sirve como QR
// para escanear desde el dispositivo, igual que el flujo de conexión de
// un bot de WhatsApp
type TransportHandler struct {
	mu           sync.Mutex
	connected    bool
	pairedID     string
	pairingToken string
}

func NewTransportHandler() *TransportHandler {
	return &TransportHandler{}
}

// Status maneja GET /api/transport/status
func (h *TransportHandler) Status(ctx *fasthttp.RequestCtx) {
	h.mu.Lock()
	status := models.TransportStatus{
		IsConnected: h.connected,
		HasQR:       h.pairingToken != "",
		PairedID:    h.pairedID,
	}
	h.mu.Unlock()

	respondWithSuccess(ctx, status, "Estado obtenido exitosamente")
}

// Connect maneja POST /api/transport/connect: genera un token de
// vinculación nuevo y lo deja disponible como QR
func (h *TransportHandler) Connect(ctx *fasthttp.RequestCtx) {
	h.mu.Lock()
	if h.connected {
		h.mu.Unlock()
		respondWithError(ctx, fasthttp.StatusBadRequest, "El canal ya está conectado")
		return
	}
	h.pairingToken = uuid.New().String()
	h.mu.Unlock()

	log.Println("🔗 Token de vinculación generado, esperando escaneo del QR")
	respondWithSuccess(ctx, nil, "Vinculación iniciada, escanee el código QR")
}

// CompletePairing maneja POST /api/transport/pair: el dispositivo
// confirma el token escaneado y queda vinculado
func (h *TransportHandler) CompletePairing(ctx *fasthttp.RequestCtx) {
	token := string(ctx.PostArgs().Peek("token"))
	pairedID := string(ctx.PostArgs().Peek("deviceId"))

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pairingToken == "" || token != h.pairingToken {
		respondWithError(ctx, fasthttp.StatusBadRequest, "Token de vinculación inválido")
		return
	}

	h.connected = true
	h.pairedID = pairedID
	h.pairingToken = ""

	log.Printf("✅ Canal de mensajería vinculado: %s", pairedID)
	respondWithSuccess(ctx, nil, "Canal vinculado exitosamente")
}

// Disconnect maneja POST /api/transport/disconnect
func (h *TransportHandler) Disconnect(ctx *fasthttp.RequestCtx) {
	h.mu.Lock()
	h.connected = false
	h.pairedID = ""
	h.pairingToken = ""
	h.mu.Unlock()

	log.Println("🔌 Canal de mensajería desconectado")
	respondWithSuccess(ctx, nil, "Canal desconectado")
}

// QRCode maneja GET /api/transport/qr: devuelve el token de
// vinculación vigente como imagen PNG
func (h *TransportHandler) QRCode(ctx *fasthttp.RequestCtx) {
	h.mu.Lock()
	token := h.pairingToken
	h.mu.Unlock()

	if token == "" {
		respondWithError(ctx, fasthttp.StatusNotFound, "No hay código QR disponible")
		return
	}

	png, err := qrcode.Encode(token, qrcode.Medium, 256)
	if err != nil {
		respondWithError(ctx, fasthttp.StatusInternalServerError, fmt.Sprintf("Error generando QR: %v", err))
		return
	}

	ctx.Response.Header.Set("Content-Type", "image/png")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(png)
}
