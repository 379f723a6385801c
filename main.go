package main

import (
	"log"
	"os"
	"strings"

	"github.com/backsoul/gamebot/pkg/handlers"
	"github.com/backsoul/gamebot/pkg/locale"
	"github.com/backsoul/gamebot/pkg/redis"
	"github.com/backsoul/gamebot/pkg/services"
	"github.com/backsoul/gamebot/pkg/storage"
	"github.com/backsoul/gamebot/pkg/websocket"
	"github.com/kelseyhightower/envconfig"
	"github.com/valyala/fasthttp"
)

// Config agrupa la configuración del servidor, leída de variables de
// entorno con el prefijo GAMEBOT
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"memory"`
	RedisAddr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB        int    `envconfig:"REDIS_DB" default:"0"`
	CatalogPath    string `envconfig:"CATALOG_PATH" default:"catalog.json"`
}

var (
	store            storage.Storage
	catalog          *locale.Catalog
	engine           *services.GameEngine
	chatHandler      *handlers.ChatHandler
	settingsHandler  *handlers.SettingsHandler
	statsHandler     *handlers.StatsHandler
	transportHandler *handlers.TransportHandler
	hub              *websocket.Hub
)

func main() {
	log.Println("🚀 Iniciando servidor GameBot")

	var cfg Config
	if err := envconfig.Process("gamebot", &cfg); err != nil {
		log.Fatalf("Error leyendo la configuración: %v", err)
	}

	initStorage(cfg)
	initServices(cfg)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Name:    "GameBot Server",
	}

	log.Println("🎮 Servidor GameBot iniciado")
	log.Printf("💬 API Chat: http://localhost:%s/api/chat/message", cfg.Port)
	log.Printf("📊 API Stats: http://localhost:%s/api/stats", cfg.Port)
	log.Printf("🔧 API Health: http://localhost:%s/api/health", cfg.Port)
	log.Println("🔄 Presiona Ctrl+C para detener el servidor")

	if err := server.ListenAndServe(":" + cfg.Port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}

func initStorage(cfg Config) {
	switch cfg.StorageBackend {
	case "redis":
		log.Printf("🔌 Conectando a Redis en %s...", cfg.RedisAddr)
		client := redis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		redisStore, err := storage.NewRedisStorage(client)
		if err != nil {
			log.Fatalf("Error inicializando el almacenamiento Redis: %v", err)
		}
		store = redisStore
	case "memory":
		log.Println("🧠 Usando almacenamiento en memoria")
		store = storage.NewMemoryStorage()
	default:
		log.Fatalf("Backend de almacenamiento desconocido: %s", cfg.StorageBackend)
	}
}

func initServices(cfg Config) {
	log.Println("⚙️  Inicializando servicios...")

	catalog = locale.NewCatalog()
	loadInitialCatalog(cfg.CatalogPath)

	hub = websocket.NewHub()
	go hub.Run()

	engine = services.NewGameEngine(store, catalog, hub)

	chatHandler = handlers.NewChatHandler(engine)
	settingsHandler = handlers.NewSettingsHandler(store, catalog, cfg.CatalogPath)
	statsHandler = handlers.NewStatsHandler(store, hub)
	transportHandler = handlers.NewTransportHandler()
}

func loadInitialCatalog(path string) {
	// El catálogo integrado ya trae los textos y las preguntas; el
	// archivo externo solo agrega o reemplaza secciones
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("📚 Sin catálogo externo (%s), usando el integrado", path)
		return
	}

	if err := catalog.LoadFromFile(path); err != nil {
		log.Printf("⚠️ Error cargando el catálogo %s: %v", path, err)
		log.Println("💡 El servidor continuará con el catálogo integrado. Puedes recargarlo usando POST /api/catalog/reload")
	} else {
		log.Printf("✅ Catálogo %s cargado exitosamente", path)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	// Log de la petición
	log.Printf("📡 %s %s", method, path)

	ctx.Response.Header.Set("Server", "GameBot-FastHTTP/1.0")
	ctx.Response.Header.Set("Cache-Control", "no-cache")

	// Headers CORS para desarrollo
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	// Manejar preflight requests
	if method == "OPTIONS" {
		ctx.SetStatusCode(fasthttp.StatusOK)
		return
	}

	// Enrutamiento
	switch {
	// API Routes - Health
	case path == "/api/health":
		statsHandler.HealthCheck(ctx)

	// API Routes - Chat
	case path == "/api/chat/message" && method == "POST":
		chatHandler.PostMessage(ctx)

	// API Routes - Bot Settings
	case path == "/api/bot/settings" && method == "GET":
		settingsHandler.GetBotSettings(ctx)
	case path == "/api/bot/settings" && method == "POST":
		settingsHandler.UpdateBotSettings(ctx)

	// API Routes - Games
	case path == "/api/games/settings" && method == "GET":
		settingsHandler.GetGameSettings(ctx)

	// API Routes - Stats y actividad
	case path == "/api/stats" && method == "GET":
		statsHandler.GetStats(ctx)
	case path == "/api/activity" && method == "GET":
		statsHandler.GetActivity(ctx)

	// API Routes - Catálogo
	case path == "/api/catalog/reload" && method == "POST":
		settingsHandler.ReloadCatalog(ctx)

	// API Routes - Transporte de mensajería
	case path == "/api/transport/status" && method == "GET":
		transportHandler.Status(ctx)
	case path == "/api/transport/connect" && method == "POST":
		transportHandler.Connect(ctx)
	case path == "/api/transport/pair" && method == "POST":
		transportHandler.CompletePairing(ctx)
	case path == "/api/transport/disconnect" && method == "POST":
		transportHandler.Disconnect(ctx)
	case path == "/api/transport/qr" && method == "GET":
		transportHandler.QRCode(ctx)

	// WebSocket Routes
	case path == "/ws":
		statsHandler.HandleDashboardWebSocket(ctx)
	case path == "/ws/chat":
		chatHandler.HandleChatWebSocket(ctx)

	// API Routes - Toggle de juegos (con parámetro)
	case strings.HasPrefix(path, "/api/games/") && strings.HasSuffix(path, "/toggle") && method == "PATCH":
		// Manejar /api/games/{gameName}/toggle
		parts := strings.Split(path, "/")
		if len(parts) == 5 && parts[1] == "api" && parts[2] == "games" && parts[4] == "toggle" {
			ctx.SetUserValue("gameName", parts[3])
			settingsHandler.ToggleGame(ctx)
		} else {
			serve404(ctx)
		}

	default:
		serve404(ctx)
	}
}

func serve404(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusNotFound)
	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetBodyString(`
		<!DOCTYPE html>
		<html>
		<head>
			<title>404 - Página no encontrada</title>
			<style>
				body {
					font-family: Arial, sans-serif;
					background: linear-gradient(135deg, #0f0f0f 0%, #1a1a2e 50%, #16213e 100%);
					color: white;
					text-align: center;
					padding: 50px;
					margin: 0;
					min-height: 100vh;
					display: flex;
					flex-direction: column;
					justify-content: center;
					align-items: center;
				}
				h1 {
					font-size: 3rem;
					margin-bottom: 20px;
					background: linear-gradient(45deg, #ffd700, #ffed4e);
					-webkit-background-clip: text;
					background-clip: text;
					-webkit-text-fill-color: transparent;
				}
				p { font-size: 1.2rem; margin-bottom: 30px; color: #ccc; }
				.api-info {
					background: rgba(255, 255, 255, 0.1);
					border-radius: 10px;
					padding: 20px;
					margin-top: 20px;
					text-align: left;
				}
				.endpoint {
					background: rgba(0, 0, 0, 0.3);
					padding: 5px 10px;
					border-radius: 5px;
					margin: 5px 0;
					font-family: monospace;
				}
			</style>
		</head>
		<body>
			<h1>🎮 404 - Página no encontrada</h1>
			<p>La página que buscas no existe en este servidor.</p>
			<div class="api-info">
				<h3>🔧 Endpoints API disponibles:</h3>
				<h4>💬 Chat:</h4>
				<div class="endpoint">POST /api/chat/message</div>
				<div class="endpoint">WS /ws/chat</div>
				<h4>⚙️ Bot:</h4>
				<div class="endpoint">GET /api/bot/settings</div>
				<div class="endpoint">POST /api/bot/settings</div>
				<div class="endpoint">GET /api/games/settings</div>
				<div class="endpoint">PATCH /api/games/{gameName}/toggle</div>
				<div class="endpoint">POST /api/catalog/reload</div>
				<h4>📊 Dashboard:</h4>
				<div class="endpoint">GET /api/health</div>
				<div class="endpoint">GET /api/stats</div>
				<div class="endpoint">GET /api/activity</div>
				<div class="endpoint">WS /ws</div>
				<h4>🔗 Transporte:</h4>
				<div class="endpoint">GET /api/transport/status</div>
				<div class="endpoint">POST /api/transport/connect</div>
				<div class="endpoint">POST /api/transport/pair</div>
				<div class="endpoint">POST /api/transport/disconnect</div>
				<div class="endpoint">GET /api/transport/qr</div>
			</div>
		</body>
		</html>
	`)
}
