package models

import "time"

// APIResponse estructura estándar para respuestas de API
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// BotSettings configuración general del bot
type BotSettings struct {
	ID              string    `json:"id"`
	CommandPrefix   string    `json:"commandPrefix"`
	DefaultLanguage string    `json:"defaultLanguage"`
	WelcomeMessage  string    `json:"welcomeMessage"`
	AutoResponse    bool      `json:"autoResponse"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// GameSetting configuración de un juego individual (comando y habilitado)
type GameSetting struct {
	ID          string    `json:"id"`
	GameName    GameKind  `json:"gameName"`
	Command     string    `json:"command"`
	Description string    `json:"description"`
	Enabled     bool      `json:"enabled"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BotStats estadísticas globales del bot
type BotStats struct {
	ActiveUsers   int       `json:"activeUsers"`
	GamesPlayed   int64     `json:"gamesPlayed"`
	MessagesCount int64     `json:"messagesCount"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// ActivityEntry entrada del registro de actividad del dashboard
type ActivityEntry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest mensaje entrante de un usuario del chat
type ChatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// ChatResponse respuesta del motor de juegos
type ChatResponse struct {
	UserID string `json:"userId"`
	Reply  string `json:"reply"`
}

// TransportStatus estado de la conexión con el canal de mensajería
type TransportStatus struct {
	IsConnected bool   `json:"isConnected"`
	HasQR       bool   `json:"hasQR"`
	PairedID    string `json:"pairedId,omitempty"`
}

// EmojiQuestion pregunta del quiz de emojis
type EmojiQuestion struct {
	ID     string `json:"id"`
	Emoji  string `json:"emoji"`
	Answer string `json:"answer"`
	Hint   string `json:"hint"`
}

// WordEntry palabra del juego de adivinanza de palabras
type WordEntry struct {
	ID   string `json:"id"`
	Word string `json:"word"`
	Hint string `json:"hint"`
}

// Riddle acertijo con su respuesta
type Riddle struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CatalogData estructura del JSON completo del catálogo (para recarga)
type CatalogData struct {
	Messages       map[string]map[string]string `json:"messages"`
	EmojiQuestions map[string][]EmojiQuestion   `json:"emojiQuestions"`
	Words          map[string][]WordEntry       `json:"words"`
	Riddles        map[string][]Riddle          `json:"riddles"`
	Metadata       struct {
		Version     string `json:"version"`
		LastUpdated string `json:"lastUpdated"`
		Description string `json:"description"`
	} `json:"metadata"`
}
