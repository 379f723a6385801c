package storage

import (
	"errors"
	"time"

	"github.com/backsoul/gamebot/pkg/models"
	"github.com/google/uuid"
)

// ErrNotFound se devuelve cuando la clave pedida no existe en el backend
var ErrNotFound = errors.New("registro no encontrado")

// Storage abstracción del almacenamiento del bot. Los motores de juego
// nunca la tocan: reciben estado y devuelven estado; solo el
// orquestador y los handlers hablan con el Storage.
type Storage interface {
	// Partidas en curso, una clave por (usuario, juego)
	GetGameState(userID string, kind models.GameKind) (*models.GameSession, error)
	SaveGameState(session *models.GameSession) error
	DeleteGameState(userID string, kind models.GameKind) error
	DeleteAllGameStates(userID string) error

	// Sesión del usuario: idioma y registro de preguntas servidas
	GetUserSession(userID string) (*models.UserSession, error)
	SaveUserSession(session *models.UserSession) error
	SetUserLocale(userID, locale string) error
	AppendUsedQuestion(userID, questionID string) error

	// Configuración del bot y de los juegos
	GetBotSettings() (*models.BotSettings, error)
	UpdateBotSettings(settings *models.BotSettings) (*models.BotSettings, error)
	GetGameSettings() ([]models.GameSetting, error)
	UpdateGameSetting(gameName models.GameKind, enabled bool) (*models.GameSetting, error)

	// Estadísticas y actividad del dashboard
	GetBotStats() (*models.BotStats, error)
	IncrementGamesPlayed() error
	IncrementMessages() error
	AddActivity(message string) error
	GetActivity(limit int) ([]models.ActivityEntry, error)

	HealthCheck() error
	Close() error
}

// maxActivityEntries tope del registro de actividad
const maxActivityEntries = 50

func defaultBotSettings() *models.BotSettings {
	return &models.BotSettings{
		ID:              uuid.New().String(),
		CommandPrefix:   ".",
		DefaultLanguage: "en",
		WelcomeMessage:  "Bonjou! / Hello! 👋\nChwazi lang ou / Choose your language:\n🇫🇷 Tapez .fr pour Français\n🇺🇸 Type .en for English",
		AutoResponse:    true,
		UpdatedAt:       time.Now(),
	}
}

func defaultGameSettings() []models.GameSetting {
	games := []struct {
		name        models.GameKind
		command     string
		description string
	}{
		{models.GameTicTacToe, ".tictactoe", "Classic 3x3 grid game"},
		{models.GameEmojiQuiz, ".emojiquiz", "Guess words from emoji clues"},
		{models.GameWordGuess, ".mokache", "Hidden word guessing game"},
		{models.GameRiddle, ".riddle", "Riddle and proverb challenges"},
	}

	settings := make([]models.GameSetting, len(games))
	for i, game := range games {
		settings[i] = models.GameSetting{
			ID:          uuid.New().String(),
			GameName:    game.name,
			Command:     game.command,
			Description: game.description,
			Enabled:     true,
			UpdatedAt:   time.Now(),
		}
	}
	return settings
}

func newActivityEntry(message string) models.ActivityEntry {
	return models.ActivityEntry{
		ID:        uuid.New().String(),
		Message:   message,
		Timestamp: time.Now(),
	}
}
