package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/backsoul/gamebot/pkg/models"
	"github.com/google/uuid"
)

// MemoryStorage backend en memoria: mapas protegidos por mutex. Es el
// backend por defecto; los datos viven lo que vive el proceso.
type MemoryStorage struct {
	mu            sync.RWMutex
	gameStates    map[string]*models.GameSession
	userSessions  map[string]*models.UserSession
	botSettings   *models.BotSettings
	gameSettings  []models.GameSetting
	gamesPlayed   int64
	messagesCount int64
	activity      []models.ActivityEntry
}

// NewMemoryStorage crea el backend en memoria con la configuración por
// defecto ya sembrada
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		gameStates:   make(map[string]*models.GameSession),
		userSessions: make(map[string]*models.UserSession),
		botSettings:  defaultBotSettings(),
		gameSettings: defaultGameSettings(),
	}
}

func stateKey(userID string, kind models.GameKind) string {
	return fmt.Sprintf("%s-%s", userID, kind)
}

// GetGameState obtiene la partida de un usuario para un juego
func (m *MemoryStorage) GetGameState(userID string, kind models.GameKind) (*models.GameSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.gameStates[stateKey(userID, kind)]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneGameSession(session), nil
}

// SaveGameState guarda (o reemplaza) la partida
func (m *MemoryStorage) SaveGameState(session *models.GameSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := cloneGameSession(session)
	if stored.ID == "" {
		stored.ID = uuid.New().String()
		stored.CreatedAt = time.Now()
	}
	stored.UpdatedAt = time.Now()
	m.gameStates[stateKey(session.UserID, session.Kind)] = stored
	return nil
}

// DeleteGameState elimina la partida de un usuario para un juego
func (m *MemoryStorage) DeleteGameState(userID string, kind models.GameKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.gameStates, stateKey(userID, kind))
	return nil
}

// DeleteAllGameStates elimina las partidas del usuario en todos los
// juegos (garantiza la invariante de una sola partida activa)
func (m *MemoryStorage) DeleteAllGameStates(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, kind := range models.AllGameKinds {
		delete(m.gameStates, stateKey(userID, kind))
	}
	return nil
}

// GetUserSession obtiene la sesión persistente del usuario
func (m *MemoryStorage) GetUserSession(userID string) (*models.UserSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.userSessions[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUserSession(session), nil
}

// SaveUserSession guarda la sesión del usuario
func (m *MemoryStorage) SaveUserSession(session *models.UserSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := cloneUserSession(session)
	if stored.ID == "" {
		stored.ID = uuid.New().String()
		stored.CreatedAt = time.Now()
	}
	stored.UpdatedAt = time.Now()
	m.userSessions[session.UserID] = stored
	return nil
}

// SetUserLocale cambia el idioma del usuario
func (m *MemoryStorage) SetUserLocale(userID, locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.userSessions[userID]
	if !ok {
		return ErrNotFound
	}
	session.Locale = locale
	session.UpdatedAt = time.Now()
	return nil
}

// AppendUsedQuestion registra una pregunta como ya servida al usuario
func (m *MemoryStorage) AppendUsedQuestion(userID, questionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.userSessions[userID]
	if !ok {
		return ErrNotFound
	}
	session.UsedQuestions = append(session.UsedQuestions, questionID)
	session.UpdatedAt = time.Now()
	return nil
}

// GetBotSettings obtiene la configuración del bot
func (m *MemoryStorage) GetBotSettings() (*models.BotSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	settings := *m.botSettings
	return &settings, nil
}

// UpdateBotSettings actualiza la configuración del bot; los campos
// vacíos conservan el valor anterior
func (m *MemoryStorage) UpdateBotSettings(settings *models.BotSettings) (*models.BotSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if settings.CommandPrefix != "" {
		m.botSettings.CommandPrefix = settings.CommandPrefix
	}
	if settings.DefaultLanguage != "" {
		m.botSettings.DefaultLanguage = settings.DefaultLanguage
	}
	if settings.WelcomeMessage != "" {
		m.botSettings.WelcomeMessage = settings.WelcomeMessage
	}
	m.botSettings.AutoResponse = settings.AutoResponse
	m.botSettings.UpdatedAt = time.Now()

	updated := *m.botSettings
	return &updated, nil
}

// GetGameSettings obtiene la configuración de todos los juegos
func (m *MemoryStorage) GetGameSettings() ([]models.GameSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	settings := make([]models.GameSetting, len(m.gameSettings))
	copy(settings, m.gameSettings)
	return settings, nil
}

// UpdateGameSetting habilita o deshabilita un juego
func (m *MemoryStorage) UpdateGameSetting(gameName models.GameKind, enabled bool) (*models.GameSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.gameSettings {
		if m.gameSettings[i].GameName == gameName {
			m.gameSettings[i].Enabled = enabled
			m.gameSettings[i].UpdatedAt = time.Now()
			updated := m.gameSettings[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("juego %s no encontrado", gameName)
}

// GetBotStats obtiene las estadísticas globales
func (m *MemoryStorage) GetBotStats() (*models.BotStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &models.BotStats{
		ActiveUsers:   len(m.userSessions),
		GamesPlayed:   m.gamesPlayed,
		MessagesCount: m.messagesCount,
		LastUpdated:   time.Now(),
	}, nil
}

// IncrementGamesPlayed suma una partida terminada al contador global
func (m *MemoryStorage) IncrementGamesPlayed() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gamesPlayed++
	return nil
}

// IncrementMessages suma un mensaje procesado al contador global
func (m *MemoryStorage) IncrementMessages() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messagesCount++
	return nil
}

// AddActivity registra una entrada de actividad para el dashboard
func (m *MemoryStorage) AddActivity(message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.activity = append([]models.ActivityEntry{newActivityEntry(message)}, m.activity...)
	if len(m.activity) > maxActivityEntries {
		m.activity = m.activity[:maxActivityEntries]
	}
	return nil
}

// GetActivity obtiene las entradas más recientes del registro
func (m *MemoryStorage) GetActivity(limit int) ([]models.ActivityEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 || limit > len(m.activity) {
		limit = len(m.activity)
	}
	entries := make([]models.ActivityEntry, limit)
	copy(entries, m.activity[:limit])
	return entries, nil
}

// HealthCheck el backend en memoria siempre está disponible
func (m *MemoryStorage) HealthCheck() error {
	return nil
}

// Close no hay recursos que liberar
func (m *MemoryStorage) Close() error {
	return nil
}

// cloneGameSession copia la sesión para que el llamador no comparta
// memoria con lo almacenado
func cloneGameSession(session *models.GameSession) *models.GameSession {
	cloned := *session
	if session.TicTacToe != nil {
		state := *session.TicTacToe
		state.Board = append([]string(nil), session.TicTacToe.Board...)
		cloned.TicTacToe = &state
	}
	if session.EmojiQuiz != nil {
		state := *session.EmojiQuiz
		cloned.EmojiQuiz = &state
	}
	if session.WordGuess != nil {
		state := *session.WordGuess
		state.GuessedLetters = append([]string(nil), session.WordGuess.GuessedLetters...)
		cloned.WordGuess = &state
	}
	if session.Riddle != nil {
		state := *session.Riddle
		cloned.Riddle = &state
	}
	return &cloned
}

func cloneUserSession(session *models.UserSession) *models.UserSession {
	cloned := *session
	cloned.UsedQuestions = append([]string(nil), session.UsedQuestions...)
	return &cloned
}
