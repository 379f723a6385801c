package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/backsoul/gamebot/pkg/models"
	"github.com/backsoul/gamebot/pkg/redis"
	"github.com/google/uuid"
)

// Claves de Redis del bot
const (
	keyBotSettings  = "gamebot:settings"
	keyGameSettings = "gamebot:games"
	keyUsers        = "gamebot:users"
	keyGamesPlayed  = "gamebot:stats:games_played"
	keyMessages     = "gamebot:stats:messages"
	keyActivity     = "gamebot:activity"
)

// RedisStorage backend persistente sobre Redis: valores JSON bajo el
// prefijo gamebot:
type RedisStorage struct {
	client *redis.RedisClient
}

// NewRedisStorage crea el backend Redis y siembra la configuración por
// defecto si todavía no existe
func NewRedisStorage(client *redis.RedisClient) (*RedisStorage, error) {
	s := &RedisStorage{client: client}

	if _, err := s.client.Get(keyBotSettings); err == redis.Nil {
		log.Println("⚙️  Sembrando configuración por defecto en Redis...")
		if err := s.setJSON(keyBotSettings, defaultBotSettings()); err != nil {
			return nil, fmt.Errorf("error sembrando configuración: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("error verificando configuración: %w", err)
	}

	if _, err := s.client.Get(keyGameSettings); err == redis.Nil {
		if err := s.setJSON(keyGameSettings, defaultGameSettings()); err != nil {
			return nil, fmt.Errorf("error sembrando juegos: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("error verificando juegos: %w", err)
	}

	return s, nil
}

func stateRedisKey(userID string, kind models.GameKind) string {
	return fmt.Sprintf("gamebot:state:%s:%s", userID, kind)
}

func userRedisKey(userID string) string {
	return fmt.Sprintf("gamebot:user:%s", userID)
}

// GetGameState obtiene la partida de un usuario para un juego
func (s *RedisStorage) GetGameState(userID string, kind models.GameKind) (*models.GameSession, error) {
	var session models.GameSession
	if err := s.getJSON(stateRedisKey(userID, kind), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SaveGameState guarda (o reemplaza) la partida
func (s *RedisStorage) SaveGameState(session *models.GameSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
		session.CreatedAt = time.Now()
	}
	session.UpdatedAt = time.Now()
	return s.setJSON(stateRedisKey(session.UserID, session.Kind), session)
}

// DeleteGameState elimina la partida de un usuario para un juego
func (s *RedisStorage) DeleteGameState(userID string, kind models.GameKind) error {
	return s.client.Delete(stateRedisKey(userID, kind))
}

// DeleteAllGameStates elimina las partidas del usuario en todos los juegos
func (s *RedisStorage) DeleteAllGameStates(userID string) error {
	keys := make([]string, len(models.AllGameKinds))
	for i, kind := range models.AllGameKinds {
		keys[i] = stateRedisKey(userID, kind)
	}
	return s.client.Delete(keys...)
}

// GetUserSession obtiene la sesión persistente del usuario
func (s *RedisStorage) GetUserSession(userID string) (*models.UserSession, error) {
	var session models.UserSession
	if err := s.getJSON(userRedisKey(userID), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SaveUserSession guarda la sesión del usuario
func (s *RedisStorage) SaveUserSession(session *models.UserSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
		session.CreatedAt = time.Now()
	}
	session.UpdatedAt = time.Now()

	if err := s.setJSON(userRedisKey(session.UserID), session); err != nil {
		return err
	}
	return s.client.AddToSet(keyUsers, session.UserID)
}

// SetUserLocale cambia el idioma del usuario
func (s *RedisStorage) SetUserLocale(userID, locale string) error {
	session, err := s.GetUserSession(userID)
	if err != nil {
		return err
	}
	session.Locale = locale
	return s.SaveUserSession(session)
}

// AppendUsedQuestion registra una pregunta como ya servida al usuario
func (s *RedisStorage) AppendUsedQuestion(userID, questionID string) error {
	session, err := s.GetUserSession(userID)
	if err != nil {
		return err
	}
	session.UsedQuestions = append(session.UsedQuestions, questionID)
	return s.SaveUserSession(session)
}

// GetBotSettings obtiene la configuración del bot
func (s *RedisStorage) GetBotSettings() (*models.BotSettings, error) {
	var settings models.BotSettings
	if err := s.getJSON(keyBotSettings, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateBotSettings actualiza la configuración del bot; los campos
// vacíos conservan el valor anterior
func (s *RedisStorage) UpdateBotSettings(settings *models.BotSettings) (*models.BotSettings, error) {
	current, err := s.GetBotSettings()
	if err != nil {
		return nil, err
	}

	if settings.CommandPrefix != "" {
		current.CommandPrefix = settings.CommandPrefix
	}
	if settings.DefaultLanguage != "" {
		current.DefaultLanguage = settings.DefaultLanguage
	}
	if settings.WelcomeMessage != "" {
		current.WelcomeMessage = settings.WelcomeMessage
	}
	current.AutoResponse = settings.AutoResponse
	current.UpdatedAt = time.Now()

	if err := s.setJSON(keyBotSettings, current); err != nil {
		return nil, err
	}
	return current, nil
}

// GetGameSettings obtiene la configuración de todos los juegos
func (s *RedisStorage) GetGameSettings() ([]models.GameSetting, error) {
	var settings []models.GameSetting
	if err := s.getJSON(keyGameSettings, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateGameSetting habilita o deshabilita un juego
func (s *RedisStorage) UpdateGameSetting(gameName models.GameKind, enabled bool) (*models.GameSetting, error) {
	settings, err := s.GetGameSettings()
	if err != nil {
		return nil, err
	}

	for i := range settings {
		if settings[i].GameName == gameName {
			settings[i].Enabled = enabled
			settings[i].UpdatedAt = time.Now()
			if err := s.setJSON(keyGameSettings, settings); err != nil {
				return nil, err
			}
			updated := settings[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("juego %s no encontrado", gameName)
}

// GetBotStats obtiene las estadísticas globales
func (s *RedisStorage) GetBotStats() (*models.BotStats, error) {
	gamesPlayed, err := s.client.GetCounter(keyGamesPlayed)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo contador de partidas: %w", err)
	}
	messages, err := s.client.GetCounter(keyMessages)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo contador de mensajes: %w", err)
	}
	users, err := s.client.GetSetMembers(keyUsers)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo usuarios: %w", err)
	}

	return &models.BotStats{
		ActiveUsers:   len(users),
		GamesPlayed:   gamesPlayed,
		MessagesCount: messages,
		LastUpdated:   time.Now(),
	}, nil
}

// IncrementGamesPlayed suma una partida terminada al contador global
func (s *RedisStorage) IncrementGamesPlayed() error {
	_, err := s.client.Increment(keyGamesPlayed)
	return err
}

// IncrementMessages suma un mensaje procesado al contador global
func (s *RedisStorage) IncrementMessages() error {
	_, err := s.client.Increment(keyMessages)
	return err
}

// AddActivity registra una entrada de actividad para el dashboard
func (s *RedisStorage) AddActivity(message string) error {
	entryJSON, err := json.Marshal(newActivityEntry(message))
	if err != nil {
		return fmt.Errorf("error serializando actividad: %w", err)
	}
	return s.client.PushToList(keyActivity, string(entryJSON), maxActivityEntries)
}

// GetActivity obtiene las entradas más recientes del registro
func (s *RedisStorage) GetActivity(limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		limit = maxActivityEntries
	}
	items, err := s.client.GetListRange(keyActivity, 0, int64(limit-1))
	if err != nil {
		return nil, fmt.Errorf("error obteniendo actividad: %w", err)
	}

	entries := make([]models.ActivityEntry, 0, len(items))
	for _, item := range items {
		var entry models.ActivityEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			log.Printf("⚠️ Entrada de actividad inválida: %v", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// HealthCheck verifica la conexión con Redis
func (s *RedisStorage) HealthCheck() error {
	return s.client.HealthCheck()
}

// Close cierra la conexión con Redis
func (s *RedisStorage) Close() error {
	return s.client.Close()
}

func (s *RedisStorage) getJSON(key string, target interface{}) error {
	value, err := s.client.Get(key)
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("error obteniendo %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), target); err != nil {
		return fmt.Errorf("error parseando %s: %w", key, err)
	}
	return nil
}

func (s *RedisStorage) setJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error serializando %s: %w", key, err)
	}
	return s.client.Set(key, string(data), 0)
}
