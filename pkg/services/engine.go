package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/backsoul/gamebot/pkg/games"
	"github.com/backsoul/gamebot/pkg/locale"
	"github.com/backsoul/gamebot/pkg/models"
	"github.com/backsoul/gamebot/pkg/storage"
)

// Notifier recibe eventos del motor para el dashboard en vivo. El motor
// no sabe nada de websockets: solo emite.
type Notifier interface {
	BroadcastMessage(msgType string, data interface{})
}

type noopNotifier struct{}

func (noopNotifier) BroadcastMessage(string, interface{}) {}

// GameEngine orquestador de los juegos: decide si un mensaje entrante
// es un comando o una jugada de la partida activa, delega en el motor
// de reglas que corresponde y persiste (o elimina) el estado resultante.
//
// El procesamiento se serializa por usuario: dos mensajes del mismo
// usuario nunca se solapan, mensajes de usuarios distintos sí.
type GameEngine struct {
	store    storage.Storage
	catalog  *locale.Catalog
	notifier Notifier
	locks    sync.Map // userID -> *sync.Mutex
}

// NewGameEngine crea el orquestador; notifier puede ser nil
func NewGameEngine(store storage.Storage, catalog *locale.Catalog, notifier Notifier) *GameEngine {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &GameEngine{
		store:    store,
		catalog:  catalog,
		notifier: notifier,
	}
}

// HandleMessage procesa un mensaje de texto entrante y devuelve la
// respuesta a enviar al usuario. Respuesta vacía significa que no hay
// nada que contestar.
func (e *GameEngine) HandleMessage(userID, text string) (string, error) {
	mu := e.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	text = strings.TrimSpace(text)

	userSession, err := e.ensureUserSession(userID)
	if err != nil {
		return "", err
	}

	settings, err := e.store.GetBotSettings()
	if err != nil {
		return "", fmt.Errorf("error obteniendo configuración: %w", err)
	}

	if err := e.store.IncrementMessages(); err != nil {
		log.Printf("⚠️ Error contando mensaje: %v", err)
	}

	// Comando con prefijo
	if strings.HasPrefix(text, settings.CommandPrefix) && len(text) > len(settings.CommandPrefix) {
		command := strings.ToLower(strings.TrimPrefix(text, settings.CommandPrefix))
		return e.handleCommand(command, userSession)
	}

	// Jugada de la partida activa, si existe
	session, err := e.findActiveGame(userID)
	if err != nil {
		return "", err
	}
	if session != nil {
		return e.handleGameInput(session, text)
	}

	// Sin partida ni comando: bienvenida automática
	if settings.AutoResponse {
		return e.catalog.Translate("welcome", userSession.Locale), nil
	}
	return "", nil
}

// handleCommand procesa un comando ya sin prefijo
func (e *GameEngine) handleCommand(command string, userSession *models.UserSession) (string, error) {
	switch command {
	case "fr", "francais", "français":
		return e.changeLanguage(userSession.UserID, "fr")
	case "en", "english":
		return e.changeLanguage(userSession.UserID, "en")
	case "help", "aide":
		gameSettings, err := e.store.GetGameSettings()
		if err != nil {
			return "", fmt.Errorf("error obteniendo juegos: %w", err)
		}
		return e.catalog.HelpMessage(userSession.Locale, gameSettings), nil
	}

	// Comando de juego, solo juegos habilitados
	gameSettings, err := e.store.GetGameSettings()
	if err != nil {
		return "", fmt.Errorf("error obteniendo juegos: %w", err)
	}
	gameCommand := "." + command
	for _, game := range gameSettings {
		if game.Command == gameCommand && game.Enabled {
			return e.StartGame(game.GameName, userSession.UserID, userSession.Locale)
		}
	}

	return e.catalog.Translate("unknownCommand", userSession.Locale), nil
}

func (e *GameEngine) changeLanguage(userID, loc string) (string, error) {
	if err := e.store.SetUserLocale(userID, loc); err != nil {
		return "", fmt.Errorf("error cambiando idioma: %w", err)
	}
	e.notifyActivity(fmt.Sprintf("🌐 %s cambió el idioma a %s", userID, loc))
	return e.catalog.Translate("languageChanged", loc), nil
}

// StartGame arranca una partida nueva. Primero elimina cualquier
// partida del usuario en todos los juegos: nunca hay más de una activa.
func (e *GameEngine) StartGame(kind models.GameKind, userID, loc string) (string, error) {
	if err := e.store.DeleteAllGameStates(userID); err != nil {
		return "", fmt.Errorf("error limpiando partidas previas: %w", err)
	}

	session := &models.GameSession{
		UserID: userID,
		Kind:   kind,
		Locale: loc,
	}

	var reply string
	switch kind {
	case models.GameTicTacToe:
		session.TicTacToe = games.NewTicTacToe()
		reply = e.catalog.Translate("ticTacToeStart", loc) + "\n\n" +
			games.FormatBoard(session.TicTacToe.Board)

	case models.GameEmojiQuiz:
		question, ok, err := e.pickEmojiQuestion(userID, loc)
		if err != nil {
			return "", err
		}
		if !ok {
			return e.catalog.Translate("noMoreQuestions", loc), nil
		}
		session.EmojiQuiz = games.NewEmojiQuiz(question)
		reply = e.catalog.Translate("emojiQuizStart", loc) + "\n\n" +
			question.Emoji + "\n\n" + e.catalog.Translate("guessWord", loc)

	case models.GameWordGuess:
		entry, ok, err := e.pickWord(userID, loc)
		if err != nil {
			return "", err
		}
		if !ok {
			return e.catalog.Translate("noMoreQuestions", loc), nil
		}
		session.WordGuess = games.NewWordGuess(entry)
		reply = e.catalog.Translate("wordGuessStart", loc) + "\n\n" +
			e.catalog.Translate("hint", loc) + ": " + entry.Hint + "\n\n" +
			games.FormatWordGuess(session.WordGuess, e.chancesText(session.WordGuess, loc))

	case models.GameRiddle:
		riddle, ok, err := e.pickRiddle(userID, loc)
		if err != nil {
			return "", err
		}
		if !ok {
			return e.catalog.Translate("noMoreQuestions", loc), nil
		}
		session.Riddle = games.NewRiddle(riddle)
		reply = e.catalog.Translate("riddleStart", loc) + "\n\n" + riddle.Question

	default:
		return "", fmt.Errorf("tipo de juego desconocido: %s", kind)
	}

	if err := e.store.SaveGameState(session); err != nil {
		return "", fmt.Errorf("error guardando partida: %w", err)
	}

	e.notifyActivity(fmt.Sprintf("🎮 %s inició %s", userID, gameDisplayName(kind)))
	return reply, nil
}

// findActiveGame busca la partida activa del usuario en los cuatro
// juegos; por invariante existe a lo sumo una
func (e *GameEngine) findActiveGame(userID string) (*models.GameSession, error) {
	for _, kind := range models.AllGameKinds {
		session, err := e.store.GetGameState(userID, kind)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error buscando partida activa: %w", err)
		}
		return session, nil
	}
	return nil, nil
}

// handleGameInput delega la entrada al motor de reglas de la partida
func (e *GameEngine) handleGameInput(session *models.GameSession, input string) (string, error) {
	switch session.Kind {
	case models.GameTicTacToe:
		return e.handleTicTacToe(session, input)
	case models.GameEmojiQuiz:
		return e.handleEmojiQuiz(session, input)
	case models.GameWordGuess:
		return e.handleWordGuess(session, input)
	case models.GameRiddle:
		return e.handleRiddle(session, input)
	default:
		return "", fmt.Errorf("tipo de juego desconocido: %s", session.Kind)
	}
}

func (e *GameEngine) handleTicTacToe(session *models.GameSession, input string) (string, error) {
	loc := session.Locale
	state := session.TicTacToe

	position, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return e.catalog.Translate("invalidPosition", loc), nil
	}

	outcome, err := games.ApplyPlayerMove(state, position)
	switch {
	case errors.Is(err, games.ErrInvalidPosition):
		return e.catalog.Translate("invalidPosition", loc), nil
	case errors.Is(err, games.ErrPositionTaken):
		return e.catalog.Translate("positionTaken", loc), nil
	case err != nil:
		return "", err
	}

	board := games.FormatBoard(state.Board)
	switch outcome {
	case games.TicTacToePlayerWins:
		if err := e.finishGame(session, "🏆"); err != nil {
			return "", err
		}
		return board + "\n\n" + e.catalog.Translate("youWin", loc), nil

	case games.TicTacToeBotWins:
		if err := e.finishGame(session, "🤖"); err != nil {
			return "", err
		}
		return board + "\n\n" + e.catalog.Translate("botWins", loc), nil

	case games.TicTacToeTie:
		if err := e.finishGame(session, "🤝"); err != nil {
			return "", err
		}
		return board + "\n\n" + e.catalog.Translate("tie", loc), nil
	}

	if err := e.store.SaveGameState(session); err != nil {
		return "", fmt.Errorf("error guardando partida: %w", err)
	}
	return board + "\n\n" + e.catalog.Translate("yourTurn", loc), nil
}

func (e *GameEngine) handleEmojiQuiz(session *models.GameSession, input string) (string, error) {
	loc := session.Locale
	state := session.EmojiQuiz

	switch games.SubmitEmojiAnswer(state, input) {
	case games.AnswerCorrect:
		if err := e.finishGame(session, "🎯"); err != nil {
			return "", err
		}
		return e.catalog.Translate("correct", loc) + " 🎉\n" +
			e.catalog.Translate("answer", loc) + ": " + state.Question.Answer, nil

	case games.AnswerWrongExhausted:
		if err := e.finishGame(session, "🎯"); err != nil {
			return "", err
		}
		return e.catalog.Translate("gameOver", loc) + "\n" +
			e.catalog.Translate("answer", loc) + ": " + state.Question.Answer, nil
	}

	if err := e.store.SaveGameState(session); err != nil {
		return "", fmt.Errorf("error guardando partida: %w", err)
	}
	remaining := games.RemainingQuizAttempts(state.Attempts, state.MaxAttempts)
	return e.catalog.Translate("wrong", loc) + "\n" +
		locale.Replace(e.catalog.Translate("attemptsLeft", loc), "attempts", strconv.Itoa(remaining)), nil
}

func (e *GameEngine) handleRiddle(session *models.GameSession, input string) (string, error) {
	loc := session.Locale
	state := session.Riddle

	switch games.SubmitRiddleAnswer(state, input) {
	case games.AnswerCorrect:
		if err := e.finishGame(session, "🧩"); err != nil {
			return "", err
		}
		return e.catalog.Translate("correct", loc) + " 🎉\n" +
			e.catalog.Translate("answer", loc) + ": " + state.Riddle.Answer, nil

	case games.AnswerWrongExhausted:
		if err := e.finishGame(session, "🧩"); err != nil {
			return "", err
		}
		return e.catalog.Translate("gameOver", loc) + "\n" +
			e.catalog.Translate("answer", loc) + ": " + state.Riddle.Answer, nil
	}

	if err := e.store.SaveGameState(session); err != nil {
		return "", fmt.Errorf("error guardando partida: %w", err)
	}
	remaining := games.RemainingQuizAttempts(state.Attempts, state.MaxAttempts)
	return e.catalog.Translate("wrong", loc) + "\n" +
		locale.Replace(e.catalog.Translate("attemptsLeft", loc), "attempts", strconv.Itoa(remaining)), nil
}

func (e *GameEngine) handleWordGuess(session *models.GameSession, input string) (string, error) {
	loc := session.Locale
	state := session.WordGuess

	result, err := games.SubmitLetter(state, input)
	switch {
	case errors.Is(err, games.ErrInvalidLetter):
		return e.catalog.Translate("invalidLetter", loc), nil
	case errors.Is(err, games.ErrAlreadyGuessed):
		return e.catalog.Translate("alreadyGuessed", loc), nil
	case err != nil:
		return "", err
	}

	switch result {
	case games.WordCompleted:
		if err := e.finishGame(session, "🔤"); err != nil {
			return "", err
		}
		return e.catalog.Translate("wordComplete", loc) + " 🎉\n" +
			e.catalog.Translate("word", loc) + ": " + strings.ToUpper(state.Word), nil

	case games.WordFailed:
		if err := e.finishGame(session, "🔤"); err != nil {
			return "", err
		}
		return e.catalog.Translate("gameOver", loc) + "\n" +
			e.catalog.Translate("word", loc) + ": " + strings.ToUpper(state.Word), nil
	}

	if err := e.store.SaveGameState(session); err != nil {
		return "", fmt.Errorf("error guardando partida: %w", err)
	}
	return games.FormatWordGuess(state, e.chancesText(state, loc)), nil
}

// finishGame cierra una partida terminada: la elimina del storage,
// suma una partida jugada y emite el evento para el dashboard
func (e *GameEngine) finishGame(session *models.GameSession, icon string) error {
	if err := e.store.DeleteGameState(session.UserID, session.Kind); err != nil {
		return fmt.Errorf("error eliminando partida: %w", err)
	}
	if err := e.store.IncrementGamesPlayed(); err != nil {
		log.Printf("⚠️ Error contando partida: %v", err)
	}
	e.notifyActivity(fmt.Sprintf("%s %s terminó %s", icon, session.UserID, gameDisplayName(session.Kind)))
	e.notifyStats()
	return nil
}

func (e *GameEngine) chancesText(state *models.WordGuessState, loc string) string {
	remaining := state.MaxWrongGuesses - state.WrongGuesses
	return locale.Replace(e.catalog.Translate("chancesLeft", loc), "chances", strconv.Itoa(remaining))
}

func (e *GameEngine) pickEmojiQuestion(userID, loc string) (models.EmojiQuestion, bool, error) {
	used, err := e.usedQuestions(userID)
	if err != nil {
		return models.EmojiQuestion{}, false, err
	}
	question, ok := e.catalog.RandomEmojiQuestion(loc, used)
	if !ok {
		return models.EmojiQuestion{}, false, nil
	}
	// Se registra al servirla: una pregunta mostrada no vuelve a salir
	// aunque el usuario nunca la responda
	if err := e.store.AppendUsedQuestion(userID, question.ID); err != nil {
		return models.EmojiQuestion{}, false, fmt.Errorf("error registrando pregunta usada: %w", err)
	}
	return question, true, nil
}

func (e *GameEngine) pickWord(userID, loc string) (models.WordEntry, bool, error) {
	used, err := e.usedQuestions(userID)
	if err != nil {
		return models.WordEntry{}, false, err
	}
	entry, ok := e.catalog.RandomWord(loc, used)
	if !ok {
		return models.WordEntry{}, false, nil
	}
	if err := e.store.AppendUsedQuestion(userID, entry.ID); err != nil {
		return models.WordEntry{}, false, fmt.Errorf("error registrando palabra usada: %w", err)
	}
	return entry, true, nil
}

func (e *GameEngine) pickRiddle(userID, loc string) (models.Riddle, bool, error) {
	used, err := e.usedQuestions(userID)
	if err != nil {
		return models.Riddle{}, false, err
	}
	riddle, ok := e.catalog.RandomRiddle(loc, used)
	if !ok {
		return models.Riddle{}, false, nil
	}
	if err := e.store.AppendUsedQuestion(userID, riddle.ID); err != nil {
		return models.Riddle{}, false, fmt.Errorf("error registrando acertijo usado: %w", err)
	}
	return riddle, true, nil
}

func (e *GameEngine) usedQuestions(userID string) ([]string, error) {
	session, err := e.store.GetUserSession(userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error obteniendo sesión de usuario: %w", err)
	}
	return session.UsedQuestions, nil
}

// ensureUserSession obtiene la sesión del usuario, creándola con el
// idioma por defecto si es la primera vez que escribe
func (e *GameEngine) ensureUserSession(userID string) (*models.UserSession, error) {
	session, err := e.store.GetUserSession(userID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("error obteniendo sesión de usuario: %w", err)
	}

	settings, err := e.store.GetBotSettings()
	if err != nil {
		return nil, fmt.Errorf("error obteniendo configuración: %w", err)
	}

	session = &models.UserSession{
		UserID: userID,
		Locale: settings.DefaultLanguage,
	}
	if err := e.store.SaveUserSession(session); err != nil {
		return nil, fmt.Errorf("error creando sesión de usuario: %w", err)
	}
	return session, nil
}

func (e *GameEngine) userLock(userID string) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (e *GameEngine) notifyActivity(message string) {
	if err := e.store.AddActivity(message); err != nil {
		log.Printf("⚠️ Error registrando actividad: %v", err)
	}
	e.notifier.BroadcastMessage("activity", map[string]string{
		"message":   message,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (e *GameEngine) notifyStats() {
	stats, err := e.store.GetBotStats()
	if err != nil {
		log.Printf("⚠️ Error obteniendo estadísticas: %v", err)
		return
	}
	e.notifier.BroadcastMessage("stats", stats)
}

func gameDisplayName(kind models.GameKind) string {
	switch kind {
	case models.GameTicTacToe:
		return "Tic Tac Toe"
	case models.GameEmojiQuiz:
		return "Emoji Quiz"
	case models.GameWordGuess:
		return "Word Guess"
	case models.GameRiddle:
		return "Riddles"
	}
	return string(kind)
}
