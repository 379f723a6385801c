package models

import "time"

// GameKind identifica cada uno de los juegos disponibles
type GameKind string

const (
	GameTicTacToe GameKind = "ticTacToe"
	GameEmojiQuiz GameKind = "emojiQuiz"
	GameWordGuess GameKind = "wordGuess"
	GameRiddle    GameKind = "riddles"
)

// AllGameKinds lista cerrada de juegos; el orden define la búsqueda de
// la partida activa de un usuario
var AllGameKinds = []GameKind{GameTicTacToe, GameEmojiQuiz, GameWordGuess, GameRiddle}

// GameSession partida en curso de un usuario. Exactamente uno de los
// punteros de estado es no-nulo, el que corresponde a Kind.
type GameSession struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Kind      GameKind        `json:"gameType"`
	Locale    string          `json:"language"`
	TicTacToe *TicTacToeState `json:"ticTacToe,omitempty"`
	EmojiQuiz *EmojiQuizState `json:"emojiQuiz,omitempty"`
	WordGuess *WordGuessState `json:"wordGuess,omitempty"`
	Riddle    *RiddleState    `json:"riddle,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// UserSession sesión persistente del usuario: idioma elegido y el
// registro de preguntas ya servidas (sobrevive a las partidas)
type UserSession struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Locale        string    `json:"language"`
	UsedQuestions []string  `json:"usedQuestions"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HasUsedQuestion indica si una pregunta ya fue servida a este usuario
func (u *UserSession) HasUsedQuestion(id string) bool {
	for _, used := range u.UsedQuestions {
		if used == id {
			return true
		}
	}
	return false
}
