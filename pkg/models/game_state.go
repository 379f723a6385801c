package models

// Marcas del tablero de Tic Tac Toe
const (
	MarkPlayer = "X"
	MarkBot    = "O"
	MarkEmpty  = ""
)

// TicTacToeState tablero de 9 celdas; el jugador siempre es X y mueve
// primero, el bot es O
type TicTacToeState struct {
	Board    []string `json:"board"`
	GameOver bool     `json:"gameOver"`
	Winner   string   `json:"winner,omitempty"`
}

// EmojiQuizState estado del quiz de emojis
type EmojiQuizState struct {
	Question    EmojiQuestion `json:"currentQuestion"`
	Attempts    int           `json:"attempts"`
	MaxAttempts int           `json:"maxAttempts"`
}

// RiddleState estado del juego de acertijos
type RiddleState struct {
	Riddle      Riddle `json:"riddle"`
	Attempts    int    `json:"attempts"`
	MaxAttempts int    `json:"maxAttempts"`
}

// WordGuessState estado del juego de adivinar la palabra (tipo ahorcado)
type WordGuessState struct {
	Word            string   `json:"word"`
	Hint            string   `json:"hint"`
	GuessedLetters  []string `json:"guessedLetters"`
	WrongGuesses    int      `json:"wrongGuesses"`
	MaxWrongGuesses int      `json:"maxWrongGuesses"`
	GameOver        bool     `json:"gameOver"`
}

// HasGuessed indica si la letra ya fue intentada
func (w *WordGuessState) HasGuessed(letter string) bool {
	for _, l := range w.GuessedLetters {
		if l == letter {
			return true
		}
	}
	return false
}
