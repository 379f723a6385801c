package games

import (
	"errors"
	"fmt"
	"strings"

	"github.com/backsoul/gamebot/pkg/models"
)

// MaxWrongGuesses fallos permitidos antes de perder la partida
const MaxWrongGuesses = 6

// Errores de entrada del jugador en el juego de palabras
var (
	ErrInvalidLetter  = errors.New("letra inválida")
	ErrAlreadyGuessed = errors.New("letra ya intentada")
)

// LetterResult resultado de intentar una letra
type LetterResult int

const (
	LetterHit LetterResult = iota
	LetterMiss
	WordCompleted
	WordFailed
)

// NewWordGuess crea el estado inicial para una palabra; la palabra se
// guarda siempre en minúsculas
func NewWordGuess(entry models.WordEntry) *models.WordGuessState {
	return &models.WordGuessState{
		Word:            strings.ToLower(entry.Word),
		Hint:            entry.Hint,
		MaxWrongGuesses: MaxWrongGuesses,
	}
}

// SubmitLetter procesa una letra del usuario. La entrada debe
// normalizar a exactamente una letra a-z; las letras repetidas no
// modifican el contador de fallos.
func SubmitLetter(state *models.WordGuessState, input string) (LetterResult, error) {
	letter := strings.ToLower(strings.TrimSpace(input))
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		return LetterMiss, ErrInvalidLetter
	}
	if state.HasGuessed(letter) {
		return LetterMiss, ErrAlreadyGuessed
	}

	state.GuessedLetters = append(state.GuessedLetters, letter)

	if strings.Contains(state.Word, letter) {
		if isWordComplete(state.Word, state.GuessedLetters) {
			state.GameOver = true
			return WordCompleted, nil
		}
		return LetterHit, nil
	}

	state.WrongGuesses++
	if state.WrongGuesses >= state.MaxWrongGuesses {
		state.GameOver = true
		return WordFailed, nil
	}
	return LetterMiss, nil
}

func isWordComplete(word string, guessed []string) bool {
	for _, letter := range word {
		if !containsLetter(guessed, string(letter)) {
			return false
		}
	}
	return true
}

func containsLetter(letters []string, letter string) bool {
	for _, l := range letters {
		if l == letter {
			return true
		}
	}
	return false
}

// WordDisplay dibuja la palabra enmascarada: letras adivinadas en
// mayúsculas, las demás como guion bajo, separadas por espacios
func WordDisplay(word string, guessed []string) string {
	cells := make([]string, 0, len(word))
	for _, letter := range word {
		l := string(letter)
		if containsLetter(guessed, l) {
			cells = append(cells, strings.ToUpper(l))
		} else {
			cells = append(cells, "_")
		}
	}
	return strings.Join(cells, " ")
}

// WrongLetters letras intentadas que no están en la palabra, en orden
// de intento
func WrongLetters(state *models.WordGuessState) []string {
	var wrong []string
	for _, letter := range state.GuessedLetters {
		if !strings.Contains(state.Word, letter) {
			wrong = append(wrong, letter)
		}
	}
	return wrong
}

// FormatWordGuess dibuja el progreso como chat: palabra enmascarada,
// letras falladas y oportunidades restantes (texto ya localizado)
func FormatWordGuess(state *models.WordGuessState, chancesText string) string {
	wrong := strings.ToUpper(strings.Join(WrongLetters(state), " "))
	return fmt.Sprintf("%s\n\n❌ %s\n💔 %s",
		WordDisplay(state.Word, state.GuessedLetters), wrong, chancesText)
}
