package games

import (
	"strings"

	"github.com/backsoul/gamebot/pkg/models"
)

// MaxQuizAttempts intentos permitidos en quiz de emojis y acertijos
const MaxQuizAttempts = 3

// AnswerResult resultado de evaluar una respuesta de quiz o acertijo
type AnswerResult int

const (
	AnswerCorrect AnswerResult = iota
	AnswerWrongRetry
	AnswerWrongExhausted
)

// NewEmojiQuiz crea el estado inicial para una pregunta de emojis
func NewEmojiQuiz(question models.EmojiQuestion) *models.EmojiQuizState {
	return &models.EmojiQuizState{
		Question:    question,
		MaxAttempts: MaxQuizAttempts,
	}
}

// SubmitEmojiAnswer evalúa la respuesta del usuario. La comparación es
// exacta (sin mayúsculas ni espacios alrededor): las respuestas de
// emojis son palabras sueltas, no hay coincidencia difusa.
func SubmitEmojiAnswer(state *models.EmojiQuizState, input string) AnswerResult {
	if normalizeAnswer(input) == normalizeAnswer(state.Question.Answer) {
		return AnswerCorrect
	}

	state.Attempts++
	if state.Attempts >= state.MaxAttempts {
		return AnswerWrongExhausted
	}
	return AnswerWrongRetry
}

// RemainingQuizAttempts intentos que le quedan al usuario
func RemainingQuizAttempts(attempts, maxAttempts int) int {
	return maxAttempts - attempts
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
