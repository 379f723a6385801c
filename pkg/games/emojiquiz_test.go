package games

import (
	"testing"

	"github.com/backsoul/gamebot/pkg/models"
	"github.com/stretchr/testify/assert"
)

func newTestQuiz() *models.EmojiQuizState {
	return NewEmojiQuiz(models.EmojiQuestion{
		ID:     "en_test_1",
		Emoji:  "🦁👑",
		Answer: "The Lion King",
		Hint:   "A Disney classic",
	})
}

func TestSubmitEmojiAnswer(t *testing.T) {
	t.Run("Respuesta correcta ignora mayúsculas y espacios", func(t *testing.T) {
		state := newTestQuiz()
		assert.Equal(t, AnswerCorrect, SubmitEmojiAnswer(state, "  the lion king "))
		// Acertar no consume intentos
		assert.Zero(t, state.Attempts)
	})

	t.Run("Sin coincidencia difusa", func(t *testing.T) {
		// Una letra de diferencia sigue siendo incorrecta
		state := newTestQuiz()
		assert.Equal(t, AnswerWrongRetry, SubmitEmojiAnswer(state, "the lion kin"))
		assert.Equal(t, 1, state.Attempts)
	})

	t.Run("Tres fallos agotan los intentos", func(t *testing.T) {
		state := newTestQuiz()

		assert.Equal(t, AnswerWrongRetry, SubmitEmojiAnswer(state, "frozen"))
		assert.Equal(t, AnswerWrongRetry, SubmitEmojiAnswer(state, "aladdin"))
		assert.Equal(t, AnswerWrongExhausted, SubmitEmojiAnswer(state, "mulan"))
		assert.Equal(t, MaxQuizAttempts, state.Attempts)
	})

	t.Run("Acertar en el último intento", func(t *testing.T) {
		state := newTestQuiz()
		state.Attempts = 2

		assert.Equal(t, AnswerCorrect, SubmitEmojiAnswer(state, "the lion king"))
	})
}

func TestRemainingQuizAttempts(t *testing.T) {
	assert.Equal(t, 3, RemainingQuizAttempts(0, MaxQuizAttempts))
	assert.Equal(t, 1, RemainingQuizAttempts(2, MaxQuizAttempts))
}
