package games

import (
	"testing"

	"github.com/backsoul/gamebot/pkg/models"
	"github.com/stretchr/testify/assert"
)

func newTestRiddle() *models.RiddleState {
	return NewRiddle(models.Riddle{
		ID:       "riddle_test_1",
		Question: "What has keys but can't open locks?",
		Answer:   "A piano",
	})
}

func TestSubmitRiddleAnswer(t *testing.T) {
	t.Run("Respuesta exacta", func(t *testing.T) {
		state := newTestRiddle()
		assert.Equal(t, AnswerCorrect, SubmitRiddleAnswer(state, "a piano"))
		assert.Zero(t, state.Attempts)
	})

	t.Run("Acepta errores de tipeo menores", func(t *testing.T) {
		state := newTestRiddle()
		assert.Equal(t, AnswerCorrect, SubmitRiddleAnswer(state, "a pianno"))
	})

	t.Run("Respuesta lejana consume un intento", func(t *testing.T) {
		state := newTestRiddle()
		assert.Equal(t, AnswerWrongRetry, SubmitRiddleAnswer(state, "a guitar"))
		assert.Equal(t, 1, state.Attempts)
	})

	t.Run("Tres fallos agotan los intentos", func(t *testing.T) {
		state := newTestRiddle()

		assert.Equal(t, AnswerWrongRetry, SubmitRiddleAnswer(state, "door"))
		assert.Equal(t, AnswerWrongRetry, SubmitRiddleAnswer(state, "map"))
		assert.Equal(t, AnswerWrongExhausted, SubmitRiddleAnswer(state, "keyboard"))
		assert.Equal(t, MaxQuizAttempts, state.Attempts)
	})
}
