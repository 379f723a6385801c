package games

import (
	"testing"

	"github.com/backsoul/gamebot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWord() *models.WordGuessState {
	return NewWordGuess(models.WordEntry{
		ID:   "word_test_1",
		Word: "Sol",
		Hint: "Estrella del sistema",
	})
}

func TestNewWordGuess(t *testing.T) {
	state := newTestWord()

	// La palabra se guarda en minúsculas
	assert.Equal(t, "sol", state.Word)
	assert.Equal(t, MaxWrongGuesses, state.MaxWrongGuesses)
	assert.Empty(t, state.GuessedLetters)
	assert.Zero(t, state.WrongGuesses)
}

func TestSubmitLetter(t *testing.T) {
	t.Run("Entrada inválida no modifica el estado", func(t *testing.T) {
		state := newTestWord()

		for _, input := range []string{"", "ab", "1", "!", "ñ"} {
			_, err := SubmitLetter(state, input)
			assert.ErrorIs(t, err, ErrInvalidLetter)
		}
		assert.Empty(t, state.GuessedLetters)
		assert.Zero(t, state.WrongGuesses)
	})

	t.Run("Mayúsculas y espacios se normalizan", func(t *testing.T) {
		state := newTestWord()

		result, err := SubmitLetter(state, "  S ")
		require.NoError(t, err)
		assert.Equal(t, LetterHit, result)
		assert.Equal(t, []string{"s"}, state.GuessedLetters)
	})

	t.Run("Letra repetida no cuenta como fallo", func(t *testing.T) {
		state := newTestWord()

		result, err := SubmitLetter(state, "z")
		require.NoError(t, err)
		assert.Equal(t, LetterMiss, result)
		assert.Equal(t, 1, state.WrongGuesses)

		_, err = SubmitLetter(state, "z")
		assert.ErrorIs(t, err, ErrAlreadyGuessed)
		assert.Equal(t, 1, state.WrongGuesses)
	})

	t.Run("Completar la palabra termina la partida", func(t *testing.T) {
		state := newTestWord()

		for _, letter := range []string{"s", "o"} {
			result, err := SubmitLetter(state, letter)
			require.NoError(t, err)
			assert.Equal(t, LetterHit, result)
		}

		result, err := SubmitLetter(state, "l")
		require.NoError(t, err)
		assert.Equal(t, WordCompleted, result)
		assert.True(t, state.GameOver)
	})

	t.Run("Seis fallos distintos pierden la partida", func(t *testing.T) {
		state := newTestWord()

		wrongLetters := []string{"a", "b", "c", "d", "e", "f"}
		for i, letter := range wrongLetters[:5] {
			result, err := SubmitLetter(state, letter)
			require.NoError(t, err)
			assert.Equal(t, LetterMiss, result)
			assert.Equal(t, i+1, state.WrongGuesses)
		}

		result, err := SubmitLetter(state, wrongLetters[5])
		require.NoError(t, err)
		assert.Equal(t, WordFailed, result)
		assert.True(t, state.GameOver)
		assert.Equal(t, MaxWrongGuesses, state.WrongGuesses)
	})
}

func TestWordDisplay(t *testing.T) {
	t.Run("Sin letras adivinadas", func(t *testing.T) {
		assert.Equal(t, "_ _ _", WordDisplay("sol", nil))
	})

	t.Run("Letras adivinadas en mayúscula", func(t *testing.T) {
		assert.Equal(t, "S _ L", WordDisplay("sol", []string{"s", "l"}))
	})

	t.Run("Letra repetida en la palabra se revela completa", func(t *testing.T) {
		assert.Equal(t, "E _ E _ _ _ _ _", WordDisplay("elephant", []string{"e"}))
	})
}

func TestFormatWordGuess(t *testing.T) {
	state := newTestWord()
	_, err := SubmitLetter(state, "s")
	require.NoError(t, err)
	_, err = SubmitLetter(state, "x")
	require.NoError(t, err)

	rendered := FormatWordGuess(state, "5 oportunidades")
	assert.Equal(t, "S _ _\n\n❌ X\n💔 5 oportunidades", rendered)
}
