package games

import "github.com/backsoul/gamebot/pkg/models"

// NewRiddle crea el estado inicial para un acertijo
func NewRiddle(riddle models.Riddle) *models.RiddleState {
	return &models.RiddleState{
		Riddle:      riddle,
		MaxAttempts: MaxQuizAttempts,
	}
}

// SubmitRiddleAnswer evalúa la respuesta del usuario. A diferencia del
// quiz de emojis acepta también respuestas suficientemente parecidas,
// para tolerar errores de tipeo en respuestas largas.
func SubmitRiddleAnswer(state *models.RiddleState, input string) AnswerResult {
	user := normalizeAnswer(input)
	correct := normalizeAnswer(state.Riddle.Answer)

	if user == correct || IsCloseEnough(user, correct, CloseEnoughThreshold) {
		return AnswerCorrect
	}

	state.Attempts++
	if state.Attempts >= state.MaxAttempts {
		return AnswerWrongExhausted
	}
	return AnswerWrongRetry
}
