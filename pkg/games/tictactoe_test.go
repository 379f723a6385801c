package games

import (
	"testing"

	"github.com/backsoul/gamebot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func board(cells ...string) []string {
	b := make([]string, 9)
	copy(b, cells)
	return b
}

func TestApplyPlayerMoveValidation(t *testing.T) {
	t.Run("Posición fuera de rango", func(t *testing.T) {
		state := NewTicTacToe()
		_, err := ApplyPlayerMove(state, 0)
		assert.ErrorIs(t, err, ErrInvalidPosition)

		_, err = ApplyPlayerMove(state, 10)
		assert.ErrorIs(t, err, ErrInvalidPosition)

		// El tablero no cambió
		assert.Equal(t, make([]string, 9), state.Board)
	})

	t.Run("Posición ocupada", func(t *testing.T) {
		state := NewTicTacToe()
		state.Board[0] = models.MarkBot

		_, err := ApplyPlayerMove(state, 1)
		assert.ErrorIs(t, err, ErrPositionTaken)
	})
}

func TestApplyPlayerMoveOutcomes(t *testing.T) {
	t.Run("El jugador gana y el bot no responde", func(t *testing.T) {
		state := &models.TicTacToeState{
			Board: board(
				models.MarkPlayer, models.MarkPlayer, models.MarkEmpty,
				models.MarkBot, models.MarkBot, models.MarkEmpty,
				models.MarkEmpty, models.MarkEmpty, models.MarkEmpty,
			),
		}

		outcome, err := ApplyPlayerMove(state, 3)
		require.NoError(t, err)
		assert.Equal(t, TicTacToePlayerWins, outcome)
		assert.True(t, state.GameOver)
		assert.Equal(t, models.MarkPlayer, state.Winner)

		// Tras ganar el jugador, el bot no jugó
		assert.Equal(t, models.MarkEmpty, state.Board[5])
	})

	t.Run("El bot completa su línea y gana", func(t *testing.T) {
		// X X _        O O _
		// O O _   y el jugador juega en 9: el bot gana en 6
		state := &models.TicTacToeState{
			Board: board(
				models.MarkPlayer, models.MarkPlayer, models.MarkBot,
				models.MarkBot, models.MarkBot, models.MarkEmpty,
				models.MarkPlayer, models.MarkEmpty, models.MarkEmpty,
			),
		}

		outcome, err := ApplyPlayerMove(state, 9)
		require.NoError(t, err)
		assert.Equal(t, TicTacToeBotWins, outcome)
		assert.True(t, state.GameOver)
		assert.Equal(t, models.MarkBot, state.Winner)
		assert.Equal(t, models.MarkBot, state.Board[5])
	})

	t.Run("Empate al llenar el tablero", func(t *testing.T) {
		// X O X
		// X O O
		// O X _   el jugador llena la última celda sin líneas
		state := &models.TicTacToeState{
			Board: board(
				models.MarkPlayer, models.MarkBot, models.MarkPlayer,
				models.MarkPlayer, models.MarkBot, models.MarkBot,
				models.MarkBot, models.MarkPlayer, models.MarkEmpty,
			),
		}

		outcome, err := ApplyPlayerMove(state, 9)
		require.NoError(t, err)
		assert.Equal(t, TicTacToeTie, outcome)
		assert.True(t, state.GameOver)
		assert.Equal(t, models.MarkEmpty, state.Winner)
	})
}

func TestBotHeuristics(t *testing.T) {
	t.Run("El bot bloquea la amenaza del jugador", func(t *testing.T) {
		// El jugador tiene 1 y 2; juega 5 y amenaza la fila superior.
		// El bot no puede ganar y debe bloquear en 3.
		state := &models.TicTacToeState{
			Board: board(
				models.MarkPlayer, models.MarkPlayer, models.MarkEmpty,
				models.MarkBot, models.MarkEmpty, models.MarkEmpty,
				models.MarkEmpty, models.MarkEmpty, models.MarkEmpty,
			),
		}

		outcome, err := ApplyPlayerMove(state, 5)
		require.NoError(t, err)
		assert.Equal(t, TicTacToeContinue, outcome)
		assert.Equal(t, models.MarkBot, state.Board[2])
	})

	t.Run("Ganar tiene prioridad sobre bloquear", func(t *testing.T) {
		// El jugador amenaza la fila superior, pero el bot puede cerrar
		// la fila inferior en 9 y lo prefiere antes que bloquear
		state := &models.TicTacToeState{
			Board: board(
				models.MarkPlayer, models.MarkEmpty, models.MarkEmpty,
				models.MarkEmpty, models.MarkEmpty, models.MarkEmpty,
				models.MarkBot, models.MarkBot, models.MarkEmpty,
			),
		}

		outcome, err := ApplyPlayerMove(state, 2)
		require.NoError(t, err)
		assert.Equal(t, TicTacToeBotWins, outcome)
		assert.Equal(t, models.MarkBot, state.Board[8])
	})

	t.Run("Sin amenazas el bot toma el centro", func(t *testing.T) {
		state := NewTicTacToe()

		outcome, err := ApplyPlayerMove(state, 1)
		require.NoError(t, err)
		assert.Equal(t, TicTacToeContinue, outcome)
		assert.Equal(t, models.MarkBot, state.Board[4])
	})

	t.Run("Con el centro ocupado toma una esquina", func(t *testing.T) {
		// El jugador abre por el centro; sin amenazas el bot va a esquina
		state := NewTicTacToe()

		_, err := ApplyPlayerMove(state, 5)
		require.NoError(t, err)

		corners := []string{state.Board[0], state.Board[2], state.Board[6], state.Board[8]}
		assert.Contains(t, corners, models.MarkBot)
	})
}

// TestRandomPlaythroughs juega partidas completas con jugadas al azar y
// verifica las propiedades que deben cumplirse siempre: marcas
// alternadas, a lo sumo un resultado terminal y estado congelado al
// terminar
func TestRandomPlaythroughs(t *testing.T) {
	for game := 0; game < 50; game++ {
		state := NewTicTacToe()
		var outcome TicTacToeOutcome

		for position := 1; position <= 9 && !state.GameOver; position++ {
			var err error
			outcome, err = ApplyPlayerMove(state, position)
			if err != nil {
				// Celda ocupada por el bot, probar la siguiente
				continue
			}

			players, bots := countMarks(state.Board)
			diff := players - bots
			require.Truef(t, diff == 0 || diff == 1,
				"marcas desbalanceadas: %d X contra %d O", players, bots)
		}

		if state.GameOver {
			assert.Contains(t,
				[]TicTacToeOutcome{TicTacToePlayerWins, TicTacToeBotWins, TicTacToeTie},
				outcome)
			if outcome == TicTacToeTie {
				assert.Equal(t, models.MarkEmpty, state.Winner)
			}
		}
	}
}

func countMarks(board []string) (players, bots int) {
	for _, cell := range board {
		switch cell {
		case models.MarkPlayer:
			players++
		case models.MarkBot:
			bots++
		}
	}
	return players, bots
}

func TestCheckWin(t *testing.T) {
	cases := []struct {
		name  string
		cells [3]int
	}{
		{"Fila superior", [3]int{0, 1, 2}},
		{"Columna central", [3]int{1, 4, 7}},
		{"Diagonal principal", [3]int{0, 4, 8}},
		{"Diagonal inversa", [3]int{2, 4, 6}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := make([]string, 9)
			for _, i := range tc.cells {
				b[i] = models.MarkPlayer
			}
			assert.True(t, CheckWin(b, models.MarkPlayer))
			assert.False(t, CheckWin(b, models.MarkBot))
		})
	}

	t.Run("Tablero vacío no gana nadie", func(t *testing.T) {
		assert.False(t, CheckWin(make([]string, 9), models.MarkPlayer))
	})
}

func TestFormatBoard(t *testing.T) {
	t.Run("Tablero vacío muestra los números", func(t *testing.T) {
		rendered := FormatBoard(make([]string, 9))
		assert.Equal(t, "1️⃣2️⃣3️⃣\n4️⃣5️⃣6️⃣\n7️⃣8️⃣9️⃣", rendered)
	})

	t.Run("Marcas del jugador y del bot", func(t *testing.T) {
		b := make([]string, 9)
		b[0] = models.MarkPlayer
		b[4] = models.MarkBot
		rendered := FormatBoard(b)
		assert.Equal(t, "❌2️⃣3️⃣\n4️⃣⭕6️⃣\n7️⃣8️⃣9️⃣", rendered)
	})
}
