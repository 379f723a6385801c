package games

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/backsoul/gamebot/pkg/models"
)

// Errores de entrada del jugador en Tic Tac Toe
var (
	ErrInvalidPosition = errors.New("posición inválida")
	ErrPositionTaken   = errors.New("posición ocupada")
)

// TicTacToeOutcome resultado de aplicar una jugada completa (jugador +
// respuesta del bot). A lo sumo uno de los estados terminales se cumple.
type TicTacToeOutcome int

const (
	TicTacToeContinue TicTacToeOutcome = iota
	TicTacToePlayerWins
	TicTacToeBotWins
	TicTacToeTie
)

// Las 8 líneas ganadoras: 3 filas, 3 columnas, 2 diagonales
var winPatterns = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

var boardDigits = [9]string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣"}

// NewTicTacToe crea un tablero vacío; el jugador (X) mueve primero
func NewTicTacToe() *models.TicTacToeState {
	return &models.TicTacToeState{
		Board: make([]string, 9),
	}
}

// ApplyPlayerMove aplica la jugada del jugador en la posición 1-9 y, si
// la partida sigue, la respuesta del bot. El estado no se modifica
// cuando la entrada es inválida.
func ApplyPlayerMove(state *models.TicTacToeState, position int) (TicTacToeOutcome, error) {
	if position < 1 || position > 9 {
		return TicTacToeContinue, ErrInvalidPosition
	}
	index := position - 1
	if state.Board[index] != models.MarkEmpty {
		return TicTacToeContinue, ErrPositionTaken
	}

	// Jugada del jugador
	state.Board[index] = models.MarkPlayer
	if CheckWin(state.Board, models.MarkPlayer) {
		state.GameOver = true
		state.Winner = models.MarkPlayer
		return TicTacToePlayerWins, nil
	}
	if isBoardFull(state.Board) {
		state.GameOver = true
		return TicTacToeTie, nil
	}

	// Respuesta del bot
	botIndex := bestBotMove(state.Board)
	state.Board[botIndex] = models.MarkBot
	if CheckWin(state.Board, models.MarkBot) {
		state.GameOver = true
		state.Winner = models.MarkBot
		return TicTacToeBotWins, nil
	}
	if isBoardFull(state.Board) {
		state.GameOver = true
		return TicTacToeTie, nil
	}

	return TicTacToeContinue, nil
}

// CheckWin indica si la marca completa alguna de las 8 líneas
func CheckWin(board []string, mark string) bool {
	for _, pattern := range winPatterns {
		if board[pattern[0]] == mark && board[pattern[1]] == mark && board[pattern[2]] == mark {
			return true
		}
	}
	return false
}

func isBoardFull(board []string) bool {
	for _, cell := range board {
		if cell == models.MarkEmpty {
			return false
		}
	}
	return true
}

// bestBotMove heurística voraz de un nivel: ganar, bloquear, centro,
// esquina al azar, cualquiera al azar. No es minimax completo.
func bestBotMove(board []string) int {
	available := emptyCells(board)

	// Ganar si es posible
	for _, move := range available {
		board[move] = models.MarkBot
		wins := CheckWin(board, models.MarkBot)
		board[move] = models.MarkEmpty
		if wins {
			return move
		}
	}

	// Bloquear la amenaza del jugador
	for _, move := range available {
		board[move] = models.MarkPlayer
		wins := CheckWin(board, models.MarkPlayer)
		board[move] = models.MarkEmpty
		if wins {
			return move
		}
	}

	// Tomar el centro
	if board[4] == models.MarkEmpty {
		return 4
	}

	// Tomar una esquina al azar
	var corners []int
	for _, corner := range []int{0, 2, 6, 8} {
		if board[corner] == models.MarkEmpty {
			corners = append(corners, corner)
		}
	}
	if len(corners) > 0 {
		return corners[rand.Intn(len(corners))]
	}

	// Cualquier celda libre
	return available[rand.Intn(len(available))]
}

func emptyCells(board []string) []int {
	var cells []int
	for i, cell := range board {
		if cell == models.MarkEmpty {
			cells = append(cells, i)
		}
	}
	return cells
}

// FormatBoard dibuja el tablero como chat: celdas libres con su número,
// ❌ para el jugador y ⭕ para el bot
func FormatBoard(board []string) string {
	cells := make([]string, 9)
	for i, cell := range board {
		switch cell {
		case models.MarkPlayer:
			cells[i] = "❌"
		case models.MarkBot:
			cells[i] = "⭕"
		default:
			cells[i] = boardDigits[i]
		}
	}

	rows := []string{
		cells[0] + cells[1] + cells[2],
		cells[3] + cells[4] + cells[5],
		cells[6] + cells[7] + cells[8],
	}
	return strings.Join(rows, "\n")
}
