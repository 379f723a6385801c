package games

import "unicode/utf8"

// CloseEnoughThreshold umbral de similitud para aceptar respuestas con
// errores de tipeo menores
const CloseEnoughThreshold = 0.8

// Levenshtein calcula la distancia de edición entre dos cadenas usando
// la tabla completa de programación dinámica (insertar/borrar/sustituir
// cuestan 1; sin transposiciones). Opera sobre runas, no bytes.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}

// Similarity devuelve un valor en [0,1]: 1 - distancia/longitudMayor.
// Dos cadenas vacías son idénticas (similitud 1).
func Similarity(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(Levenshtein(a, b))/float64(maxLen)
}

// IsCloseEnough acepta dos cadenas como "suficientemente parecidas" si
// superan el umbral. Las cadenas de menos de 3 runas nunca califican:
// evita coincidencias triviales entre palabras muy cortas.
func IsCloseEnough(a, b string, threshold float64) bool {
	if utf8.RuneCountInString(a) < 3 || utf8.RuneCountInString(b) < 3 {
		return false
	}
	return Similarity(a, b) > threshold
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
