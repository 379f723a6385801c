package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	t.Run("Cadenas idénticas", func(t *testing.T) {
		assert.Equal(t, 0, Levenshtein("kitten", "kitten"))
	})

	t.Run("Caso clásico kitten/sitting", func(t *testing.T) {
		assert.Equal(t, 3, Levenshtein("kitten", "sitting"))
	})

	t.Run("Cadena vacía contra no vacía", func(t *testing.T) {
		assert.Equal(t, 5, Levenshtein("", "perro"))
		assert.Equal(t, 5, Levenshtein("perro", ""))
	})

	t.Run("Opera sobre runas, no bytes", func(t *testing.T) {
		// Una sola sustitución aunque las runas ocupen varios bytes
		assert.Equal(t, 1, Levenshtein("café", "cafe"))
	})
}

func TestSimilarity(t *testing.T) {
	t.Run("Idénticas dan 1", func(t *testing.T) {
		assert.Equal(t, 1.0, Similarity("kitten", "kitten"))
	})

	t.Run("Dos vacías son idénticas", func(t *testing.T) {
		assert.Equal(t, 1.0, Similarity("", ""))
	})

	t.Run("kitten/sitting", func(t *testing.T) {
		// distancia 3 sobre longitud mayor 7
		assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.0001)
	})

	t.Run("Totalmente distintas dan 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Similarity("abc", "xyz"))
	})
}

func TestIsCloseEnough(t *testing.T) {
	t.Run("Error de tipeo menor califica", func(t *testing.T) {
		assert.True(t, IsCloseEnough("elephant", "elephnt", CloseEnoughThreshold))
	})

	t.Run("Palabras cortas nunca califican", func(t *testing.T) {
		assert.False(t, IsCloseEnough("ab", "ab", CloseEnoughThreshold))
		assert.False(t, IsCloseEnough("no", "not", CloseEnoughThreshold))
	})

	t.Run("Umbral estricto, no inclusivo", func(t *testing.T) {
		// similitud exactamente 0.8 no supera el umbral 0.8
		assert.False(t, IsCloseEnough("abcde", "abcdx", CloseEnoughThreshold))
	})

	t.Run("Palabras distintas no califican", func(t *testing.T) {
		assert.False(t, IsCloseEnough("shadow", "window", CloseEnoughThreshold))
	})
}
