package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/backsoul/gamebot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	catalog := NewCatalog()

	t.Run("Idioma pedido", func(t *testing.T) {
		assert.Equal(t, "Langue changée en Français ✅", catalog.Translate("languageChanged", "fr"))
	})

	t.Run("Idioma desconocido cae al idioma por defecto", func(t *testing.T) {
		assert.Equal(t, "Language changed to English ✅", catalog.Translate("languageChanged", "de"))
	})

	t.Run("Clave desconocida se devuelve tal cual", func(t *testing.T) {
		assert.Equal(t, "noSuchKey", catalog.Translate("noSuchKey", "en"))
	})
}

func TestReplace(t *testing.T) {
	msg := Replace("{attempts} attempts left", "attempts", "2")
	assert.Equal(t, "2 attempts left", msg)

	// Marcador ausente no modifica el mensaje
	assert.Equal(t, "hello", Replace("hello", "attempts", "2"))
}

func TestHelpMessage(t *testing.T) {
	catalog := NewCatalog()

	settings := []models.GameSetting{
		{GameName: models.GameTicTacToe, Command: ".tictactoe", Description: "Tic Tac Toe", Enabled: true},
		{GameName: models.GameEmojiQuiz, Command: ".emojiquiz", Description: "Emoji Quiz", Enabled: false},
	}

	help := catalog.HelpMessage("en", settings)
	assert.Contains(t, help, ".tictactoe - Tic Tac Toe")
	// Los juegos deshabilitados no aparecen en la ayuda
	assert.NotContains(t, help, ".emojiquiz")
}

func TestRandomEmojiQuestion(t *testing.T) {
	catalog := NewCatalog()

	t.Run("Excluye las preguntas ya servidas", func(t *testing.T) {
		var used []string
		total := catalog.PoolSize(models.GameEmojiQuiz, "en")
		require.Equal(t, 10, total)

		seen := make(map[string]bool)
		for i := 0; i < total; i++ {
			q, ok := catalog.RandomEmojiQuestion("en", used)
			require.True(t, ok)
			assert.False(t, seen[q.ID], "pregunta repetida: %s", q.ID)
			seen[q.ID] = true
			used = append(used, q.ID)
		}

		// Banco agotado
		_, ok := catalog.RandomEmojiQuestion("en", used)
		assert.False(t, ok)
	})

	t.Run("Idioma desconocido usa el banco por defecto", func(t *testing.T) {
		q, ok := catalog.RandomEmojiQuestion("de", nil)
		require.True(t, ok)
		assert.Contains(t, q.ID, "en_")
	})
}

func TestRandomWordAndRiddle(t *testing.T) {
	catalog := NewCatalog()

	t.Run("Bancos integrados completos", func(t *testing.T) {
		assert.Equal(t, 10, catalog.PoolSize(models.GameWordGuess, "en"))
		assert.Equal(t, 10, catalog.PoolSize(models.GameWordGuess, "fr"))
		assert.Equal(t, 10, catalog.PoolSize(models.GameRiddle, "en"))
		assert.Equal(t, 10, catalog.PoolSize(models.GameRiddle, "fr"))
	})

	t.Run("Palabra agotada devuelve ok falso", func(t *testing.T) {
		var used []string
		for i := 0; i < 10; i++ {
			w, ok := catalog.RandomWord("fr", used)
			require.True(t, ok)
			used = append(used, w.ID)
		}
		_, ok := catalog.RandomWord("fr", used)
		assert.False(t, ok)
	})

	t.Run("Acertijo no repetido", func(t *testing.T) {
		r1, ok := catalog.RandomRiddle("en", nil)
		require.True(t, ok)
		r2, ok := catalog.RandomRiddle("en", []string{r1.ID})
		require.True(t, ok)
		assert.NotEqual(t, r1.ID, r2.ID)
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("Secciones presentes reemplazan, ausentes se conservan", func(t *testing.T) {
		catalog := NewCatalog()

		data := `{
			"messages": {"en": {"welcome": "Hi there!"}},
			"words": {"en": [{"id": "word_custom_1", "word": "tree", "hint": "It grows"}]}
		}`
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		require.NoError(t, catalog.LoadFromFile(path))

		// Mensaje reemplazado, el resto del idioma intacto
		assert.Equal(t, "Hi there!", catalog.Translate("welcome", "en"))
		assert.Equal(t, "Language changed to English ✅", catalog.Translate("languageChanged", "en"))

		// Banco de palabras reemplazado solo para el idioma presente
		assert.Equal(t, 1, catalog.PoolSize(models.GameWordGuess, "en"))
		assert.Equal(t, 10, catalog.PoolSize(models.GameWordGuess, "fr"))

		// Bancos ausentes intactos
		assert.Equal(t, 10, catalog.PoolSize(models.GameEmojiQuiz, "en"))
	})

	t.Run("Archivo inexistente", func(t *testing.T) {
		catalog := NewCatalog()
		assert.Error(t, catalog.LoadFromFile(filepath.Join(t.TempDir(), "missing.json")))
	})

	t.Run("JSON inválido", func(t *testing.T) {
		catalog := NewCatalog()
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
		assert.Error(t, catalog.LoadFromFile(path))
	})
}
