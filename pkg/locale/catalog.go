package locale

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"sync"

	"github.com/backsoul/gamebot/pkg/models"
)

// DefaultLocale idioma de respaldo cuando el pedido no existe
const DefaultLocale = "en"

// Catalog catálogo de mensajes y bancos de preguntas por idioma.
// Seguro para uso concurrente: la recarga desde archivo reemplaza los
// datos bajo el lock de escritura.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
	emoji    map[string][]models.EmojiQuestion
	words    map[string][]models.WordEntry
	riddles  map[string][]models.Riddle
}

// NewCatalog crea el catálogo con los datos integrados (en/fr)
func NewCatalog() *Catalog {
	return &Catalog{
		messages: builtinMessages(),
		emoji:    builtinEmojiQuestions(),
		words:    builtinWords(),
		riddles:  builtinRiddles(),
	}
}

// Translate busca la clave en el idioma pedido con fallback
// determinista: idioma pedido → idioma por defecto → la clave misma.
// Nunca falla.
func (c *Catalog) Translate(key, loc string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if msgs, ok := c.messages[loc]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := c.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Replace sustituye un marcador {nombre} dentro de un mensaje
func Replace(message, name, value string) string {
	return strings.ReplaceAll(message, "{"+name+"}", value)
}

// HelpMessage arma la ayuda: comandos fijos más los juegos habilitados
func (c *Catalog) HelpMessage(loc string, gameSettings []models.GameSetting) string {
	help := c.Translate("help", loc) + "\n\n"
	for _, game := range gameSettings {
		if game.Enabled {
			help += fmt.Sprintf("%s - %s\n", game.Command, game.Description)
		}
	}
	return strings.TrimSpace(help)
}

// RandomEmojiQuestion elige al azar una pregunta no servida todavía;
// ok=false cuando el banco del idioma está agotado
func (c *Catalog) RandomEmojiQuestion(loc string, usedIDs []string) (models.EmojiQuestion, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pool, ok := c.emoji[loc]
	if !ok {
		pool = c.emoji[DefaultLocale]
	}

	var available []models.EmojiQuestion
	for _, q := range pool {
		if !containsID(usedIDs, q.ID) {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		return models.EmojiQuestion{}, false
	}
	return available[rand.Intn(len(available))], true
}

// RandomWord elige al azar una palabra no servida todavía
func (c *Catalog) RandomWord(loc string, usedIDs []string) (models.WordEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pool, ok := c.words[loc]
	if !ok {
		pool = c.words[DefaultLocale]
	}

	var available []models.WordEntry
	for _, w := range pool {
		if !containsID(usedIDs, w.ID) {
			available = append(available, w)
		}
	}
	if len(available) == 0 {
		return models.WordEntry{}, false
	}
	return available[rand.Intn(len(available))], true
}

// RandomRiddle elige al azar un acertijo no servido todavía
func (c *Catalog) RandomRiddle(loc string, usedIDs []string) (models.Riddle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pool, ok := c.riddles[loc]
	if !ok {
		pool = c.riddles[DefaultLocale]
	}

	var available []models.Riddle
	for _, r := range pool {
		if !containsID(usedIDs, r.ID) {
			available = append(available, r)
		}
	}
	if len(available) == 0 {
		return models.Riddle{}, false
	}
	return available[rand.Intn(len(available))], true
}

// PoolSize cantidad de preguntas de un juego para un idioma
func (c *Catalog) PoolSize(kind models.GameKind, loc string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch kind {
	case models.GameEmojiQuiz:
		return len(c.emoji[loc])
	case models.GameWordGuess:
		return len(c.words[loc])
	case models.GameRiddle:
		return len(c.riddles[loc])
	}
	return 0
}

// LoadFromFile recarga el catálogo desde un archivo JSON. Las secciones
// presentes en el archivo reemplazan a las integradas; las ausentes se
// conservan.
func (c *Catalog) LoadFromFile(filePath string) error {
	log.Printf("📂 Cargando catálogo desde: %s", filePath)

	jsonData, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error leyendo archivo de catálogo: %w", err)
	}

	var data models.CatalogData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("error parseando catálogo: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for loc, msgs := range data.Messages {
		if c.messages[loc] == nil {
			c.messages[loc] = make(map[string]string)
		}
		for key, msg := range msgs {
			c.messages[loc][key] = msg
		}
	}
	for loc, pool := range data.EmojiQuestions {
		c.emoji[loc] = pool
	}
	for loc, pool := range data.Words {
		c.words[loc] = pool
	}
	for loc, pool := range data.Riddles {
		c.riddles[loc] = pool
	}

	log.Println("✅ Catálogo recargado exitosamente")
	return nil
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
