package locale

import "github.com/backsoul/gamebot/pkg/models"

// Datos integrados del catálogo. El contenido de usuario es en/fr; se
// puede reemplazar en caliente con LoadFromFile.

func builtinMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"welcome": "Hello! 👋\nChoose your language:\n🇫🇷 Type .fr for French\n🇺🇸 Type .en for English\n\nUse .help to see available commands",
			"languageChanged": "Language changed to English ✅",
			"unknownCommand":  "Unknown command. Type .help for available commands.",
			"help":            "Available commands:\n.fr - French\n.en - English",
			"ticTacToeStart":  "🎮 Tic Tac Toe Started!\nYou are X, I am O",
			"emojiQuizStart":  "🎯 Emoji Quiz Started!",
			"wordGuessStart":  "🔤 Word Guessing Started!",
			"riddleStart":     "🧩 Riddle Time!",
			"yourTurn":        "Your turn! Choose position (1-9):",
			"invalidPosition": "Invalid position. Choose 1-9.",
			"positionTaken":   "Position already taken. Choose another.",
			"youWin":          "You win! 🎉",
			"botWins":         "I win! 🤖",
			"tie":             "It's a tie! 🤝",
			"correct":         "Correct!",
			"wrong":           "Wrong!",
			"answer":          "Answer",
			"gameOver":        "Game Over!",
			"attemptsLeft":    "{attempts} attempts left",
			"guessWord":       "Guess the word:",
			"hint":            "Hint",
			"invalidLetter":   "Please enter a single letter.",
			"alreadyGuessed":  "You already guessed that letter.",
			"wordComplete":    "Word complete!",
			"word":            "Word",
			"chancesLeft":     "{chances} chances left",
			"noMoreQuestions": "No more questions available. Try again later!",
		},
		"fr": {
			"welcome": "Bonjou! 👋\nChwazi lang ou:\n🇫🇷 Tapez .fr pour Français\n🇺🇸 Tapez .en pour Anglais\n\nUtilisez .aide pour voir les commandes disponibles",
			"languageChanged": "Langue changée en Français ✅",
			"unknownCommand":  "Commande inconnue. Tapez .aide pour les commandes disponibles.",
			"help":            "Commandes disponibles:\n.fr - Français\n.en - Anglais",
			"ticTacToeStart":  "🎮 Tic Tac Toe Commencé!\nVous êtes X, je suis O",
			"emojiQuizStart":  "🎯 Quiz Emoji Commencé!",
			"wordGuessStart":  "🔤 Deviner le Mot Commencé!",
			"riddleStart":     "🧩 Temps des Devinettes!",
			"yourTurn":        "Votre tour! Choisissez position (1-9):",
			"invalidPosition": "Position invalide. Choisissez 1-9.",
			"positionTaken":   "Position déjà prise. Choisissez une autre.",
			"youWin":          "Vous gagnez! 🎉",
			"botWins":         "Je gagne! 🤖",
			"tie":             "Égalité! 🤝",
			"correct":         "Correct!",
			"wrong":           "Faux!",
			"answer":          "Réponse",
			"gameOver":        "Jeu terminé!",
			"attemptsLeft":    "{attempts} tentatives restantes",
			"guessWord":       "Devinez le mot:",
			"hint":            "Indice",
			"invalidLetter":   "Veuillez entrer une seule lettre.",
			"alreadyGuessed":  "Vous avez déjà deviné cette lettre.",
			"wordComplete":    "Mot complet!",
			"word":            "Mot",
			"chancesLeft":     "{chances} chances restantes",
			"noMoreQuestions": "Plus de questions disponibles. Réessayez plus tard!",
		},
	}
}

func builtinEmojiQuestions() map[string][]models.EmojiQuestion {
	return map[string][]models.EmojiQuestion{
		"en": {
			{ID: "en_1", Emoji: "🍕🍝🇮🇹", Answer: "italy", Hint: "Country known for pasta"},
			{ID: "en_2", Emoji: "☀️🏖️🏄‍♂️", Answer: "beach", Hint: "Place to surf"},
			{ID: "en_3", Emoji: "🚗💨⛽", Answer: "car", Hint: "Vehicle that needs gas"},
			{ID: "en_4", Emoji: "📱💬👥", Answer: "chat", Hint: "Talking with friends"},
			{ID: "en_5", Emoji: "🎵🎤🎧", Answer: "music", Hint: "What you listen to"},
			{ID: "en_6", Emoji: "🍎🥕🥗", Answer: "healthy", Hint: "Good for you"},
			{ID: "en_7", Emoji: "🏠🛏️😴", Answer: "sleep", Hint: "What you do in bed"},
			{ID: "en_8", Emoji: "📚✏️🎓", Answer: "study", Hint: "What students do"},
			{ID: "en_9", Emoji: "⚽🏟️🏆", Answer: "football", Hint: "Popular sport"},
			{ID: "en_10", Emoji: "🎂🎉🎈", Answer: "party", Hint: "Celebration time"},
		},
		"fr": {
			{ID: "fr_1", Emoji: "🍕🍝🇮🇹", Answer: "italie", Hint: "Pays connu pour les pâtes"},
			{ID: "fr_2", Emoji: "☀️🏖️🏄‍♂️", Answer: "plage", Hint: "Endroit pour surfer"},
			{ID: "fr_3", Emoji: "🚗💨⛽", Answer: "voiture", Hint: "Véhicule qui a besoin d'essence"},
			{ID: "fr_4", Emoji: "📱💬👥", Answer: "chat", Hint: "Parler avec des amis"},
			{ID: "fr_5", Emoji: "🎵🎤🎧", Answer: "musique", Hint: "Ce que vous écoutez"},
			{ID: "fr_6", Emoji: "🍎🥕🥗", Answer: "sain", Hint: "Bon pour vous"},
			{ID: "fr_7", Emoji: "🏠🛏️😴", Answer: "dormir", Hint: "Ce que vous faites au lit"},
			{ID: "fr_8", Emoji: "📚✏️🎓", Answer: "étudier", Hint: "Ce que font les étudiants"},
			{ID: "fr_9", Emoji: "⚽🏟️🏆", Answer: "football", Hint: "Sport populaire"},
			{ID: "fr_10", Emoji: "🎂🎉🎈", Answer: "fête", Hint: "Temps de célébration"},
		},
	}
}

func builtinWords() map[string][]models.WordEntry {
	return map[string][]models.WordEntry{
		"en": {
			{ID: "word_en_1", Word: "ELEPHANT", Hint: "Large African animal with trunk"},
			{ID: "word_en_2", Word: "RAINBOW", Hint: "Colorful arc in the sky"},
			{ID: "word_en_3", Word: "GUITAR", Hint: "Musical instrument with strings"},
			{ID: "word_en_4", Word: "BUTTERFLY", Hint: "Flying insect with colorful wings"},
			{ID: "word_en_5", Word: "MOUNTAIN", Hint: "Very high land formation"},
			{ID: "word_en_6", Word: "TREASURE", Hint: "Hidden valuable items"},
			{ID: "word_en_7", Word: "ADVENTURE", Hint: "Exciting journey or experience"},
			{ID: "word_en_8", Word: "CHOCOLATE", Hint: "Sweet brown treat"},
			{ID: "word_en_9", Word: "FRIENDSHIP", Hint: "Bond between friends"},
			{ID: "word_en_10", Word: "SUNSHINE", Hint: "Light from the sun"},
		},
		"fr": {
			{ID: "word_fr_1", Word: "ELEPHANT", Hint: "Grand animal africain avec une trompe"},
			{ID: "word_fr_2", Word: "ARCENCIEL", Hint: "Arc coloré dans le ciel"},
			{ID: "word_fr_3", Word: "GUITARE", Hint: "Instrument de musique à cordes"},
			{ID: "word_fr_4", Word: "PAPILLON", Hint: "Insecte volant aux ailes colorées"},
			{ID: "word_fr_5", Word: "MONTAGNE", Hint: "Formation terrestre très haute"},
			{ID: "word_fr_6", Word: "TRESOR", Hint: "Objets précieux cachés"},
			{ID: "word_fr_7", Word: "AVENTURE", Hint: "Voyage ou expérience passionnante"},
			{ID: "word_fr_8", Word: "CHOCOLAT", Hint: "Friandise brune sucrée"},
			{ID: "word_fr_9", Word: "AMITIE", Hint: "Lien entre amis"},
			{ID: "word_fr_10", Word: "SOLEIL", Hint: "Lumière du soleil"},
		},
	}
}

func builtinRiddles() map[string][]models.Riddle {
	return map[string][]models.Riddle{
		"en": {
			{ID: "riddle_en_1", Question: "I have keys but no locks. I have space but no room. You can enter but not go outside. What am I?", Answer: "keyboard"},
			{ID: "riddle_en_2", Question: "The more you take, the more you leave behind. What am I?", Answer: "footsteps"},
			{ID: "riddle_en_3", Question: "I am tall when I am young, and I am short when I am old. What am I?", Answer: "candle"},
			{ID: "riddle_en_4", Question: "What has hands but cannot clap?", Answer: "clock"},
			{ID: "riddle_en_5", Question: "What gets wet while drying?", Answer: "towel"},
			{ID: "riddle_en_6", Question: "I speak without a mouth and hear without ears. What am I?", Answer: "echo"},
			{ID: "riddle_en_7", Question: "What can travel around the world while staying in a corner?", Answer: "stamp"},
			{ID: "riddle_en_8", Question: "I have cities, but no houses. I have mountains, but no trees. What am I?", Answer: "map"},
			{ID: "riddle_en_9", Question: "What breaks but never falls, and what falls but never breaks?", Answer: "day and night"},
			{ID: "riddle_en_10", Question: "I am always hungry and will die if not fed, but whatever I touch will soon turn red. What am I?", Answer: "fire"},
		},
		"fr": {
			{ID: "riddle_fr_1", Question: "Plus on m'ôte, plus je grandis. Que suis-je?", Answer: "trou"},
			{ID: "riddle_fr_2", Question: "Je suis grand quand je suis jeune, et petit quand je suis vieux. Que suis-je?", Answer: "bougie"},
			{ID: "riddle_fr_3", Question: "Qu'est-ce qui a des dents mais ne peut pas mordre?", Answer: "peigne"},
			{ID: "riddle_fr_4", Question: "Je vole sans ailes et je pleure sans yeux. Que suis-je?", Answer: "nuage"},
			{ID: "riddle_fr_5", Question: "Plus on en prend, plus on en laisse. Que suis-je?", Answer: "pas"},
			{ID: "riddle_fr_6", Question: "Qu'est-ce qui se mouille en séchant?", Answer: "serviette"},
			{ID: "riddle_fr_7", Question: "Je parle sans bouche et j'entends sans oreilles. Que suis-je?", Answer: "écho"},
			{ID: "riddle_fr_8", Question: "Qu'est-ce qui peut voyager autour du monde en restant dans un coin?", Answer: "timbre"},
			{ID: "riddle_fr_9", Question: "J'ai des villes mais pas de maisons. J'ai des montagnes mais pas d'arbres. Que suis-je?", Answer: "carte"},
			{ID: "riddle_fr_10", Question: "Qu'est-ce qui se casse sans jamais tomber, et qu'est-ce qui tombe sans jamais se casser?", Answer: "jour et nuit"},
		},
	}
}
