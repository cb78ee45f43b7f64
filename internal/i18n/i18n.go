// Package i18n holds the interface strings in English and French.
package i18n

import (
	"fmt"
	"strings"
)

// Lang is an interface language.
type Lang string

const (
	EN Lang = "en"
	FR Lang = "fr"
)

// Parse accepts "en" or "fr" in any case.
func Parse(s string) (Lang, error) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case EN:
		return EN, nil
	case FR:
		return FR, nil
	}
	return EN, fmt.Errorf("i18n: unknown language %q", s)
}

// Toggle returns the other language.
func (l Lang) Toggle() Lang {
	if l == FR {
		return EN
	}
	return FR
}

// String returns the upper-case language code shown in the header.
func (l Lang) String() string {
	return strings.ToUpper(string(l))
}

// T returns the message for key, falling back to English and then to the
// key itself.
func (l Lang) T(key string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	if l == FR && m.fr != "" {
		return m.fr
	}
	return m.en
}

// Tf formats the message for key with args.
func (l Lang) Tf(key string, args ...any) string {
	return fmt.Sprintf(l.T(key), args...)
}

type message struct {
	en, fr string
}

var messages = map[string]message{
	"title":           {"French Learning Adventure", "Aventure d’apprentissage du français"},
	"home":            {"Home", "Accueil"},
	"welcome":         {"Welcome", "Bienvenue"},
	"welcome.banner":  {"Welcome! Ready to embark on your French learning journey.", "Bienvenue ! Prêt à embarquer pour votre aventure en français."},
	"welcome.choose":  {"Choose a module below to start learning.", "Choisissez un module ci-dessous pour commencer à apprendre."},
	"welcome.saved":   {"Your progress is saved locally and will adapt to your learning pace.", "Vos progrès sont enregistrés localement et s’adapteront à votre rythme d’apprentissage."},
	"total":           {"Total Score: %d", "Score total : %d"},
	"score":           {"Score: %d", "Score : %d"},
	"best":            {"Best: %d", "Record : %d"},
	"reset.score":     {"Reset Score", "Réinitialiser le score"},
	"score.reset":     {"Score reset.", "Score réinitialisé."},
	"listen":          {"Listen", "Écouter"},
	"learned":         {"Learned", "Appris"},
	"marked":          {"Marked", "Marqué"},
	"gotit":           {"Got it", "Compris"},
	"flip":            {"Flip", "Retourner"},
	"card":            {"Card %d/%d", "Carte %d/%d"},
	"known":           {"Known: %d/%d", "Connues : %d/%d"},
	"translate":       {"Translate:", "Traduire :"},
	"question":        {"Question %d/%d", "Question %d/%d"},
	"quiz.done":       {"Quiz Complete!", "Quiz terminé !"},
	"your.score":      {"Your score: %d/%d", "Votre score : %d/%d"},
	"dictation.title": {"Listen and type the phrase", "Écoutez et tapez la phrase"},
	"dictation.done":  {"Dictation Complete!", "Dictée terminée !"},
	"play":            {"Play", "Jouer"},
	"type.here":       {"Type here...", "Tapez ici..."},
	"submit":          {"Submit", "Valider"},
	"correct":         {"Correct", "Correct"},
	"incorrect":       {"Incorrect", "Incorrect"},
	"answer.was":      {"Answer: %s", "Réponse : %s"},
	"game.help":       {"Use arrow keys or drag with the mouse to move.", "Utilisez les flèches ou faites glisser la souris pour bouger."},
	"game.over":       {"Game Over! Final score: %d", "Fin du jeu ! Score final : %d"},
	"repeat":          {"Repeat", "Répéter"},
	"slow":            {"Slow", "Lent"},
	"mute":            {"Mute", "Silencieux"},
	"unmute":          {"Unmute", "Son"},
	"speech.off":      {"Speech synthesis is not available on this system.", "La synthèse vocale n’est pas prise en charge sur ce système."},
	"scores":          {"High Scores", "Meilleurs scores"},
	"no.scores":       {"No scores yet. Play a round!", "Pas encore de score. Jouez une partie !"},
	"back":            {"back", "retour"},
	"quit":            {"quit", "quitter"},
	"select":          {"select", "choisir"},
	"navigate":        {"navigate", "naviguer"},
	"lang":            {"language", "langue"},
	"theme":           {"theme", "thème"},
	"col.word":        {"French", "Français"},
	"col.ipa":         {"IPA", "API"},
	"col.en":          {"English", "Anglais"},
	"col.level":       {"Level", "Niveau"},
	"col.learned":     {"Learned", "Appris"},
	"col.rank":        {"#", "#"},
	"col.score":       {"Score", "Score"},
	"col.date":        {"Date", "Date"},
	"col.profile":     {"Profile", "Profil"},
	"empty":           {"No words in the catalogue.", "Aucun mot dans le catalogue."},
}
