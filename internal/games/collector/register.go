package collector

import "github.com/vovakirdan/french-arcade/internal/registry"

// ID identifies the game in the registry and in score storage.
const ID = "game"

func init() {
	registry.Register(registry.Info{
		ID:      ID,
		Order:   50,
		Title:   registry.Title{EN: "Game", FR: "Jeu"},
		Summary: "Steer the collector and reveal the words of your daily list",
		Scored:  true,
	})
}
