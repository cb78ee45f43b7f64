// Package registry provides a global registry of learning activities.
// Activities register themselves in init() functions, allowing the CLI and
// the menu to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Title is an activity name in both interface languages.
type Title struct {
	EN string
	FR string
}

// For returns the title for lang ("en" or "fr"), falling back to English.
func (t Title) For(lang string) string {
	if lang == "fr" && t.FR != "" {
		return t.FR
	}
	return t.EN
}

// Info describes a registered activity.
type Info struct {
	// ID is the stable identifier used by the CLI and score storage.
	ID string
	// Order positions the activity in menus; lower comes first.
	Order   int
	Title   Title
	Summary string
	// Scored activities keep a per-round score history.
	Scored bool
}

var (
	activities = make(map[string]Info)
	mu         sync.RWMutex
)

// Register adds an activity. Typically called from an init() function.
// Panics if an activity with the same ID is already registered.
func Register(info Info) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: activity with empty id")
	}
	if _, exists := activities[info.ID]; exists {
		panic(fmt.Sprintf("registry: activity %q already registered", info.ID))
	}
	activities[info.ID] = info
}

// List returns all registered activities sorted by Order, then ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(activities))
	for _, info := range activities {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the activity registered under id.
func Get(id string) (Info, error) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := activities[id]
	if !ok {
		return Info{}, fmt.Errorf("registry: unknown activity %q", id)
	}
	return info, nil
}

// Exists checks if an activity with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := activities[id]
	return ok
}
