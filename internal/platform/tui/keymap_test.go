package tui

import (
	"testing"

	"github.com/vovakirdan/french-arcade/internal/core"
	"github.com/vovakirdan/french-arcade/internal/i18n"
)

func TestGameAction(t *testing.T) {
	km := NewKeyMap(i18n.EN)

	tests := []struct {
		key      string
		expected core.Action
	}{
		{"up", core.ActionUp},
		{"k", core.ActionUp},
		{"w", core.ActionUp},
		{"down", core.ActionDown},
		{"j", core.ActionDown},
		{"s", core.ActionDown},
		{"left", core.ActionLeft},
		{"h", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"r", core.ActionRepeat},
		{"S", core.ActionSlow},
		{"m", core.ActionMute},
		{"esc", core.ActionBack},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.GameAction(keyMsg(tt.key)); got != tt.expected {
				t.Errorf("GameAction(%q) = %v, expected %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestOption(t *testing.T) {
	km := NewKeyMap(i18n.FR)

	for i, k := range []string{"1", "2", "3", "4"} {
		got, ok := km.Option(keyMsg(k))
		if !ok || got != i {
			t.Errorf("Option(%q) = %d, %v, expected %d, true", k, got, ok, i)
		}
	}
	if _, ok := km.Option(keyMsg("5")); ok {
		t.Error("Option(5) matched")
	}
}

func TestThemeToggle(t *testing.T) {
	dark := ThemeByName("dark")
	if dark.Toggle().Name != "light" || dark.Toggle().Toggle().Name != "dark" {
		t.Error("Toggle() does not alternate dark and light")
	}
	if ThemeByName("neon").Name != "dark" {
		t.Error("unknown theme did not fall back to dark")
	}
}
