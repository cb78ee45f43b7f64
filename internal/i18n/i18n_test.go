package i18n

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Lang
		wantErr bool
	}{
		{"en", EN, false},
		{"FR", FR, false},
		{" fr ", FR, false},
		{"de", EN, true},
		{"", EN, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToggle(t *testing.T) {
	if EN.Toggle() != FR || FR.Toggle() != EN {
		t.Error("Toggle does not alternate EN and FR")
	}
	if FR.String() != "FR" {
		t.Errorf("FR.String() = %q", FR.String())
	}
}

func TestTranslate(t *testing.T) {
	if got := EN.T("home"); got != "Home" {
		t.Errorf("EN home = %q", got)
	}
	if got := FR.T("home"); got != "Accueil" {
		t.Errorf("FR home = %q", got)
	}
	if got := FR.T("no.such.key"); got != "no.such.key" {
		t.Errorf("missing key = %q", got)
	}
	if got := FR.Tf("game.over", 7); got != "Fin du jeu ! Score final : 7" {
		t.Errorf("FR game.over = %q", got)
	}
}

func TestEveryMessageHasBothLanguages(t *testing.T) {
	for key, m := range messages {
		if strings.TrimSpace(m.en) == "" || strings.TrimSpace(m.fr) == "" {
			t.Errorf("message %q is missing a translation", key)
		}
		if strings.Count(m.en, "%") != strings.Count(m.fr, "%") {
			t.Errorf("message %q has mismatched format verbs", key)
		}
	}
}
