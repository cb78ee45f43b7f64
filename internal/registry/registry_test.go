package registry

import "testing"

func withClean(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := activities
	activities = make(map[string]Info)
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		activities = saved
		mu.Unlock()
	})
}

func TestListSortedByOrder(t *testing.T) {
	withClean(t)
	Register(Info{ID: "quiz", Order: 30})
	Register(Info{ID: "daily", Order: 10})
	Register(Info{ID: "b", Order: 20})
	Register(Info{ID: "a", Order: 20})

	got := List()
	expected := []string{"daily", "a", "b", "quiz"}
	if len(got) != len(expected) {
		t.Fatalf("List() returned %d items, expected %d", len(got), len(expected))
	}
	for i, id := range expected {
		if got[i].ID != id {
			t.Errorf("List()[%d].ID = %q, expected %q", i, got[i].ID, id)
		}
	}
}

func TestGetAndExists(t *testing.T) {
	withClean(t)
	Register(Info{ID: "game", Title: Title{EN: "Game", FR: "Jeu"}})

	if !Exists("game") {
		t.Error("Exists(game) = false")
	}
	if Exists("chess") {
		t.Error("Exists(chess) = true")
	}

	info, err := Get("game")
	if err != nil {
		t.Fatalf("Get(game) error: %v", err)
	}
	if info.Title.For("fr") != "Jeu" || info.Title.For("en") != "Game" {
		t.Errorf("titles = %+v", info.Title)
	}

	if _, err := Get("chess"); err == nil {
		t.Error("Get(chess) expected error")
	}
}

func TestTitleFallsBackToEnglish(t *testing.T) {
	title := Title{EN: "Quiz"}
	if got := title.For("fr"); got != "Quiz" {
		t.Errorf("For(fr) = %q, expected Quiz", got)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withClean(t)
	Register(Info{ID: "quiz"})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(Info{ID: "quiz"})
}
