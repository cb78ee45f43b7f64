package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(42, 22)

	if s.Width() != 42 {
		t.Errorf("Width() = %d, expected 42", s.Width())
	}
	if s.Height() != 22 {
		t.Errorf("Height() = %d, expected 22", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.CellAt(x, y); c != blank {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '●', ColorTarget)
	if s.Get(5, 5) != '●' {
		t.Errorf("Get(5, 5) = %q, expected '●'", s.Get(5, 5))
	}
	if s.CellAt(5, 5).Color != ColorTarget {
		t.Errorf("CellAt(5, 5).Color = %v, expected target", s.CellAt(5, 5).Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		s.DrawText(0, y, "XXXXXXXXXX", ColorBody)
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.CellAt(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.CellAt(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Ça va", ColorText)

	for i, ch := range []rune("Ça va") {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorText)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		text  string
		width int
		x     int
	}{
		{"Hi", 20, 9},
		{"Fin", 20, 8},
		{"Dictée", 20, 7},
	}

	for _, tt := range tests {
		s := NewScreen(tt.width, 3)
		s.DrawTextCentered(1, tt.text, ColorText)
		first := []rune(tt.text)[0]
		if s.Get(tt.x, 1) != first {
			t.Errorf("DrawTextCentered(%q): expected %q at x=%d, row = %q", tt.text, first, tt.x, s.Row(1))
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r, ColorBorder)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge broken at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge broken at y=%d", y)
		}
	}
	if s.CellAt(1, 1).Color != ColorBorder {
		t.Error("box should carry the border colour")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorBody)
	s.DrawText(0, 2, "CCCCC", ColorHead)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenRenderGroupsRuns(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "ab", ColorBody)
	s.SetColored(2, 0, '@', ColorHead)
	s.SetColored(4, 0, '*', ColorTarget)

	var calls []string
	out := s.Render(func(c Color, text string) string {
		calls = append(calls, text)
		return "<" + text + ">"
	})

	expected := "<ab><@> <*> "
	if out != expected {
		t.Errorf("Render() = %q, expected %q", out, expected)
	}
	if len(calls) != 3 {
		t.Errorf("paint called %d times, expected 3 (default runs are left alone)", len(calls))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorText)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if got := s.Row(-1); got != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}
