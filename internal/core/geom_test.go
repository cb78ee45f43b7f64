package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},
		{29, 29, true},
		{30, 30, false},
		{9, 15, false},
		{15, 9, false},
		{30, 15, false},
		{15, 30, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCellSize(t *testing.T) {
	tests := []struct {
		width, height, cols, rows int
		expected                  int
	}{
		{400, 400, 20, 20, 20},
		{400, 300, 20, 20, 15},
		{10, 10, 20, 20, 1},
		{100, 100, 0, 20, 1},
	}

	for _, tt := range tests {
		if got := CellSize(tt.width, tt.height, tt.cols, tt.rows); got != tt.expected {
			t.Errorf("CellSize(%d, %d, %d, %d) = %d, expected %d",
				tt.width, tt.height, tt.cols, tt.rows, got, tt.expected)
		}
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v.IsDirection() = false", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionRepeat, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v.IsDirection() = true", a)
		}
	}
}
