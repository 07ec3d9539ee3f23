package core

import "testing"

func TestInputFrameFirstDirectionWins(t *testing.T) {
	f := NewInputFrame()

	if !f.Set(ActionUp) {
		t.Fatal("first direction should be recorded")
	}
	if f.Set(ActionLeft) {
		t.Error("second direction should be discarded")
	}
	if f.Set(ActionDown) {
		t.Error("third direction should be discarded")
	}

	dir, ok := f.Direction()
	if !ok || dir != DirUp {
		t.Errorf("Direction() = %v, %v, expected up, true", dir, ok)
	}
	if f.Dropped() != 2 {
		t.Errorf("Dropped() = %d, expected 2", f.Dropped())
	}
	if f.Has(ActionLeft) {
		t.Error("discarded action should not be reported")
	}
}

func TestInputFrameQuit(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionQuit)

	if !f.Quit() || !f.Has(ActionQuit) {
		t.Error("quit should be recorded")
	}
	if !f.Has(ActionRight) {
		t.Error("quit should not discard the direction")
	}

	f.Clear()
	if f.Quit() {
		t.Error("Clear should reset quit")
	}
	if _, ok := f.Direction(); ok {
		t.Error("Clear should reset direction")
	}
	if f.Set(ActionNone) {
		t.Error("ActionNone should not be recorded")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionRight, "Right"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if tc.a.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.a.String(), tc.expected)
		}
	}
}
