package editor

import (
	"testing"

	"github.com/lowtide/tern/terminal"
)

func TestMove_ClampsAtEdges(t *testing.T) {
	tests := []struct {
		name   string
		startX int
		startY int
		key    terminal.Key
		repeat int
		wantX  int
		wantY  int
	}{
		{"left from origin stays", 0, 0, terminal.KeyLeft, 5, 0, 0},
		{"up from origin stays", 0, 0, terminal.KeyUp, 5, 0, 0},
		{"right clamps at last column", 78, 0, terminal.KeyRight, 5, 79, 0},
		{"down clamps at last row", 0, 22, terminal.KeyDown, 5, 0, 23},
		{"single right", 10, 10, terminal.KeyRight, 1, 11, 10},
		{"single left", 10, 10, terminal.KeyLeft, 1, 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{CursorX: tt.startX, CursorY: tt.startY, Rows: 24, Cols: 80}
			for i := 0; i < tt.repeat; i++ {
				v.Move(tt.key)
			}
			if v.CursorX != tt.wantX || v.CursorY != tt.wantY {
				t.Errorf("Expected (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, v.CursorX, v.CursorY)
			}
		})
	}
}

func TestMove_HomeEnd(t *testing.T) {
	v := Viewport{CursorX: 40, Rows: 24, Cols: 80}

	v.Move(terminal.KeyHome)
	if v.CursorX != 0 {
		t.Errorf("Expected Home to set column 0, got %d", v.CursorX)
	}

	v.Move(terminal.KeyEnd)
	if v.CursorX != 79 {
		t.Errorf("Expected End to set column 79, got %d", v.CursorX)
	}
}

func TestMove_PageDownClampsAtLastRow(t *testing.T) {
	v := Viewport{Rows: 24, Cols: 80}

	v.Move(terminal.KeyPageDown)
	if v.CursorY != 23 {
		t.Errorf("Expected PageDown from row 0 to land on row 23, got %d", v.CursorY)
	}

	// Further paging stays put
	v.Move(terminal.KeyPageDown)
	if v.CursorY != 23 {
		t.Errorf("Expected repeated PageDown to stay on row 23, got %d", v.CursorY)
	}
}

func TestMove_PageUpFromBottom(t *testing.T) {
	v := Viewport{CursorY: 23, Rows: 24, Cols: 80}

	v.Move(terminal.KeyPageUp)
	if v.CursorY != 0 {
		t.Errorf("Expected PageUp from the bottom to land on row 0, got %d", v.CursorY)
	}
}

func TestClamp_AfterShrink(t *testing.T) {
	v := Viewport{CursorX: 79, CursorY: 23, Rows: 24, Cols: 80}

	// Terminal shrank underneath the cursor
	v.Rows = 10
	v.Cols = 40
	v.Clamp()

	if v.CursorX != 39 || v.CursorY != 9 {
		t.Errorf("Expected cursor pulled to (39,9), got (%d,%d)", v.CursorX, v.CursorY)
	}
}
