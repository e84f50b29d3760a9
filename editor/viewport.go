package editor

import (
	"github.com/lowtide/tern/terminal"
)

// Viewport holds the cursor position and screen geometry. Bounds hold
// whenever a frame is composed; out-of-range moves clamp, never error.
type Viewport struct {
	CursorX int
	CursorY int
	Rows    int
	Cols    int
}

// Move applies one navigation key. Page moves repeat the single vertical step
// a full screen's worth so each step re-clamps like any other.
func (v *Viewport) Move(key terminal.Key) {
	switch key {
	case terminal.KeyLeft:
		if v.CursorX > 0 {
			v.CursorX--
		}
	case terminal.KeyRight:
		if v.CursorX < v.Cols-1 {
			v.CursorX++
		}
	case terminal.KeyUp:
		if v.CursorY > 0 {
			v.CursorY--
		}
	case terminal.KeyDown:
		if v.CursorY < v.Rows-1 {
			v.CursorY++
		}
	case terminal.KeyHome:
		v.CursorX = 0
	case terminal.KeyEnd:
		v.CursorX = v.Cols - 1
	case terminal.KeyPageUp:
		for i := 0; i < v.Rows; i++ {
			v.Move(terminal.KeyUp)
		}
	case terminal.KeyPageDown:
		for i := 0; i < v.Rows; i++ {
			v.Move(terminal.KeyDown)
		}
	}
}

// Clamp pulls the cursor back inside the screen after a geometry change
func (v *Viewport) Clamp() {
	if v.CursorX > v.Cols-1 {
		v.CursorX = v.Cols - 1
	}
	if v.CursorX < 0 {
		v.CursorX = 0
	}
	if v.CursorY > v.Rows-1 {
		v.CursorY = v.Rows - 1
	}
	if v.CursorY < 0 {
		v.CursorY = 0
	}
}
