// Package editor holds the viewport state, the frame compositor, and the
// refresh/read/dispatch loop over a terminal device.
package editor

import (
	"fmt"
	"log"
	"os"

	"github.com/lowtide/tern/terminal"
)

// keyQuit is Ctrl-Q as delivered in raw mode
const keyQuit = 'q' & 0x1f

// Row is one line of text. Content arrives with trailing newline characters
// already stripped and is not edited in place.
type Row struct {
	Chars []byte
}

// Editor owns the viewport, the row buffer, and the terminal handle. One
// instance, one thread of control; state is threaded explicitly instead of
// living in a package global.
type Editor struct {
	term   *terminal.Terminal
	dec    *terminal.Decoder
	view   Viewport
	rows   []Row
	resize chan os.Signal
	frame  []byte // backing array reused across cycles, contents rebuilt each frame
}

// New creates an editor for an already-raw terminal with known geometry.
// initial is the optional single line of starting content; nil means an
// empty buffer.
func New(term *terminal.Terminal, rows, cols int, initial []byte) *Editor {
	e := &Editor{
		term: term,
		dec:  terminal.NewDecoder(term.Source()),
		view: Viewport{Rows: rows, Cols: cols},
	}
	if initial != nil {
		e.rows = []Row{{Chars: initial}}
	}
	return e
}

// Run drives the refresh / read / dispatch cycle until the user quits or the
// terminal fails. A clean quit clears the screen and returns nil; the caller
// maps errors to a non-zero exit after restoring the terminal.
func (e *Editor) Run() error {
	e.resize = terminal.NotifyResize()
	defer terminal.StopResize(e.resize)

	for {
		e.checkResize()

		if err := e.refresh(); err != nil {
			return err
		}

		ev, ok, err := e.dec.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if !ok {
			continue // idle cycle, re-check for resize
		}

		quit, err := e.dispatch(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// refresh composes and writes one frame
func (e *Editor) refresh() error {
	e.frame = e.appendFrame(e.frame[:0])
	return e.term.WriteFrame(e.frame)
}

// dispatch applies one key event. Unrecognized input is a no-op; different
// emulators send different sequences and none of them may break the loop.
func (e *Editor) dispatch(ev terminal.Event) (quit bool, err error) {
	switch ev.Key {
	case terminal.KeyRune:
		if ev.Ch == keyQuit {
			return true, e.clearScreen()
		}
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight,
		terminal.KeyHome, terminal.KeyEnd, terminal.KeyPageUp, terminal.KeyPageDown:
		e.view.Move(ev.Key)
	}
	return false, nil
}

// clearScreen leaves the terminal blank with the cursor at the origin, the
// state the next shell prompt expects
func (e *Editor) clearScreen() error {
	if err := e.term.WriteControl(terminal.ClearScreen); err != nil {
		return err
	}
	return e.term.WriteControl(terminal.CursorHome)
}

// checkResize drains pending SIGWINCH notifications and re-resolves geometry
func (e *Editor) checkResize() {
	select {
	case <-e.resize:
	default:
		return
	}

	rows, cols, err := e.term.Size()
	if err != nil {
		log.Printf("resize: size query failed: %v", err)
		return
	}
	e.view.Rows = rows
	e.view.Cols = cols
	e.view.Clamp()
	log.Printf("resize: %dx%d", cols, rows)
}
