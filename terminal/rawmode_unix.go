//go:build unix

package terminal

import (
	"fmt"

	"golang.org/x/term"
)

// RawMode holds the terminal attributes captured before entering raw mode.
// The guard travels every exit path; Restore reapplies the snapshot exactly
// once.
type RawMode struct {
	fd   int
	prev *term.State
}

// EnterRawMode switches fd into raw mode: no echo, no canonical buffering, no
// signal keys, no flow control, no CR/NL translation, no output
// post-processing, 8-bit characters. The bounded-read policy lives in the
// byte source (poll + read) rather than VMIN/VTIME.
func EnterRawMode(fd int) (*RawMode, error) {
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("fd %d is not a terminal", fd)
	}
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return &RawMode{fd: fd, prev: prev}, nil
}

// Restore reapplies the captured attributes. Safe to call more than once;
// only the first call touches the device.
func (r *RawMode) Restore() error {
	if r == nil || r.prev == nil {
		return nil
	}
	prev := r.prev
	r.prev = nil
	if err := term.Restore(r.fd, prev); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	return nil
}
