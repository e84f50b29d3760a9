// Package terminal provides direct VT100 terminal control: raw-mode lifecycle
// with guaranteed restoration, bounded byte input with escape-sequence
// decoding, and single-write frame output.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
