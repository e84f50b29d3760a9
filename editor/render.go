package editor

import (
	"github.com/lowtide/tern/terminal"
)

// Version shows in the welcome banner
const Version = "0.1.0"

const welcomePrefix = "Tern editor -- version "

// appendFrame composes one complete screen update into buf: hide cursor,
// home, every row with its clear-to-EOL, cursor reposition, show cursor. The
// caller writes the result in a single call; partial writes tear.
func (e *Editor) appendFrame(buf []byte) []byte {
	buf = append(buf, terminal.CursorHide...)
	buf = append(buf, terminal.CursorHome...)
	buf = e.appendRows(buf)
	buf = terminal.AppendCursorPos(buf, e.view.CursorY+1, e.view.CursorX+1)
	buf = append(buf, terminal.CursorShow...)
	return buf
}

func (e *Editor) appendRows(buf []byte) []byte {
	for y := 0; y < e.view.Rows; y++ {
		switch {
		case y < len(e.rows):
			chars := e.rows[y].Chars
			if len(chars) > e.view.Cols {
				chars = chars[:e.view.Cols]
			}
			buf = append(buf, chars...)
		case len(e.rows) == 0 && y == e.view.Rows/3:
			buf = e.appendWelcome(buf)
		default:
			buf = append(buf, '~')
		}

		buf = append(buf, terminal.ClearLine...)
		if y < e.view.Rows-1 {
			buf = append(buf, '\r', '\n')
		}
	}
	return buf
}

// appendWelcome centers the banner; the first padding column keeps its tilde
// so the row still reads as past-end-of-buffer
func (e *Editor) appendWelcome(buf []byte) []byte {
	banner := welcomePrefix + Version
	if len(banner) > e.view.Cols {
		banner = banner[:e.view.Cols]
	}
	padding := (e.view.Cols - len(banner)) / 2
	if padding > 0 {
		buf = append(buf, '~')
		padding--
	}
	for ; padding > 0; padding-- {
		buf = append(buf, ' ')
	}
	return append(buf, banner...)
}
