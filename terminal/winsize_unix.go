//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// WindowSize resolves the terminal geometry. The kernel query is preferred;
// the escape-sequence exchange covers hosts whose ioctl fails or reports zero
// columns.
func WindowSize(outFd int, out io.Writer, src ByteSource) (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(outFd, unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 {
		return int(ws.Row), int(ws.Col), nil
	}
	return QueryFallback(out, src)
}

// QueryFallback measures the screen with the terminal itself: park the cursor
// at the far corner (the terminal clamps to its real edge), then request a
// cursor position report and parse the reply.
func QueryFallback(out io.Writer, src ByteSource) (rows, cols int, err error) {
	if err := writeFull(out, csiFarCorner); err != nil {
		return 0, 0, fmt.Errorf("park cursor: %w", err)
	}
	if err := writeFull(out, csiCursorReport); err != nil {
		return 0, 0, fmt.Errorf("request cursor report: %w", err)
	}

	reply, err := readReport(src)
	if err != nil {
		return 0, 0, err
	}
	return parseCursorReport(reply)
}

// readReport collects bytes up to the 'R' terminator, length-capped so a
// confused terminal cannot stall startup forever
func readReport(src ByteSource) ([]byte, error) {
	const maxReply = 32
	reply := make([]byte, 0, maxReply)
	for len(reply) < maxReply {
		b, ok, err := src.ReadByte()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New("cursor report: timed out waiting for reply")
		}
		if b == 'R' {
			return reply, nil
		}
		reply = append(reply, b)
	}
	return nil, errors.New("cursor report: reply too long")
}

// parseCursorReport parses "ESC [ rows ; cols" (terminator already stripped)
func parseCursorReport(reply []byte) (rows, cols int, err error) {
	if len(reply) < 5 || reply[0] != 0x1b || reply[1] != '[' {
		return 0, 0, fmt.Errorf("cursor report: malformed reply %q", reply)
	}

	sep := -1
	for i := 2; i < len(reply); i++ {
		if reply[i] == ';' {
			sep = i
			break
		}
	}
	if sep < 0 {
		return 0, 0, fmt.Errorf("cursor report: malformed reply %q", reply)
	}

	rows, err = parseNum(reply[2:sep])
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report: bad row in %q: %w", reply, err)
	}
	cols, err = parseNum(reply[sep+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report: bad column in %q: %w", reply, err)
	}
	if cols == 0 {
		return 0, 0, errors.New("cursor report: zero columns")
	}
	return rows, cols, nil
}

func parseNum(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, errors.New("empty number")
	}
	n := 0
	for _, b := range p {
		if b < '0' || b > '9' {
			return 0, fmt.Errorf("unexpected byte %q", b)
		}
		n = n*10 + int(b-'0')
		if n > 9999 { // Sanity limit
			return 0, errors.New("value out of range")
		}
	}
	return n, nil
}
