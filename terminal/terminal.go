package terminal

import (
	"fmt"
	"io"
	"os"
)

// Terminal owns the process's one terminal device: raw-mode lifecycle, frame
// output, and the input byte source.
type Terminal struct {
	in  *os.File
	out *os.File
	raw *RawMode
	src ByteSource
}

// Open wraps an input/output pair, normally os.Stdin and os.Stdout. Test
// harnesses hand in a PTY pair instead.
func Open(in, out *os.File) *Terminal {
	return &Terminal{
		in:  in,
		out: out,
		src: newFDSource(int(in.Fd())),
	}
}

// EnterRaw switches the input device into raw mode and retains the guard so
// Restore can run on any exit path.
func (t *Terminal) EnterRaw() error {
	raw, err := EnterRawMode(int(t.in.Fd()))
	if err != nil {
		return err
	}
	t.raw = raw
	return nil
}

// Restore reapplies the original attributes, exactly once
func (t *Terminal) Restore() error {
	return t.raw.Restore()
}

// Size resolves the current geometry
func (t *Terminal) Size() (rows, cols int, err error) {
	return WindowSize(int(t.out.Fd()), t.out, t.src)
}

// Source exposes the bounded byte reader for the key decoder
func (t *Terminal) Source() ByteSource {
	return t.src
}

// WriteFrame writes one composed frame in a single call. Interleaved writes
// tear visibly, so callers accumulate the whole frame first.
func (t *Terminal) WriteFrame(frame []byte) error {
	if err := writeFull(t.out, frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// WriteControl writes a raw control fragment outside the frame cycle
// (shutdown clear, fatal-path cleanup)
func (t *Terminal) WriteControl(seq []byte) error {
	return writeFull(t.out, seq)
}

// EmergencyReset forces the terminal display back to a usable state without
// any knowledge of prior mode. Used on panic paths where ordered cleanup is
// gone; attribute restoration still goes through the RawMode guard.
func EmergencyReset(w io.Writer) {
	w.Write(CursorShow)
	w.Write(ClearScreen)
	w.Write(CursorHome)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return fmt.Errorf("short terminal write: %d of %d bytes", n, len(p))
	}
	return nil
}
