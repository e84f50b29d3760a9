//go:build unix

package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/creack/pty"
)

func TestParseCursorReport(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		rows    int
		cols    int
		wantErr bool
	}{
		{"typical", "\x1b[24;80", 24, 80, false},
		{"single digits", "\x1b[1;9", 1, 9, false},
		{"large", "\x1b[200;400", 200, 400, false},
		{"zero columns", "\x1b[24;0", 0, 0, true},
		{"missing prefix", "24;80", 0, 0, true},
		{"missing separator", "\x1b[2480", 0, 0, true},
		{"non-numeric row", "\x1b[a;80", 0, 0, true},
		{"non-numeric col", "\x1b[24;8a", 0, 0, true},
		{"empty", "", 0, 0, true},
		{"too short", "\x1b[1", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols, err := parseCursorReport([]byte(tt.reply))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tt.reply)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if rows != tt.rows || cols != tt.cols {
				t.Errorf("Expected %dx%d, got %dx%d", tt.rows, tt.cols, rows, cols)
			}
		})
	}
}

func TestReadReport_Timeout(t *testing.T) {
	if _, err := readReport(script('\x1b', '[', -1)); err == nil {
		t.Error("Expected timeout error when the reply stalls")
	}
}

func TestReadReport_TooLong(t *testing.T) {
	steps := make([]int, 64)
	for i := range steps {
		steps[i] = '1'
	}
	if _, err := readReport(script(steps...)); err == nil {
		t.Error("Expected error for an unterminated reply")
	}
}

func TestQueryFallback_WriteSequences(t *testing.T) {
	// The fallback must park the cursor far corner, then request a report
	var out bytes.Buffer
	QueryFallback(&out, script('\x1b', '[', '2', '4', ';', '8', '0', 'R'))

	if !bytes.HasPrefix(out.Bytes(), csiFarCorner) {
		t.Errorf("Expected far-corner park first, got %q", out.Bytes())
	}
	if !bytes.HasSuffix(out.Bytes(), csiCursorReport) {
		t.Errorf("Expected cursor report request, got %q", out.Bytes())
	}
}

func TestQueryFallback_ParsesReply(t *testing.T) {
	var out bytes.Buffer
	rows, cols, err := QueryFallback(&out, script('\x1b', '[', '4', '1', ';', '1', '2', '3', 'R'))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rows != 41 || cols != 123 {
		t.Errorf("Expected 41x123, got %dx%d", rows, cols)
	}
}

func TestWindowSize_PTY(t *testing.T) {
	if testing.Short() {
		t.Skip("pty tests skipped in short mode")
	}

	master, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer master.Close()
	defer tty.Close()

	if err := pty.Setsize(master, &pty.Winsize{Rows: 32, Cols: 120}); err != nil {
		t.Fatalf("Setsize failed: %v", err)
	}

	rows, cols, err := WindowSize(int(tty.Fd()), tty, newFDSource(int(tty.Fd())))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rows != 32 || cols != 120 {
		t.Errorf("Expected 32x120, got %dx%d", rows, cols)
	}
}

func TestQueryFallback_PTYExchange(t *testing.T) {
	if testing.Short() {
		t.Skip("pty tests skipped in short mode")
	}

	master, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer master.Close()
	defer tty.Close()

	// Raw mode so the reply is not held hostage by canonical buffering
	raw, err := EnterRawMode(int(tty.Fd()))
	if err != nil {
		t.Fatalf("EnterRawMode failed: %v", err)
	}
	defer raw.Restore()

	// Play the terminal: watch for the report request, answer with 24;80
	go func() {
		buf := make([]byte, 0, 64)
		chunk := make([]byte, 32)
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			n, err := master.Read(chunk)
			if n > 0 {
				buf = append(buf, chunk[:n]...)
				if bytes.Contains(buf, csiCursorReport) {
					master.Write([]byte("\x1b[24;80R"))
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	rows, cols, err := QueryFallback(tty, newFDSource(int(tty.Fd())))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rows != 24 || cols != 80 {
		t.Errorf("Expected 24x80, got %dx%d", rows, cols)
	}
}
