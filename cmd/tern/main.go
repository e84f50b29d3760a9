package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/lowtide/tern/editor"
	"github.com/lowtide/tern/terminal"
)

const (
	logDir      = "logs"
	logFileName = "debug.log"
)

var debugFlag = flag.Bool("debug", false, "write debug logs to logs/debug.log")

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	var initial []byte
	if flag.NArg() >= 1 {
		line, err := loadInitialLine(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "tern: %v\n", err)
			os.Exit(1)
		}
		initial = line
	}

	term := terminal.Open(os.Stdin, os.Stdout)

	if err := term.EnterRaw(); err != nil {
		fmt.Fprintf(os.Stderr, "tern: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: reset the display first so the stack trace lands on a
	// sane screen, then restore the captured attributes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			term.Restore()
			fmt.Fprintf(os.Stderr, "tern crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	rows, cols, err := term.Size()
	if err != nil {
		die(term, fmt.Errorf("window size: %w", err))
	}
	log.Printf("start: %dx%d", cols, rows)

	ed := editor.New(term, rows, cols, initial)
	if err := ed.Run(); err != nil {
		die(term, err)
	}

	if err := term.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "tern: %v\n", err)
		os.Exit(1)
	}
}

// die is the fatal path: best-effort screen reset so the user is not left in
// a garbled display, restore, diagnostic, non-zero exit. No retries; a
// terminal that cannot report or accept attributes cannot host this program.
func die(term *terminal.Terminal, err error) {
	term.WriteControl(terminal.ClearScreen)
	term.WriteControl(terminal.CursorHome)
	term.Restore()
	fmt.Fprintf(os.Stderr, "tern: %v\n", err)
	os.Exit(1)
}

// setupLogging routes the standard logger to a file when debug is on and
// discards it otherwise; stdout belongs to the frame writer
func setupLogging(debugEnabled bool) *os.File {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

// loadInitialLine reads the first line of the file with trailing newline and
// carriage return characters stripped. An empty file yields no content.
func loadInitialLine(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}

	trimmed := strings.TrimRight(line, "\r\n")
	buf := make([]byte, len(trimmed))
	copy(buf, trimmed)
	return buf, nil
}
