//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// NotifyResize delivers SIGWINCH on a buffered channel. The editor loop
// drains it between refresh cycles and re-queries geometry; no handler
// goroutine touches editor state.
func NotifyResize() chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	return ch
}

// StopResize unregisters the channel
func StopResize(ch chan os.Signal) {
	signal.Stop(ch)
}
