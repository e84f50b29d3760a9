//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
)

// readTimeoutMs bounds every input wait so the refresh loop never stalls on
// an idle terminal
const readTimeoutMs = 100

// fdSource reads single bytes from a terminal fd, poll-bounded
type fdSource struct {
	fd int
}

func newFDSource(fd int) *fdSource {
	return &fdSource{fd: fd}
}

func (s *fdSource) ReadByte() (byte, bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(s.fd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, readTimeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil // timeout
	}

	var buf [1]byte
	rn, err := unix.Read(s.fd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, err
	}
	if rn == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}
