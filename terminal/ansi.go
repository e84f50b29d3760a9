package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	ClearScreen = []byte("\x1b[2J")
	ClearLine   = []byte("\x1b[K")
	CursorHome  = []byte("\x1b[H")
	CursorHide  = []byte("\x1b[?25l")
	CursorShow  = []byte("\x1b[?25h")

	csi = []byte("\x1b[")

	// Park the cursor at the far corner; the terminal clamps to its real edge
	csiFarCorner = []byte("\x1b[999C\x1b[999B")

	// DSR cursor position report request, reply is ESC [ rows ; cols R
	csiCursorReport = []byte("\x1b[6n")
)

// AppendCursorPos appends an absolute positioning sequence to buf. The
// protocol is 1-indexed; callers pass protocol coordinates as-is.
func AppendCursorPos(buf []byte, row, col int) []byte {
	buf = append(buf, csi...)
	buf = appendInt(buf, row)
	buf = append(buf, ';')
	buf = appendInt(buf, col)
	return append(buf, 'H')
}

// appendInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func appendInt(buf []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(buf, byte(n)+'0')
	}
	if n < 100 {
		return append(buf, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(buf, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	var tmp [10]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(buf, tmp[i:]...)
}
