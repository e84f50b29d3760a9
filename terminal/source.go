package terminal

// ByteSource delivers terminal input one byte at a time with a bounded wait.
// ok is false when the wait expired with nothing available; err is reserved
// for unrecoverable device failures.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}
