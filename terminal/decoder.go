package terminal

// Decoder turns the raw byte stream into key events. One ReadKey call
// resolves at most one event and consumes only the bytes belonging to it, so
// a queued second keypress is never swallowed while disambiguating the first.
type Decoder struct {
	src ByteSource
}

// NewDecoder creates a decoder over a byte source
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// ReadKey reads one key event. ok is false when the bounded wait expired with
// no input at all; the caller loops and re-checks other work. Unknown or
// truncated escape sequences degrade to KeyEscape, never an error: emulators
// disagree about sequences and a stray one must not break the session.
func (d *Decoder) ReadKey() (ev Event, ok bool, err error) {
	b, ok, err := d.src.ReadByte()
	if err != nil {
		return Event{}, false, err
	}
	if !ok {
		return Event{Key: KeyNone}, false, nil
	}

	if b != 0x1b {
		return Event{Key: KeyRune, Ch: b}, true, nil
	}

	// ESC seen. A byte arriving within the bounded wait means a sequence;
	// silence means the user pressed the escape key itself.
	b1, ok, err := d.src.ReadByte()
	if err != nil {
		return Event{}, false, err
	}
	if !ok {
		return Event{Key: KeyEscape}, true, nil
	}

	switch b1 {
	case '[':
		return d.readCSI()
	case 'O':
		return d.readSS3()
	}
	return Event{Key: KeyEscape}, true, nil
}

func (d *Decoder) readCSI() (Event, bool, error) {
	b, ok, err := d.src.ReadByte()
	if err != nil {
		return Event{}, false, err
	}
	if !ok {
		return Event{Key: KeyEscape}, true, nil
	}

	// Keypad form: ESC '[' digit '~'
	if b >= '0' && b <= '9' {
		last, ok, err := d.src.ReadByte()
		if err != nil {
			return Event{}, false, err
		}
		if !ok || last != '~' {
			return Event{Key: KeyEscape}, true, nil
		}
		if key, found := csiTildeKeys[b]; found {
			return Event{Key: key}, true, nil
		}
		return Event{Key: KeyEscape}, true, nil
	}

	if key, found := csiKeys[b]; found {
		return Event{Key: key}, true, nil
	}
	return Event{Key: KeyEscape}, true, nil
}

func (d *Decoder) readSS3() (Event, bool, error) {
	b, ok, err := d.src.ReadByte()
	if err != nil {
		return Event{}, false, err
	}
	if !ok {
		return Event{Key: KeyEscape}, true, nil
	}
	if key, found := ss3Keys[b]; found {
		return Event{Key: key}, true, nil
	}
	return Event{Key: KeyEscape}, true, nil
}
