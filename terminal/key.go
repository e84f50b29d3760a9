package terminal

// Key represents a parsed input key
type Key uint8

const (
	KeyNone   Key = iota // no input arrived within the bounded wait
	KeyRune              // literal byte (check Event.Ch)
	KeyEscape            // lone ESC press or unrecognized sequence

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
)

// Event represents one decoded keypress
type Event struct {
	Key Key
	Ch  byte // valid when Key == KeyRune
}

// Known CSI final letters (ESC '[' <letter>)
var csiKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// SS3 form (ESC 'O' <letter>) some terminals emit for Home/End
var ss3Keys = map[byte]Key{
	'H': KeyHome,
	'F': KeyEnd,
}

// Keypad form (ESC '[' <digit> '~'); 1/7 and 4/8 are the vt220/xterm
// Home/End split
var csiTildeKeys = map[byte]Key{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}
