package lint

import (
	"bytes"
	"fmt"
)

// EOL is the byte sequence that terminates a physical line.
type EOL string

const (
	// None marks a line with no terminator. Only the last line of a file can
	// end this way, and it is always reported.
	None EOL = ""
	// LF is the Unix line terminator.
	LF EOL = "\n"
	// CRLF is the DOS line terminator.
	CRLF EOL = "\r\n"
)

// Name returns the convention name, e.g. "crlf".
func (e EOL) Name() string {
	switch e {
	case LF:
		return "lf"
	case CRLF:
		return "crlf"
	default:
		return "none"
	}
}

// Quoted renders the raw bytes with escapes, e.g. "\r\n".
func (e EOL) Quoted() string {
	return fmt.Sprintf("%q", string(e))
}

// SplitEOL splits one physical line into its content and terminator.
// CRLF is checked before LF; a line with neither returns None and the whole
// input as content.
func SplitEOL(line []byte) ([]byte, EOL) {
	switch {
	case bytes.HasSuffix(line, []byte(CRLF)):
		return line[:len(line)-len(CRLF)], CRLF
	case bytes.HasSuffix(line, []byte(LF)):
		return line[:len(line)-len(LF)], LF
	default:
		return line, None
	}
}
