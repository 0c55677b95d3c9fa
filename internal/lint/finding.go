package lint

import (
	"fmt"
	"io"
)

// Messages attached to findings.
const (
	MsgTabs               = "One or more TAB characters in file. Only the first is reported"
	MsgTrailingWhitespace = "Trailing whitespace"
	MsgMissingEOL         = "Last line must end with EOL"
)

// Finding is a single lint violation at a position in a file.
type Finding struct {
	File string
	Line int
	Char int
	Msg  string
}

// String formats the finding as file:line:char:msg.
func (f Finding) String() string {
	return fmt.Sprintf("%s:%d:%d:%s", f.File, f.Line, f.Char, f.Msg)
}

func wrongEOLMessage(want, got EOL) string {
	return fmt.Sprintf("Expected %s but got %s", want.Quoted(), got.Quoted())
}

// WriteFindings writes one finding per line to w, in order.
func WriteFindings(w io.Writer, findings []Finding) error {
	for _, f := range findings {
		if _, err := fmt.Fprintln(w, f.String()); err != nil {
			return fmt.Errorf("failed to write findings: %w", err)
		}
	}
	return nil
}
