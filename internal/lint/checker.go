// Package lint implements the line-level checks: TAB characters, trailing
// whitespace, a missing final end-of-line and line terminators that do not
// match the convention expected for the file.
//
// A Checker owns the findings and latches of a single file. The TAB and
// wrong-EOL findings are latched: each is reported at most once per file.
// Trailing whitespace and missing EOL are reported on every offending line.
package lint

import (
	"bytes"
	"fmt"
	"io"

	"github.com/harrison/linecheck/internal/fileutil"
)

// whitespace is the set stripped from the end of a line before looking for
// trailing blanks. The EOL bytes are part of it.
const whitespace = " \t\n\v\f\r"

// Checker scans one file and accumulates its findings.
type Checker struct {
	filename string
	eol      EOL
	findings []Finding

	tabsReported     bool
	wrongEOLReported bool
}

// NewChecker prepares a checker for filename. The expected terminator is
// taken from conventions; a nil table means every file expects LF.
func NewChecker(filename string, conventions Conventions) *Checker {
	return &Checker{
		filename: filename,
		eol:      conventions.ExpectedEOL(filename),
	}
}

// Filename returns the file this checker reports on.
func (c *Checker) Filename() string {
	return c.filename
}

// ExpectedEOL returns the terminator this file must use.
func (c *Checker) ExpectedEOL() EOL {
	return c.eol
}

// Run opens the file, scans every line and reports whether any finding was
// recorded. Open and read failures are returned as errors; findings
// collected before a read failure are kept.
func (c *Checker) Run() (bool, error) {
	if err := fileutil.ForEachFileLine(c.filename, c.checkLine); err != nil {
		return c.HasErrors(), fmt.Errorf("%s: %w", c.filename, err)
	}
	return c.HasErrors(), nil
}

// Scan checks the lines read from r as if they were the content of the file.
func (c *Checker) Scan(r io.Reader) (bool, error) {
	if err := fileutil.ForEachLine(r, c.checkLine); err != nil {
		return c.HasErrors(), fmt.Errorf("%s: %w", c.filename, err)
	}
	return c.HasErrors(), nil
}

// HasErrors reports whether at least one finding was recorded.
func (c *Checker) HasErrors() bool {
	return len(c.findings) > 0
}

// Findings returns the findings in scan order.
func (c *Checker) Findings() []Finding {
	out := make([]Finding, len(c.findings))
	copy(out, c.findings)
	return out
}

// PrintErrors writes the findings to w, one file:line:char:msg per line.
func (c *Checker) PrintErrors(w io.Writer) error {
	return WriteFindings(w, c.findings)
}

func (c *Checker) checkLine(lineNo int, line []byte) error {
	c.checkTabs(lineNo, line)
	c.checkEOLAndTrailingWhitespace(lineNo, line)
	return nil
}

func (c *Checker) checkTabs(lineNo int, line []byte) {
	if c.tabsReported {
		return
	}

	if idx := bytes.IndexByte(line, '\t'); idx >= 0 {
		c.tabsReported = true
		c.report(lineNo, idx+1, MsgTabs)
	}
}

// checkEOLAndTrailingWhitespace handles both checks in one pass since the
// terminator is itself trailing whitespace.
func (c *Checker) checkEOLAndTrailingWhitespace(lineNo int, line []byte) {
	contentEnd := len(bytes.TrimRight(line, whitespace))
	trail, eol := SplitEOL(line[contentEnd:])

	if len(trail) > 0 {
		c.report(lineNo, contentEnd, MsgTrailingWhitespace)
	}

	switch {
	case eol == None:
		c.report(lineNo, len(line), MsgMissingEOL)
	case !c.wrongEOLReported && eol != c.eol:
		c.wrongEOLReported = true
		c.report(lineNo, len(line)-len(eol), wrongEOLMessage(c.eol, eol))
	}
}

func (c *Checker) report(lineNo, char int, msg string) {
	c.findings = append(c.findings, Finding{
		File: c.filename,
		Line: lineNo,
		Char: char,
		Msg:  msg,
	})
}
