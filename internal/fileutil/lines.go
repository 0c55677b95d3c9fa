package fileutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LineFunc is called once per physical line. line includes its terminator
// and is only valid until the callback returns.
type LineFunc func(lineNo int, line []byte) error

// ForEachLine splits r on LF bytes and calls fn for every physical line,
// numbering lines from 1. A CR byte never starts a new line, so CRLF stays
// attached to the preceding content. A final chunk without LF is delivered
// as is; an empty trailing chunk is not.
//
// Iteration stops at the first error returned by fn, which is returned
// unchanged. Read errors are wrapped.
func ForEachLine(r io.Reader, fn LineFunc) error {
	br := bufio.NewReader(r)
	lineNo := 0

	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lineNo++
			if cbErr := fn(lineNo, line); cbErr != nil {
				return cbErr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
		}
	}
}

// ForEachFileLine opens path and runs ForEachLine over its raw bytes.
// The file is closed before returning, also when fn fails.
func ForEachFileLine(path string, fn LineFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return ForEachLine(f, fn)
}

// ResolvePath returns the absolute, cleaned form of path.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return abs, nil
}
