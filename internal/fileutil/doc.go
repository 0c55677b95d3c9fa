// Package fileutil provides raw line iteration and path helpers shared by
// the checker and the command layer.
//
// # Line Iteration
//
// ForEachLine walks a reader one physical line at a time. Lines are split on
// LF only and are delivered with their terminator attached, so callers can
// inspect the exact end-of-line bytes:
//
//	err := fileutil.ForEachFileLine("main.go", func(n int, line []byte) error {
//	    fmt.Printf("%d: %q\n", n, line)
//	    return nil
//	})
//
// Input "a\r\nb\nc" produces three lines: "a\r\n", "b\n" and "c". A lone CR
// does not end a line, and an empty file produces no callbacks.
//
// # Path Resolution
//
// ResolvePath turns a user-supplied path into an absolute one. The command
// layer applies it to --ignored-files-list and --config before reading them.
//
// # Error Handling
//
// Open and read failures are wrapped with context and returned; nothing is
// swallowed. Errors returned from the callback are passed through unchanged
// so callers can match them with errors.Is.
package fileutil
