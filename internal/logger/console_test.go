package logger

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// failingWriter rejects every write and counts the attempts.
type failingWriter struct {
	calls int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "debug")

		assert.NotNil(t, logger)
		assert.Equal(t, buf, logger.writer)
		assert.Equal(t, "debug", logger.logLevel)
		assert.False(t, logger.colorOutput, "buffers are never terminals")
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		assert.NotNil(t, logger)
		assert.Nil(t, logger.writer)

		// must not panic
		logger.LogError("dropped")
		logger.LogSummary(Summary{Failures: 1})
	})

	t.Run("with failing writer", func(t *testing.T) {
		w := &failingWriter{}
		logger := NewConsoleLogger(w, "debug")

		assert.NotPanics(t, func() {
			logger.LogDebug("first")
			logger.LogFileChecked("a.txt", 2)
			logger.LogSummary(Summary{FilesChecked: 1, Findings: 2})
		})
		assert.Equal(t, 3, w.calls)
	})

	t.Run("invalid level defaults to info", func(t *testing.T) {
		assert.Equal(t, "info", NewConsoleLogger(nil, "chatty").logLevel)
		assert.Equal(t, "info", NewConsoleLogger(nil, "").logLevel)
		assert.Equal(t, "warn", NewConsoleLogger(nil, " WARN ").logLevel)
	})
}

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	emit := map[string]func(*ConsoleLogger, string){
		"trace": (*ConsoleLogger).LogTrace,
		"debug": (*ConsoleLogger).LogDebug,
		"info":  (*ConsoleLogger).LogInfo,
		"warn":  (*ConsoleLogger).LogWarn,
		"error": (*ConsoleLogger).LogError,
	}
	order := []string{"trace", "debug", "info", "warn", "error"}

	for ci, configured := range order {
		for mi, message := range order {
			shouldAppear := mi >= ci
			t.Run(configured+" vs "+message, func(t *testing.T) {
				buf := &bytes.Buffer{}
				logger := NewConsoleLogger(buf, configured)
				emit[message](logger, message+" msg")

				if shouldAppear {
					assert.Contains(t, buf.String(), message+" msg")
					assert.Contains(t, buf.String(), "["+strings.ToUpper(message)+"]")
				} else {
					assert.Empty(t, buf.String())
				}
			})
		}
	}
}

func TestLogFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogInfo("ignored 3 files")

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] ignored 3 files\n$`)
	assert.Regexp(t, pattern, buf.String())
}

func TestLogFileChecked(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "debug")

	logger.LogFileChecked("a.go", 0)
	logger.LogFileChecked("b.bat", 2)

	out := buf.String()
	assert.Contains(t, out, "checked a.go: clean")
	assert.Contains(t, out, "checked b.bat: 2 findings")

	quiet := &bytes.Buffer{}
	NewConsoleLogger(quiet, "info").LogFileChecked("a.go", 3)
	assert.Empty(t, quiet.String())
}

func TestLogSummary(t *testing.T) {
	summary := Summary{
		FilesGiven:        5,
		FilesIgnored:      1,
		FilesChecked:      4,
		FilesWithFindings: 2,
		Findings:          3,
		Duration:          15 * time.Millisecond,
	}

	t.Run("info level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		NewConsoleLogger(buf, "info").LogSummary(summary)
		assert.Contains(t, buf.String(), "[INFO] checked 4 of 5 files (1 ignored), 3 findings in 2 files, 0 failures in 15ms")
	})

	t.Run("hidden at warn level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		NewConsoleLogger(buf, "warn").LogSummary(summary)
		assert.Empty(t, buf.String())
	})

	t.Run("failures raise the level", func(t *testing.T) {
		failed := summary
		failed.Failures = 1

		buf := &bytes.Buffer{}
		NewConsoleLogger(buf, "warn").LogSummary(failed)
		assert.Contains(t, buf.String(), "[ERROR]")
		assert.Contains(t, buf.String(), "1 failures")
	})
}

func TestConsoleLoggerConcurrentWrites(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.LogInfo("line")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(buf.String(), "[INFO] line\n"))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0ms"},
		{250 * time.Millisecond, "250ms"},
		{5 * time.Second, "5s"},
		{90 * time.Second, "1m30s"},
		{2 * time.Minute, "2m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.in), tt.in.String())
	}
}

func TestNoOpLoggerSatisfiesLogger(t *testing.T) {
	var l Logger = NewNoOpLogger()
	l.LogInfo("x")
	l.LogSummary(Summary{})

	var _ Logger = NewConsoleLogger(nil, "info")
}
