package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/harrison/linecheck/internal/lint"
	"github.com/harrison/linecheck/internal/logger"
)

// ErrFindings is returned when at least one file has findings and every file
// could be read.
var ErrFindings = errors.New("findings reported")

// CheckFailedError is returned when one or more files could not be checked.
// It takes precedence over findings.
type CheckFailedError struct {
	Files []string
}

func (e *CheckFailedError) Error() string {
	if len(e.Files) == 1 {
		return fmt.Sprintf("1 file could not be checked: %s", e.Files[0])
	}
	return fmt.Sprintf("%d files could not be checked", len(e.Files))
}

// Runner checks files one after another and streams findings to Out.
type Runner struct {
	// Out receives findings, one file:line:char:msg per line
	Out io.Writer
	// ErrOut receives one "Error: ..." line per unreadable file
	ErrOut io.Writer
	// Logger receives diagnostics; nil disables them
	Logger logger.Logger
	// Conventions selects the expected line ending per file
	Conventions lint.Conventions
}

// RunResult is the outcome of checking a file list.
type RunResult struct {
	HasFindings bool
	Failed      []string
	Summary     logger.Summary
}

// Err converts the result to the error returned by the command.
func (r RunResult) Err() error {
	switch {
	case len(r.Failed) > 0:
		return &CheckFailedError{Files: r.Failed}
	case r.HasFindings:
		return ErrFindings
	default:
		return nil
	}
}

// Run checks every file in order. A file that cannot be read is reported on
// ErrOut and the remaining files are still checked. Findings of each file are
// written as soon as that file is done.
func (r *Runner) Run(files []string) RunResult {
	log := r.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	start := time.Now()
	var result RunResult

	for _, filename := range files {
		checker := lint.NewChecker(filename, r.Conventions)
		log.LogTrace(fmt.Sprintf("checking %s (expects %s)", filename, checker.ExpectedEOL().Name()))

		hasFindings, runErr := checker.Run()

		// findings gathered before a read failure are still printed
		if err := checker.PrintErrors(r.Out); err != nil && runErr == nil {
			runErr = err
		}

		findings := len(checker.Findings())
		result.Summary.Findings += findings
		if hasFindings {
			result.HasFindings = true
			result.Summary.FilesWithFindings++
		}

		if runErr != nil {
			result.Failed = append(result.Failed, filename)
			if r.ErrOut != nil {
				fmt.Fprintf(r.ErrOut, "Error: %v\n", runErr)
			}
			log.LogError(fmt.Sprintf("could not check %s", filename))
			continue
		}

		result.Summary.FilesChecked++
		log.LogFileChecked(filename, findings)
	}

	result.Summary.Failures = len(result.Failed)
	result.Summary.Duration = time.Since(start)
	return result
}
