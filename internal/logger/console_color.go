package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// colorScheme defines consistent colors for summary counters.
// Green: clean results
// Red: findings and failures
// Yellow: ignored files
// Cyan: labels
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats a single metric with colorized label and value.
// Format: "label: value"
func formatColorizedMetric(label string, value interface{}, scheme *colorScheme) string {
	labelColored := scheme.label.Sprint(label)
	valueColored := scheme.value.Sprintf("%v", value)
	return fmt.Sprintf("%s: %s", labelColored, valueColored)
}

// formatSummary renders the plain summary line.
// Format: "checked N of M files (K ignored), F findings in X files, E failures in D"
func formatSummary(s Summary) string {
	return fmt.Sprintf("checked %d of %d files (%d ignored), %d findings in %d files, %d failures in %s",
		s.FilesChecked, s.FilesGiven, s.FilesIgnored, s.Findings, s.FilesWithFindings, s.Failures, formatDuration(s.Duration))
}

// formatColorizedSummary renders the summary with each counter colored by
// what it means: findings and failures red when non-zero, green otherwise.
// Colors are disabled when output is not a TTY via fatih/color's built-in detection.
func formatColorizedSummary(s Summary, scheme *colorScheme) string {
	parts := []string{
		formatColorizedMetric("checked", s.FilesChecked, scheme),
	}

	if s.FilesIgnored > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.warn.Sprint("ignored"), scheme.warn.Sprintf("%d", s.FilesIgnored)))
	}

	if s.Findings > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.fail.Sprint("findings"), scheme.fail.Sprintf("%d", s.Findings)))
		parts = append(parts, formatColorizedMetric("files", s.FilesWithFindings, scheme))
	} else {
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.success.Sprint("findings"), scheme.value.Sprint("0")))
	}

	if s.Failures > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.fail.Sprint("failures"), scheme.fail.Sprintf("%d", s.Failures)))
	}

	parts = append(parts, formatColorizedMetric("time", formatDuration(s.Duration), scheme))
	return strings.Join(parts, ", ")
}
