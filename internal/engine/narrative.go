package engine

import (
	"strings"
	"time"
)

// narrativeLog holds the human-readable action log, newest line first.
// Amendments extend the newest line instead of adding a new one, so a line
// reads like "21:05:12: Team 1 Easy ball potted, Foul".
type narrativeLog struct {
	lines []string
}

// Record prepends a timestamped line for a freshly recorded shot.
func (l *narrativeLog) Record(at time.Time, message string) {
	line := at.Format("15:04:05") + ": " + message
	l.lines = append([]string{line}, l.lines...)
}

// Amend appends text to the newest line. With an empty log the text becomes
// the first line on its own.
func (l *narrativeLog) Amend(text string) {
	if len(l.lines) == 0 {
		l.lines = []string{text}
		return
	}
	l.lines[0] += ", " + text
}

// Text serializes the log for snapshots. A non-empty log carries a trailing
// newline so restored text is byte-identical to what was captured.
func (l *narrativeLog) Text() string {
	if len(l.lines) == 0 {
		return ""
	}
	return strings.Join(l.lines, "\n") + "\n"
}

// Lines returns a copy of the log lines, newest first.
func (l *narrativeLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Restore replaces the log contents from serialized snapshot text.
func (l *narrativeLog) Restore(text string) {
	if text == "" {
		l.lines = nil
		return
	}
	l.lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Clear empties the log.
func (l *narrativeLog) Clear() {
	l.lines = nil
}
