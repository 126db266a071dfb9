package parsers

import (
	"strings"

	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/colors"
)

// severityWidth is the column width of the rendered severity.
const severityWidth = 7

// ClassifySeverity maps a severity to its display color. Unknown and empty
// severities are cyan.
func ClassifySeverity(severity string) colors.Name {
	switch strings.ToLower(severity) {
	case "info":
		return colors.Green
	case "warning", "warn":
		return colors.Yellow
	case "error":
		return colors.Red
	default:
		return colors.Cyan
	}
}

// LevelFilter is a case-insensitive severity allow-list. A nil or empty filter
// accepts everything.
type LevelFilter struct {
	allowed map[string]bool
}

// NewLevelFilter builds a filter from a list of levels; nil when levels is empty.
func NewLevelFilter(levels []string) *LevelFilter {
	if len(levels) == 0 {
		return nil
	}
	f := &LevelFilter{allowed: make(map[string]bool, len(levels))}
	for _, l := range levels {
		f.allowed[strings.ToLower(strings.TrimSpace(l))] = true
	}
	return f
}

// Active reports whether the filter restricts anything.
func (f *LevelFilter) Active() bool {
	return f != nil && len(f.allowed) > 0
}

// Allows reports whether a line with this severity is printed. Lines without a
// severity are rejected by an active filter.
func (f *LevelFilter) Allows(severity string) bool {
	if !f.Active() {
		return true
	}
	if severity == "" {
		return false
	}
	return f.allowed[strings.ToLower(severity)]
}
