package parsers

import (
	"fmt"
	"regexp"

	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/colors"
)

// Highlighter paints every match of a pattern inside a message.
type Highlighter struct {
	re      *regexp.Regexp
	color   colors.Name
	painter colors.Painter
}

// NewHighlighter compiles pattern; an empty pattern yields a nil Highlighter.
func NewHighlighter(pattern string, color colors.Name, painter colors.Painter) (*Highlighter, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid highlight regexp %q: %w", pattern, err)
	}
	return &Highlighter{re: re, color: color, painter: painter}, nil
}

// Highlight wraps each non-empty, non-overlapping match in the highlight color.
func (h *Highlighter) Highlight(msg string) string {
	if h == nil {
		return msg
	}
	return h.re.ReplaceAllStringFunc(msg, func(m string) string {
		if m == "" {
			return m
		}
		return h.painter.Paint(h.color, m)
	})
}
