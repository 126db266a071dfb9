// Package colors holds the fixed ANSI palette used to render log lines and the
// run-scoped table that pins a color to every event identifier.
package colors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Name identifies an entry of the palette. Lookups are case-insensitive.
type Name string

const (
	Magenta   Name = "MAGENTA"
	Blue      Name = "BLUE"
	Cyan      Name = "CYAN"
	Green     Name = "GREEN"
	Yellow    Name = "YELLOW"
	Red       Name = "RED"
	Endc      Name = "ENDC"
	Bold      Name = "BOLD"
	Underline Name = "UNDERLINE"
)

var attributes = map[Name]color.Attribute{
	Magenta:   color.FgHiMagenta,
	Blue:      color.FgHiBlue,
	Cyan:      color.FgHiCyan,
	Green:     color.FgHiGreen,
	Yellow:    color.FgHiYellow,
	Red:       color.FgHiRed,
	Endc:      color.Reset,
	Bold:      color.Bold,
	Underline: color.Underline,
}

// Escape returns the escape sequence of a palette entry, e.g. "\033[92m" for GREEN.
func Escape(n Name) string {
	attr, ok := attributes[n]
	if !ok {
		return ""
	}
	return fmt.Sprintf("\033[%dm", attr)
}

// Reset is the neutral escape that ends every colored span.
func Reset() string {
	return Escape(Endc)
}

// ParseName resolves a user supplied color name against the palette.
func ParseName(s string) (Name, error) {
	n := Name(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := attributes[n]; !ok {
		return "", fmt.Errorf("unknown color %q (valid: %s)", s, strings.Join(Names(), ", "))
	}
	return n, nil
}

// Names lists the palette entries in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(attributes))
	for n := range attributes {
		names = append(names, string(n))
	}
	sort.Strings(names)
	return names
}

// Mode controls whether escape sequences are emitted at all.
type Mode string

const (
	ModeAlways Mode = "always"
	ModeAuto   Mode = "auto"
	ModeNever  Mode = "never"
)

// ParseMode validates a --color value.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAlways, ModeAuto, ModeNever:
		return m, nil
	case "":
		return ModeAlways, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (valid: always, auto, never)", s)
	}
}

// Painter wraps text in palette escapes, or leaves it untouched when disabled.
type Painter struct {
	enabled bool
}

// NewPainter builds a Painter for the given mode. In auto mode the terminal
// detection of fatih/color decides (stdout is a tty and NO_COLOR is unset).
func NewPainter(m Mode) Painter {
	switch m {
	case ModeNever:
		return Painter{enabled: false}
	case ModeAuto:
		return Painter{enabled: !color.NoColor}
	default:
		return Painter{enabled: true}
	}
}

// Enabled reports whether the painter emits escape sequences.
func (p Painter) Enabled() bool { return p.enabled }

// Paint wraps s in the escape for n followed by the reset escape.
func (p Painter) Paint(n Name, s string) string {
	return p.PaintCode(Escape(n), s)
}

// PaintCode wraps s in an arbitrary escape sequence followed by the reset escape.
func (p Painter) PaintCode(code, s string) string {
	if !p.enabled {
		return s
	}
	return code + s + Reset()
}
