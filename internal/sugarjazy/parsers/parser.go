package parsers

import (
	"context"
	"errors"

	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/colors"
	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/config"
)

// ErrSkipLine indicates the line produces no output but processing should continue.
var ErrSkipLine = errors.New("skip line")

type ParserOptions struct {
	Config *config.Config
	// Events is shared by every line of the run so an identifier keeps its color
	// across files.
	Events *colors.EventTable
}

// Parser turns one raw input line into the text to print.
type Parser interface {
	// ParseLine returns the display line (formatted, or the raw line passed
	// through), ErrSkipLine when the line must be suppressed, or another error
	// for fatal failures.
	ParseLine(ctx context.Context, line string) (string, error)
}
