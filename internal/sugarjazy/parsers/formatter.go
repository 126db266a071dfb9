package parsers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/colors"
	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/config"
	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/logger"
)

// EventChar marks the event identifier of a line, painted in the event's color.
const EventChar = "˃"

// kailPrefixWidth is the column width of the rendered kail prefix.
const kailPrefixWidth = 20

// LineParser reformats JSON log lines into colored single-line text.
type LineParser struct {
	painter        colors.Painter
	events         *colors.EventTable
	eventColouring bool
	filter         *LevelFilter
	highlight      *Highlighter
	times          *TimeFormatter // nil when timestamps are hidden
	kail           bool
	showKailPrefix bool
	kailTemplate   string
	log            *zap.SugaredLogger
}

// NewLineParser compiles everything the configuration needs so that bad
// patterns fail before any line is read.
func NewLineParser(opts ParserOptions) (*LineParser, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Get()
	}
	events := opts.Events
	if events == nil {
		events = colors.NewEventTable(nil)
	}

	mode, err := colors.ParseMode(cfg.Color)
	if err != nil {
		return nil, err
	}
	painter := colors.NewPainter(mode)

	regexpColor := colors.Cyan
	if cfg.RegexpColor != "" {
		if regexpColor, err = colors.ParseName(cfg.RegexpColor); err != nil {
			return nil, err
		}
	}
	hl, err := NewHighlighter(cfg.RegexpHighlight, regexpColor, painter)
	if err != nil {
		return nil, err
	}

	var times *TimeFormatter
	if !cfg.HideTimestamp {
		format := cfg.TimeFormat
		if format == "" {
			format = config.DefaultTimeFormat
		}
		if times, err = NewTimeFormatter(format); err != nil {
			return nil, err
		}
	}

	tmpl := cfg.KailPrefixFormat
	if tmpl == "" {
		tmpl = config.DefaultKailPrefixFormat
	}

	return &LineParser{
		painter:        painter,
		events:         events,
		eventColouring: !cfg.DisableEventColouring,
		filter:         NewLevelFilter(cfg.Levels()),
		highlight:      hl,
		times:          times,
		kail:           cfg.Kail,
		showKailPrefix: !cfg.KailNoPrefix,
		kailTemplate:   tmpl,
		log:            logger.L(),
	}, nil
}

// ParseLine formats one raw line. Lines that are not JSON objects, or carry
// neither a severity nor a message, are passed through unchanged unless a level
// filter is active, in which case they are skipped.
func (p *LineParser) ParseLine(ctx context.Context, line string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(line) == "" {
		return "", ErrSkipLine
	}

	payload := line
	var prefix KailPrefix
	hasPrefix := false
	if p.kail {
		prefix, payload, hasPrefix = ExtractKailPrefix(line)
	}

	rec, ok := decodeRecord(payload)
	if !ok {
		return p.passThrough(line)
	}

	fields := ResolveFields(rec)
	if fields.Severity == "" && fields.Message == "" {
		return p.passThrough(line)
	}

	severity := rec.Text(fields.Severity)
	if !p.filter.Allows(severity) {
		return "", ErrSkipLine
	}

	marker := ""
	if p.eventColouring && fields.Event != "" {
		code := p.events.Lookup(rec.Text(fields.Event))
		marker = p.painter.PaintCode(code, EventChar)
	}

	message := p.highlight.Highlight(rec.Text(fields.Message))

	ts := ""
	if p.times != nil && fields.Timestamp != "" {
		formatted, err := p.times.Format(rec[fields.Timestamp])
		if err != nil {
			if !errors.Is(err, ErrTimestamp) {
				return "", err
			}
			p.log.Debugw("dropping timestamp", "key", fields.Timestamp, "err", err.Error())
		} else {
			ts = p.painter.Paint(colors.Magenta, formatted) + " "
		}
	}

	kailBlock := ""
	if hasPrefix && p.showKailPrefix {
		rendered := fmt.Sprintf("%-*s", kailPrefixWidth, prefix.Render(p.kailTemplate))
		kailBlock = " " + p.painter.Paint(colors.Blue, rendered)
	}

	level := fmt.Sprintf("%-*s", severityWidth, strings.ToUpper(severity))
	return fmt.Sprintf("%s %s%s %s%s",
		p.painter.Paint(ClassifySeverity(severity), level),
		marker, kailBlock, ts, message), nil
}

func (p *LineParser) passThrough(line string) (string, error) {
	if p.filter.Active() {
		return "", ErrSkipLine
	}
	return line, nil
}
