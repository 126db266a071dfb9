package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/config"
	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/logger"
	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/parsers"
)

// RunSummary counts what happened to the lines of one input source.
type RunSummary struct {
	Source       string
	RawCount     int
	PrintedCount int
	SkippedCount int
}

func (s *RunSummary) add(o RunSummary) {
	s.RawCount += o.RawCount
	s.PrintedCount += o.PrintedCount
	s.SkippedCount += o.SkippedCount
}

type flusher interface {
	Flush() error
}

// writeLine writes one output line and flushes buffered writers right away so
// tailing stays live.
func writeLine(out io.Writer, line string) error {
	if _, err := io.WriteString(out, line+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if f, ok := out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}

func flush(out io.Writer) {
	if f, ok := out.(flusher); ok {
		_ = f.Flush()
	}
}

// processLine formats a single line and prints the result.
// It returns:
// - true if something was printed
// - false if the parser asked to skip the line
// - error if a fatal error occurred
func processLine(ctx context.Context, line string, p parsers.Parser, out io.Writer) (bool, error) {
	text, err := p.ParseLine(ctx, line)
	if err != nil {
		if errors.Is(err, parsers.ErrSkipLine) {
			return false, nil
		}
		return false, fmt.Errorf("parse line: %w", err)
	}
	if err := writeLine(out, text); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RunSummary) record(printed bool) {
	if printed {
		s.PrintedCount++
	} else {
		s.SkippedCount++
	}
}

// RunParse reads in to completion and prints every line in order.
func RunParse(ctx context.Context, p parsers.Parser, in io.Reader, out io.Writer, source string) (RunSummary, error) {
	log := logger.L()
	summary := RunSummary{Source: source}

	// No line length cap: a single huge line must not abort the run.
	r := bufio.NewReader(in)
	for {
		raw, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			log.Errorw("read error", "source", source, "err", readErr.Error())
			return summary, fmt.Errorf("read %s: %w", source, readErr)
		}
		if raw == "" && readErr != nil {
			return summary, nil
		}

		summary.RawCount++
		if summary.RawCount%1000 == 0 {
			log.Debugw("processing progress",
				"source", source,
				"lines_processed", summary.RawCount,
				"printed_count", summary.PrintedCount,
				"skipped_count", summary.SkippedCount)
		}

		printed, err := processLine(ctx, trimEOL(raw), p, out)
		if err != nil {
			if ctx.Err() != nil {
				flush(out)
				log.Infow("run interrupted", "source", source, "lines_processed", summary.RawCount)
				return summary, nil
			}
			log.Errorw("failed to process line",
				"source", source,
				"line_number", summary.RawCount,
				"err", err.Error())
			return summary, err
		}
		summary.record(printed)
		if readErr != nil {
			return summary, nil
		}
	}
}

// trimEOL drops one trailing "\n" and then one trailing "\r".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// RunFiles formats every file in order. The first file that cannot be opened
// or read aborts the run.
func RunFiles(ctx context.Context, p parsers.Parser, files []string, out io.Writer) (RunSummary, error) {
	total := RunSummary{Source: "files"}
	for _, path := range files {
		if ctx.Err() != nil {
			return total, nil
		}
		in, err := openInput(path)
		if err != nil {
			return total, err
		}
		s, err := RunParse(ctx, p, in, out, path)
		in.Close()
		total.add(s)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// RunStream reads in one byte at a time and prints each line as soon as its
// newline arrives. It returns when in is exhausted or ctx is cancelled; an
// unterminated fragment at end of input is discarded.
func RunStream(ctx context.Context, p parsers.Parser, in io.Reader, out io.Writer) (RunSummary, error) {
	log := logger.L()
	summary := RunSummary{Source: "stdin"}

	lines := make(chan string)
	readErr := make(chan error, 1)

	// A blocked read cannot be interrupted, so reading happens off the
	// processing loop; the goroutine dies with the process on interrupt.
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		var buf []byte
		for {
			b, err := r.ReadByte()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				if len(buf) > 0 {
					log.Debugw("discarding unterminated line at end of stream", "length", len(buf))
				}
				return
			}
			if b != '\n' {
				buf = append(buf, b)
				continue
			}
			select {
			case lines <- trimEOL(string(buf)):
			case <-ctx.Done():
				return
			}
			buf = buf[:0]
		}
	}()

	for {
		select {
		case <-ctx.Done():
			flush(out)
			log.Infow("stream interrupted", "lines_processed", summary.RawCount)
			return summary, nil
		case line, ok := <-lines:
			if !ok {
				flush(out)
				select {
				case err := <-readErr:
					return summary, fmt.Errorf("read stdin: %w", err)
				default:
					return summary, nil
				}
			}
			summary.RawCount++
			printed, err := processLine(ctx, line, p, out)
			if err != nil {
				if ctx.Err() != nil {
					flush(out)
					return summary, nil
				}
				return summary, err
			}
			summary.record(printed)
		}
	}
}

// Run picks the input source from cfg: files first, then streaming stdin,
// then bulk stdin.
func Run(ctx context.Context, cfg *config.Config, p parsers.Parser, stdin io.Reader, out io.Writer) error {
	log := logger.L()
	start := time.Now()

	var (
		summary RunSummary
		err     error
	)
	switch {
	case len(cfg.Files) > 0:
		log.Infow("starting run", "mode", "files", "files", cfg.Files)
		summary, err = RunFiles(ctx, p, cfg.Files, out)
	case cfg.Stream:
		log.Infow("starting run", "mode", "stream", "kail", cfg.Kail)
		summary, err = RunStream(ctx, p, stdin, out)
	default:
		log.Infow("starting run", "mode", "bulk")
		summary, err = RunParse(ctx, p, stdin, out, "stdin")
	}
	if err != nil {
		return err
	}

	log.Infow("completed run",
		"source", summary.Source,
		"duration", time.Since(start),
		"lines_processed", summary.RawCount,
		"printed_count", summary.PrintedCount,
		"skipped_count", summary.SkippedCount)
	return nil
}
