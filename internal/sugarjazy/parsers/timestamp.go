package parsers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/lestrrat-go/strftime"
)

// Epoch seconds accepted for numeric timestamps: 0001-01-01 to 9999-12-31 UTC.
const (
	minEpochSeconds = -62135596800
	maxEpochSeconds = 253402300799
)

// ErrTimestamp is returned for timestamp values that cannot be turned into a time.
var ErrTimestamp = errors.New("unparsable timestamp")

// TimeFormatter renders timestamp values with a strftime pattern.
type TimeFormatter struct {
	pattern *strftime.Strftime
}

// NewTimeFormatter compiles pattern. Besides the usual strftime verbs it
// understands %f (microseconds) and %L (milliseconds).
func NewTimeFormatter(pattern string) (*TimeFormatter, error) {
	p, err := strftime.New(pattern,
		strftime.WithSpecification('f', strftime.AppendFunc(appendMicroseconds)),
		strftime.WithSpecification('L', strftime.AppendFunc(appendMilliseconds)),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid time format %q: %w", pattern, err)
	}
	return &TimeFormatter{pattern: p}, nil
}

// Format parses v and renders it.
func (f *TimeFormatter) Format(v interface{}) (string, error) {
	t, err := parseTimestamp(v)
	if err != nil {
		return "", err
	}
	return f.pattern.FormatString(t), nil
}

// parseTimestamp reads JSON numbers as Unix epoch seconds in the local zone and
// strings with dateparse, keeping the zone found in the string.
func parseTimestamp(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) || t < minEpochSeconds || t > maxEpochSeconds {
			return time.Time{}, fmt.Errorf("%w: %v", ErrTimestamp, t)
		}
		return time.UnixMicro(int64(math.Round(t * 1e6))).Local(), nil
	case string:
		parsed, err := dateparse.ParseAny(t)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrTimestamp, t, err)
		}
		return parsed, nil
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrTimestamp, v)
	}
}

func appendMicroseconds(b []byte, t time.Time) []byte {
	return appendPadded(b, t.Nanosecond()/int(time.Microsecond), 6)
}

func appendMilliseconds(b []byte, t time.Time) []byte {
	return appendPadded(b, t.Nanosecond()/int(time.Millisecond), 3)
}

func appendPadded(b []byte, n, width int) []byte {
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}
