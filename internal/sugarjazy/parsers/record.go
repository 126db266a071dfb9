package parsers

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"
)

// Record is the decoded JSON object of one log line. It has no fixed schema.
type Record map[string]interface{}

// Candidate keys for each logical field, first truthy match wins.
var (
	severityKeys  = []string{"severity", "level"}
	messageKeys   = []string{"msg", "message"}
	eventKeys     = []string{"event", "knative.dev/key", "caller"}
	timestampKeys = []string{"ts", "timeformat", "timestamp"}
)

// Fields holds the key each logical field resolved to, or "" when none did.
type Fields struct {
	Severity  string
	Message   string
	Event     string
	Timestamp string
}

// decodeRecord parses line as a single JSON object. ok is false for invalid
// JSON and for JSON values that are not objects.
func decodeRecord(line string) (rec Record, ok bool) {
	trimmed := bytes.TrimSpace([]byte(line))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	if err := json.Unmarshal(trimmed, &rec); err != nil || rec == nil {
		return nil, false
	}
	return rec, true
}

// ResolveFields picks the key backing each logical field.
func ResolveFields(r Record) Fields {
	return Fields{
		Severity:  r.firstTruthy(severityKeys...),
		Message:   r.firstTruthy(messageKeys...),
		Event:     r.firstTruthy(eventKeys...),
		Timestamp: r.firstTruthy(timestampKeys...),
	}
}

func (r Record) firstTruthy(keys ...string) string {
	for _, k := range keys {
		if truthy(r[k]) {
			return k
		}
	}
	return ""
}

// Text renders the value under key as display text; "" when key is empty or missing.
func (r Record) Text(key string) string {
	if key == "" {
		return ""
	}
	return textOf(r[key])
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	default:
		return true
	}
}

func textOf(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
