package colors

import (
	"fmt"
	"math/rand/v2"
)

// Bounds of the 256-color sub-range event identifiers are drawn from.
const (
	eventColorMin = 0o22
	eventColorMax = 0o231
)

// Random256 draws a foreground escape from the event sub-range of the 256-color palette.
func Random256(r *rand.Rand) string {
	var n int
	if r == nil {
		n = rand.IntN(eventColorMax-eventColorMin+1) + eventColorMin
	} else {
		n = r.IntN(eventColorMax-eventColorMin+1) + eventColorMin
	}
	return fmt.Sprintf("\033[38;5;%dm", n)
}

// EventTable pins a color to every event identifier seen during one run.
// Different identifiers may end up with the same color.
// It is not safe for concurrent use; the run loop is its only caller.
type EventTable struct {
	rng    *rand.Rand
	colors map[string]string
}

// NewEventTable returns an empty table. A nil rng uses the global source.
func NewEventTable(rng *rand.Rand) *EventTable {
	return &EventTable{rng: rng, colors: make(map[string]string)}
}

// Lookup returns the escape assigned to id, assigning a new one on first sight.
func (t *EventTable) Lookup(id string) string {
	if c, ok := t.colors[id]; ok {
		return c
	}
	c := Random256(t.rng)
	t.colors[id] = c
	return c
}

// Len reports how many identifiers have a color.
func (t *EventTable) Len() int {
	return len(t.colors)
}
