package colors

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name Name
		want string
	}{
		{Magenta, "\033[95m"},
		{Blue, "\033[94m"},
		{Cyan, "\033[96m"},
		{Green, "\033[92m"},
		{Yellow, "\033[93m"},
		{Red, "\033[91m"},
		{Endc, "\033[0m"},
		{Bold, "\033[1m"},
		{Underline, "\033[4m"},
		{Name("PURPLE"), ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.name))
		})
	}
	assert.Equal(t, "\033[0m", Reset())
}

func TestParseName(t *testing.T) {
	n, err := ParseName("cyan")
	require.NoError(t, err)
	assert.Equal(t, Cyan, n)

	n, err = ParseName(" Red ")
	require.NoError(t, err)
	assert.Equal(t, Red, n)

	_, err = ParseName("purple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAGENTA")
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeAlways, "always": ModeAlways, "AUTO": ModeAuto, "never": ModeNever} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("sometimes")
	assert.Error(t, err)
}

func TestPainter(t *testing.T) {
	p := NewPainter(ModeAlways)
	assert.True(t, p.Enabled())
	assert.Equal(t, "\033[92mINFO\033[0m", p.Paint(Green, "INFO"))
	assert.Equal(t, "\033[38;5;40mx\033[0m", p.PaintCode("\033[38;5;40m", "x"))

	off := NewPainter(ModeNever)
	assert.False(t, off.Enabled())
	assert.Equal(t, "INFO", off.Paint(Green, "INFO"))
}

var random256Re = regexp.MustCompile(`^\x1b\[38;5;(\d+)m$`)

func TestRandom256_Range(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		m := random256Re.FindStringSubmatch(Random256(r))
		require.NotNil(t, m)
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 18)
		assert.LessOrEqual(t, n, 153)
	}
	assert.Regexp(t, random256Re, Random256(nil))
}

func TestEventTable_StableAssignment(t *testing.T) {
	table := NewEventTable(rand.New(rand.NewPCG(7, 7)))
	ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}

	first := make(map[string]string, len(ids))
	for _, id := range ids {
		first[id] = table.Lookup(id)
	}
	for i := 0; i < 10; i++ {
		for _, id := range ids {
			assert.Equal(t, first[id], table.Lookup(id))
		}
	}
	assert.Equal(t, len(ids), table.Len())
}
