package parsers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	old := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = old })
}

func TestTimeFormatter_Strings(t *testing.T) {
	f, err := NewTimeFormatter("%H:%M:%S")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ISO with fraction and Z", "2022-03-24T13:44:02.851Z", "13:44:02"},
		{"RFC3339", "2025-09-13T14:38:06Z", "14:38:06"},
		{"numeric offset keeps zone", "2025-09-13 14:38:06+05:30", "14:38:06"},
		{"space separated UTC", "2025-09-13 14:38:06 UTC", "14:38:06"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeFormatter_EpochUsesLocalZone(t *testing.T) {
	withLocal(t, time.FixedZone("TestLocal", 2*60*60))

	f, err := NewTimeFormatter("%Y-%m-%d %H:%M:%S")
	require.NoError(t, err)

	got, err := f.Format(1648129442.851)
	require.NoError(t, err)
	assert.Equal(t, "2022-03-24 15:44:02", got)

	got, err = f.Format(1700000000.0)
	require.NoError(t, err)
	assert.Equal(t, "2023-11-15 00:13:20", got)
}

func TestTimeFormatter_FractionVerbs(t *testing.T) {
	withLocal(t, time.UTC)

	f, err := NewTimeFormatter("%S.%f|%L")
	require.NoError(t, err)
	got, err := f.Format(1648129442.851)
	require.NoError(t, err)
	assert.Equal(t, "02.851000|851", got)
}

func TestTimeFormatter_Errors(t *testing.T) {
	f, err := NewTimeFormatter("%H:%M:%S")
	require.NoError(t, err)

	for _, v := range []interface{}{
		"??:??",
		true,
		map[string]interface{}{"a": 1.0},
		1e19,
		-1e19,
		1e300,
		1648129442851.0, // milliseconds, past year 9999 as seconds
	} {
		_, err := f.Format(v)
		assert.ErrorIs(t, err, ErrTimestamp, "%v", v)
	}
}

func TestTimeFormatter_EpochBounds(t *testing.T) {
	withLocal(t, time.UTC)

	f, err := NewTimeFormatter("%Y-%m-%d %H:%M:%S")
	require.NoError(t, err)

	got, err := f.Format(253402300799.0)
	require.NoError(t, err)
	assert.Equal(t, "9999-12-31 23:59:59", got)

	got, err = f.Format(-62135596800.0)
	require.NoError(t, err)
	assert.Equal(t, "0001-01-01 00:00:00", got)

	_, err = f.Format(253402300800.0)
	assert.ErrorIs(t, err, ErrTimestamp)
}

func TestNewTimeFormatter_InvalidPattern(t *testing.T) {
	_, err := NewTimeFormatter("%Q")
	assert.Error(t, err)
}

func BenchmarkTimeFormatter(b *testing.B) {
	f, err := NewTimeFormatter("%H:%M:%S")
	if err != nil {
		b.Fatal(err)
	}
	samples := []interface{}{
		"2022-03-24T13:44:02.851Z",
		"2025-09-13 14:38:06 UTC",
		1648129442.851,
	}
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(samples[i%len(samples)])
	}
}
