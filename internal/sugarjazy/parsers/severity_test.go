package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/colors"
)

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		in   string
		want colors.Name
	}{
		{"info", colors.Green},
		{"INFO", colors.Green},
		{"warn", colors.Yellow},
		{"Warning", colors.Yellow},
		{"error", colors.Red},
		{"ERROR", colors.Red},
		{"debug", colors.Cyan},
		{"fatal", colors.Cyan},
		{"", colors.Cyan},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySeverity(tt.in))
		})
	}
}

func TestLevelFilter(t *testing.T) {
	var none *LevelFilter
	assert.False(t, none.Active())
	assert.True(t, none.Allows(""))
	assert.True(t, none.Allows("debug"))
	assert.Nil(t, NewLevelFilter(nil))

	f := NewLevelFilter([]string{"Info", " error "})
	assert.True(t, f.Active())
	assert.True(t, f.Allows("INFO"))
	assert.True(t, f.Allows("error"))
	assert.False(t, f.Allows("debug"))
	assert.False(t, f.Allows(""))
}
