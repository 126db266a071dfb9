package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKailPrefix(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   KailPrefix
		rest   string
		wantOK bool
	}{
		{
			name:   "full prefix",
			line:   `ns/pod-1[HELLOMOTO]: {"level":"info"}`,
			want:   KailPrefix{Namespace: "ns", Pod: "pod-1", Container: "HELLOMOTO"},
			rest:   `{"level":"info"}`,
			wantOK: true,
		},
		{
			name:   "plain text rest",
			line:   `tekton/webhook-7d9[webhook]: starting up`,
			want:   KailPrefix{Namespace: "tekton", Pod: "webhook-7d9", Container: "webhook"},
			rest:   `starting up`,
			wantOK: true,
		},
		{
			name:   "empty components",
			line:   `/[]: x`,
			want:   KailPrefix{},
			rest:   `x`,
			wantOK: true,
		},
		{
			name: "no prefix",
			line: `{"level":"info"}`,
			rest: `{"level":"info"}`,
		},
		{
			name: "missing space after colon",
			line: `ns/pod[c]:{"level":"info"}`,
			rest: `ns/pod[c]:{"level":"info"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, ok := ExtractKailPrefix(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestKailPrefixRender(t *testing.T) {
	p := KailPrefix{Namespace: "ns", Pod: "pod", Container: "ctr"}
	assert.Equal(t, "ns/pod[ctr]", p.Render("{namespace}/{pod}[{container}]"))
	assert.Equal(t, "<<ctr>>", p.Render("<<{container}>>"))
	assert.Equal(t, "static", p.Render("static"))
}

func TestKailPrefixRender_EscapedBraces(t *testing.T) {
	p := KailPrefix{Namespace: "ns", Pod: "pod", Container: "ctr"}
	assert.Equal(t, "{namespace}", p.Render("{{namespace}}"))
	assert.Equal(t, "{pod}", p.Render("{{{pod}}}"))
	assert.Equal(t, "{ns} ctr", p.Render("{{{namespace}}} {container}"))
}
