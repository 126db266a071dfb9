package parsers

import (
	"regexp"
	"strings"
)

// kailPrefixRe matches the routing prefix kail puts in front of every line:
// NAMESPACE/POD[CONTAINER]: REST
var kailPrefixRe = regexp.MustCompile(`^([^/]*)/([^\[]*)\[([^\]]*)\]: (.*)`)

// KailPrefix is the pod routing information stripped from a kail line.
type KailPrefix struct {
	Namespace string
	Pod       string
	Container string
}

// ExtractKailPrefix splits a kail line into its prefix and the remaining text.
// When line does not carry a prefix it is returned unchanged with ok false.
func ExtractKailPrefix(line string) (prefix KailPrefix, rest string, ok bool) {
	m := kailPrefixRe.FindStringSubmatch(line)
	if m == nil {
		return KailPrefix{}, line, false
	}
	return KailPrefix{Namespace: m[1], Pod: m[2], Container: m[3]}, m[4], true
}

// Render fills the {namespace}, {pod} and {container} placeholders of tmpl.
// Doubled braces render as literal ones.
func (p KailPrefix) Render(tmpl string) string {
	return strings.NewReplacer(
		"{{", "{",
		"}}", "}",
		"{namespace}", p.Namespace,
		"{pod}", p.Pod,
		"{container}", p.Container,
	).Replace(tmpl)
}
