package ilex

import (
	"strings"

	"github.com/ilex-xml/go-ilex/internal/token"
)

// tag is the raw span of a start tag between '<' and '>': the tag name
// followed by the untouched attribute region. An element stores a
// single tag; its end tag is regenerated from the name, so renaming
// never leaves a stale pair behind.
type tag struct {
	raw string
}

func (t *tag) name() string {
	return token.Name(t.raw)
}

func (t *tag) rest() string {
	return token.Rest(t.raw)
}

// setName replaces the name prefix, leaving the attribute region
// untouched.
func (t *tag) setName(name string) {
	t.raw = name + t.rest()
}

// setAttrs rewrites the whole attribute region from a key-value map.
// Map iteration order decides attribute order, so the original
// ordering is not preserved. Values are written verbatim between
// double quotes.
func (t *tag) setAttrs(attrs map[string]string) {
	var sb strings.Builder
	sb.WriteString(t.name())
	for k, v := range attrs {
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(v)
		sb.WriteString(`"`)
	}
	t.raw = sb.String()
}
