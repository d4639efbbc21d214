package ilex

import (
	"strings"

	"github.com/ilex-xml/go-ilex/internal/token"
)

// Parse parses raw XML into its top-level sequence of items. Text is
// kept exactly as written, so serializing the unmodified result with
// ItemsToString reproduces the input byte for byte.
func Parse(input string, opts ...Option) ([]Item, error) {
	return parse(input, false, opts)
}

// ParseTrimmed parses raw XML, stripping leading and trailing
// whitespace from text items and dropping the ones that become empty.
func ParseTrimmed(input string, opts ...Option) ([]Item, error) {
	return parse(input, true, opts)
}

func parse(input string, trim bool, opts []Option) ([]Item, error) {
	o := options{
		maxDepth: defaultMaxDepth,
	}

	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	toks, err := scan(input, trim)
	if err != nil {
		return nil, err
	}

	return buildItems(toks, 1, o.maxDepth)
}

// ItemsToString serializes a sequence of items.
//
// Equivalent to calling String on each item and concatenating the
// results.
func ItemsToString(items []Item) string {
	var sb strings.Builder
	for _, item := range items {
		for _, t := range item.tokens() {
			token.Append(&sb, t)
		}
	}
	return sb.String()
}
