package ilex

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ilex-xml/go-ilex/internal/token"
)

// Element is a tagged container node: <tag attr="value">...</tag>.
type Element struct {
	tag tag

	// Children holds the element's child items in document order.
	Children []Item

	// SelfClosing marks the element to render as <tag/> while it has
	// no children. An element with children always renders with
	// explicit open and close tags, whatever the flag says.
	SelfClosing bool
}

// NewElement creates a new element with no attributes or children.
func NewElement(name string) *Element {
	return &Element{tag: tag{raw: name}}
}

// NewEmptyElement creates a new element that renders self-closing
// while childless: <name/>.
func NewEmptyElement(name string) *Element {
	return &Element{tag: tag{raw: name}, SelfClosing: true}
}

// Name returns the element's tag name. It fails if the name is not
// valid UTF-8.
func (e *Element) Name() (string, error) {
	name := e.tag.name()
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("ilex: %w in tag name", ErrInvalidUTF8)
	}
	return name, nil
}

// SetName replaces the element's tag name. The end tag follows
// automatically.
func (e *Element) SetName(name string) {
	e.tag.setName(name)
}

// Attributes returns all attributes as a map. The underlying list is
// read in source order, so the last occurrence of a repeated key wins.
// Entries whose key or value is not valid UTF-8 are silently skipped.
func (e *Element) Attributes() map[string]string {
	attrs := token.ScanAttrs(e.tag.rest())
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if !utf8.ValidString(a.Key) || !utf8.ValidString(a.Value) {
			continue
		}
		m[a.Key] = a.Value
	}
	return m
}

// Attribute looks up a single attribute in the underlying list. The
// second return value reports whether the key was present. It fails if
// the matched value is not valid UTF-8.
func (e *Element) Attribute(key string) (string, bool, error) {
	for _, a := range token.ScanAttrs(e.tag.rest()) {
		if a.Key != key {
			continue
		}
		if !utf8.ValidString(a.Value) {
			return "", false, fmt.Errorf("ilex: %w in value of attribute %q", ErrInvalidUTF8, key)
		}
		return a.Value, true, nil
	}
	return "", false, nil
}

// SetAttribute sets an attribute, replacing any previous value for the
// key. The whole attribute list is rewritten from the collapsed
// key-value map, so the original attribute ordering is not preserved
// after a write. Markup-significant characters in value are escaped.
func (e *Element) SetAttribute(key, value string) {
	m := e.Attributes()
	m[key] = attrEscaper.Replace(value)
	e.tag.setAttrs(m)
}

// ItemsAtDepth returns, in document order, all items whose nesting
// depth relative to this element equals exactly depth. Depth 1 is the
// element's direct children. It panics if depth is less than 1.
func (e *Element) ItemsAtDepth(depth int) []Item {
	if depth < 1 {
		panic("ilex: depth must be at least 1")
	}
	if depth == 1 {
		items := make([]Item, len(e.Children))
		copy(items, e.Children)
		return items
	}
	var items []Item
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok {
			items = append(items, el.ItemsAtDepth(depth-1)...)
		}
	}
	return items
}

// FindDescendants returns, in document order, every descendant item
// for which pred returns true. Direct children matching the predicate
// come before matches found deeper inside child elements; siblings are
// visited left to right.
func (e *Element) FindDescendants(pred func(Item) bool) []Item {
	var items []Item
	for _, child := range e.Children {
		if pred(child) {
			items = append(items, child)
		}
	}
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok {
			items = append(items, el.FindDescendants(pred)...)
		}
	}
	return items
}

// TextContent concatenates, in document order, the payload of every
// text item within the element, descending through child elements.
// Text items whose payload is not valid UTF-8 are silently skipped.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.textContent(&sb)
	return sb.String()
}

func (e *Element) textContent(sb *strings.Builder) {
	for _, child := range e.Children {
		switch c := child.(type) {
		case *Text:
			if v, err := c.Value(); err == nil {
				sb.WriteString(v)
			}
		case *Element:
			c.textContent(sb)
		}
	}
}

func (e *Element) tokens() []token.Token {
	if e.SelfClosing && len(e.Children) == 0 {
		return []token.Token{{Type: token.EMPTY, Data: e.tag.raw}}
	}
	toks := []token.Token{{Type: token.START, Data: e.tag.raw}}
	for _, child := range e.Children {
		toks = append(toks, child.tokens()...)
	}
	return append(toks, token.Token{Type: token.END, Data: e.tag.name()})
}

// String returns the serialized form of the element and everything
// inside it.
func (e *Element) String() string {
	return token.Render(e.tokens())
}
