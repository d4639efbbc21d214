/*
Package ilex provides a mutable, in-memory tree representation of an
XML document with round-trip-safe serialization back to text.

The package offers two primary workflows depending on the use case:

1. Reading and Editing Existing Documents

Parse turns raw XML into a sequence of items: elements, text, comments,
CDATA sections, processing instructions, doctypes and the XML
declaration. Items keep the exact source spans they were read from, so
an unmodified tree serializes back to the original input byte for byte.

	items, err := ilex.Parse(`<parent><child likes="teal">Bob</child></parent>`)
	if err != nil {
		// handle error
	}

	parent := items[0].(*ilex.Element)
	child := parent.Children[0].(*ilex.Element)

	color, _, _ := child.Attribute("likes")
	child.SetAttribute("likes", "orange")

	out := ilex.ItemsToString(items)

ParseTrimmed additionally strips insignificant whitespace around text,
which is usually what document-processing code wants. Elements expose
attribute access, renaming, depth-indexed queries (ItemsAtDepth),
predicate search (FindDescendants) and text aggregation (TextContent).

2. Programmatic Tree Building

Constructors build items from scratch: NewElement, NewEmptyElement,
NewText, NewComment, NewCData, NewDoctype, NewProcInst and NewDecl.
Children is an ordered, exported slice, so trees are composed with
ordinary append calls and serialized with ItemsToString or the per-item
String method.

Decoding is deliberately best-effort wherever a whole-tree aggregate is
produced: attribute maps, text aggregation and serialization skip
fragments that are not valid UTF-8 instead of failing. Accessors that
touch a single payload (Value, Name, Attribute) surface the error.

The parser rejects structurally ill-formed input: an end tag that
closes nothing yields an UnmatchedEndTagError and an unclosed start tag
yields a MissingEndTagError. Nesting depth is bounded by the MaxDepth
option. Validation against DTDs or schemas, namespace resolution and
streaming are out of scope.
*/
package ilex
