package ilex

import (
	"errors"
	"fmt"
)

// ErrMaxDepth is returned (wrapped) by Parse and ParseTrimmed when
// element nesting exceeds the configured maximum depth.
var ErrMaxDepth = errors.New("maximum nesting depth exceeded")

// ErrInvalidUTF8 is returned (wrapped) by accessors whose payload is
// not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// SyntaxError represents a lexical error in the raw XML source.
// It includes the position of the error.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ilex: syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// UnmatchedEndTagError reports an end tag with no matching open start
// tag, such as the </b> in "<a></b>".
type UnmatchedEndTagError struct {
	Name   string
	Line   int
	Column int
}

func (e *UnmatchedEndTagError) Error() string {
	return fmt.Sprintf("ilex: unmatched end tag </%s> at line %d, column %d", e.Name, e.Line, e.Column)
}

// MissingEndTagError reports a start tag that was still open when the
// token stream ran out.
type MissingEndTagError struct {
	Name   string
	Line   int
	Column int
}

func (e *MissingEndTagError) Error() string {
	return fmt.Sprintf("ilex: missing end tag for <%s> opened at line %d, column %d", e.Name, e.Line, e.Column)
}
