package ilex

import (
	"fmt"

	"github.com/ilex-xml/go-ilex/internal/lexer"
	"github.com/ilex-xml/go-ilex/internal/token"
)

// scan runs the lexer to completion and returns the flat token
// sequence, without the trailing EOF token. A lexical error aborts the
// scan.
func scan(input string, trim bool) ([]token.Token, error) {
	l := lexer.New(input, trim)
	var toks []token.Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case token.ILLEGAL:
			return nil, &SyntaxError{Msg: tok.Data, Line: tok.Line, Column: tok.Column}
		case token.EOF:
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// buildItems reconstructs nesting from a flat token sequence. depth is
// the nesting level of the items being built, starting at 1 for the
// top level of the document. An element opening at a level beyond
// maxDepth aborts the build; non-structural tokens never count against
// the limit.
//
// For each start token the sequence is scanned forward with a counter
// to find the matching end token; the tokens strictly between the pair
// are built recursively into the new element's children. Pairing is by
// position, so a name mismatch at the point where the counter reaches
// zero means the end tag closes nothing that is open.
func buildItems(toks []token.Token, depth, maxDepth int) ([]Item, error) {
	var items []Item

	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Type {
		case token.TEXT:
			items = append(items, &Text{content{tok.Data}})
		case token.COMMENT:
			items = append(items, &Comment{content{tok.Data}})
		case token.CDATA:
			items = append(items, &CData{content{tok.Data}})
		case token.PI:
			items = append(items, &ProcInst{content{tok.Data}})
		case token.DECL:
			items = append(items, &Decl{content{tok.Data}})
		case token.DOCTYPE:
			items = append(items, &Doctype{content{tok.Data}})
		case token.EMPTY:
			if depth > maxDepth {
				return nil, fmt.Errorf("ilex: %w (limit %d)", ErrMaxDepth, maxDepth)
			}
			items = append(items, &Element{tag: tag{raw: tok.Data}, SelfClosing: true})
		case token.START:
			if depth > maxDepth {
				return nil, fmt.Errorf("ilex: %w (limit %d)", ErrMaxDepth, maxDepth)
			}
			nested := 1
			j := i + 1
			for ; j < len(toks); j++ {
				switch toks[j].Type {
				case token.START:
					nested++
				case token.END:
					nested--
				}
				if nested == 0 {
					break
				}
			}
			if j == len(toks) {
				return nil, &MissingEndTagError{
					Name:   token.Name(tok.Data),
					Line:   tok.Line,
					Column: tok.Column,
				}
			}
			if end := toks[j]; token.Name(end.Data) != token.Name(tok.Data) {
				return nil, &UnmatchedEndTagError{
					Name:   token.Name(end.Data),
					Line:   end.Line,
					Column: end.Column,
				}
			}
			children, err := buildItems(toks[i+1:j], depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			items = append(items, &Element{tag: tag{raw: tok.Data}, Children: children})
			i = j
		case token.END:
			return nil, &UnmatchedEndTagError{
				Name:   token.Name(tok.Data),
				Line:   tok.Line,
				Column: tok.Column,
			}
		}
	}

	return items, nil
}
