package lexer

import (
	"strings"

	"github.com/ilex-xml/go-ilex/internal/token"
)

// Lexer holds the state for tokenizing raw XML source. Token data
// fields are substrings of the input, so no copying happens while
// scanning.
type Lexer struct {
	input  string
	pos    int
	line   int
	column int
	trim   bool
}

// New creates and returns a new Lexer. When trim is true, leading and
// trailing whitespace is stripped from text tokens and tokens that
// become empty are suppressed.
func New(input string, trim bool) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
		trim:   trim,
	}
}

// NextToken scans the input and returns the next token. After the
// input is exhausted, or after an ILLEGAL token has been returned,
// every call returns EOF.
func (l *Lexer) NextToken() token.Token {
	for {
		if l.pos >= len(l.input) {
			return token.Token{Type: token.EOF, Line: l.line, Column: l.column}
		}

		line, column := l.line, l.column

		if l.input[l.pos] != '<' {
			start := l.pos
			for l.pos < len(l.input) && l.input[l.pos] != '<' {
				l.advance(1)
			}
			data := l.input[start:l.pos]
			if l.trim {
				data = strings.TrimSpace(data)
				if data == "" {
					continue
				}
			}
			return token.Token{Type: token.TEXT, Data: data, Line: line, Column: column}
		}

		return l.scanMarkup(line, column)
	}
}

// scanMarkup scans a construct that begins with '<'.
func (l *Lexer) scanMarkup(line, column int) token.Token {
	rest := l.input[l.pos:]

	switch {
	case strings.HasPrefix(rest, "<!--"):
		end := strings.Index(rest[4:], "-->")
		if end < 0 {
			return l.illegal("unterminated comment", line, column)
		}
		data := rest[4 : 4+end]
		l.advance(4 + end + 3)
		return token.Token{Type: token.COMMENT, Data: data, Line: line, Column: column}

	case strings.HasPrefix(rest, "<![CDATA["):
		end := strings.Index(rest[9:], "]]>")
		if end < 0 {
			return l.illegal("unterminated CDATA section", line, column)
		}
		data := rest[9 : 9+end]
		l.advance(9 + end + 3)
		return token.Token{Type: token.CDATA, Data: data, Line: line, Column: column}

	case strings.HasPrefix(rest, "<!"):
		// Markup declaration, normally <!DOCTYPE ...>. The closing '>'
		// search is bracket-aware so an internal DTD subset may
		// contain '>' inside [...].
		depth := 0
		for i := 2; i < len(rest); i++ {
			switch rest[i] {
			case '[':
				depth++
			case ']':
				depth--
			case '>':
				if depth <= 0 {
					data := rest[2:i]
					l.advance(i + 1)
					return token.Token{Type: token.DOCTYPE, Data: data, Line: line, Column: column}
				}
			}
		}
		return l.illegal("unterminated markup declaration", line, column)

	case strings.HasPrefix(rest, "<?"):
		end := strings.Index(rest[2:], "?>")
		if end < 0 {
			return l.illegal("unterminated processing instruction", line, column)
		}
		data := rest[2 : 2+end]
		l.advance(2 + end + 2)
		typ := token.PI
		if isXMLDecl(data) {
			typ = token.DECL
		}
		return token.Token{Type: typ, Data: data, Line: line, Column: column}

	case strings.HasPrefix(rest, "</"):
		end := strings.IndexByte(rest[2:], '>')
		if end < 0 {
			return l.illegal("unterminated end tag", line, column)
		}
		data := rest[2 : 2+end]
		if token.Name(data) == "" {
			return l.illegal("missing end tag name", line, column)
		}
		l.advance(2 + end + 1)
		return token.Token{Type: token.END, Data: data, Line: line, Column: column}

	default:
		end, ok := scanTagEnd(rest)
		if !ok {
			return l.illegal("unterminated tag", line, column)
		}
		data := rest[1:end]
		l.advance(end + 1)
		if strings.HasSuffix(data, "/") {
			data = data[:len(data)-1]
			if token.Name(data) == "" {
				return l.illegal("missing tag name", line, column)
			}
			return token.Token{Type: token.EMPTY, Data: data, Line: line, Column: column}
		}
		if token.Name(data) == "" {
			return l.illegal("missing tag name", line, column)
		}
		return token.Token{Type: token.START, Data: data, Line: line, Column: column}
	}
}

// scanTagEnd finds the index of the '>' closing a start tag, skipping
// over quoted attribute values so a '>' inside a value does not
// terminate the tag.
func scanTagEnd(rest string) (int, bool) {
	i := 1
	for i < len(rest) {
		switch rest[i] {
		case '>':
			return i, true
		case '"', '\'':
			quote := rest[i]
			j := i + 1
			for j < len(rest) && rest[j] != quote {
				j++
			}
			if j >= len(rest) {
				return 0, false
			}
			i = j + 1
		default:
			i++
		}
	}
	return 0, false
}

// isXMLDecl reports whether PI data belongs to an XML declaration,
// i.e. its target is "xml" in any case.
func isXMLDecl(data string) bool {
	if len(data) < 3 {
		return false
	}
	if lower(data[0]) != 'x' || lower(data[1]) != 'm' || lower(data[2]) != 'l' {
		return false
	}
	return len(data) == 3 || data[3] == ' ' || data[3] == '\t' || data[3] == '\r' || data[3] == '\n'
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.input[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}
}

// illegal consumes the remaining input so the scan terminates after a
// lexical error.
func (l *Lexer) illegal(msg string, line, column int) token.Token {
	l.pos = len(l.input)
	return token.Token{Type: token.ILLEGAL, Data: msg, Line: line, Column: column}
}
