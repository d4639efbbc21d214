package token

// Type is the type of a token.
type Type string

// Token represents a single lexical XML token. Data holds the exact
// source text between the kind's delimiters: the tag name plus raw
// attribute region for START/EMPTY, the tag name for END, the raw
// character data for TEXT, and so on. Keeping the undecoded span is
// what makes byte-identical re-serialization possible.
type Token struct {
	Type   Type
	Data   string
	Line   int
	Column int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // A malformed construct; Data holds the message
	EOF     Type = "EOF"     // End of input

	// Content tokens
	TEXT    Type = "TEXT"    // character data between tags
	COMMENT Type = "COMMENT" // <!-- ... -->
	CDATA   Type = "CDATA"   // <![CDATA[...]]>
	PI      Type = "PI"      // <?target ...?>
	DECL    Type = "DECL"    // <?xml ...?>
	DOCTYPE Type = "DOCTYPE" // <!DOCTYPE ...>, Data starts after "<!"

	// Structural tokens
	START Type = "START" // <tag ...>
	END   Type = "END"   // </tag>
	EMPTY Type = "EMPTY" // <tag .../>
)

// Name returns the tag-name prefix of a START, EMPTY or END token's
// raw data: everything up to the first whitespace byte.
func Name(data string) string {
	for i := 0; i < len(data); i++ {
		if isSpace(data[i]) {
			return data[:i]
		}
	}
	return data
}

// Rest returns the raw attribute region of a START or EMPTY token's
// data: everything after the tag name, including the whitespace that
// separates it from the name.
func Rest(data string) string {
	return data[len(Name(data)):]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
