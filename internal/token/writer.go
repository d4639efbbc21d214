package token

import "strings"

// Append renders a single token and appends it to sb. It is total for
// every structurally valid token; ILLEGAL and EOF render as nothing.
func Append(sb *strings.Builder, t Token) {
	switch t.Type {
	case TEXT:
		sb.WriteString(t.Data)
	case START:
		sb.WriteString("<")
		sb.WriteString(t.Data)
		sb.WriteString(">")
	case END:
		sb.WriteString("</")
		sb.WriteString(t.Data)
		sb.WriteString(">")
	case EMPTY:
		sb.WriteString("<")
		sb.WriteString(t.Data)
		sb.WriteString("/>")
	case COMMENT:
		sb.WriteString("<!--")
		sb.WriteString(t.Data)
		sb.WriteString("-->")
	case CDATA:
		sb.WriteString("<![CDATA[")
		sb.WriteString(t.Data)
		sb.WriteString("]]>")
	case PI, DECL:
		sb.WriteString("<?")
		sb.WriteString(t.Data)
		sb.WriteString("?>")
	case DOCTYPE:
		sb.WriteString("<!")
		sb.WriteString(t.Data)
		sb.WriteString(">")
	}
}

// Render renders a token sequence to text.
func Render(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		Append(&sb, t)
	}
	return sb.String()
}
