package ilex

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ilex-xml/go-ilex/internal/token"
)

// Item is a single node of the item tree: either an *Element or one of
// the leaf content kinds (*Text, *Comment, *CData, *ProcInst,
// *Doctype, *Decl). The set of kinds is closed, so a type switch over
// these seven pointer types is exhaustive.
type Item interface {
	// String returns the serialized form of the item.
	String() string

	tokens() []token.Token
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
)

// content is the payload shared by every leaf kind. data is the exact
// source span between the kind's lexical delimiters.
type content struct {
	data string
}

// Value returns the payload of the item, exactly as it appeared
// between the lexical delimiters. It fails if the payload is not valid
// UTF-8.
func (c *content) Value() (string, error) {
	if !utf8.ValidString(c.data) {
		return "", fmt.Errorf("ilex: %w in item content", ErrInvalidUTF8)
	}
	return c.data, nil
}

// SetValue replaces the payload of the item. The value is stored
// verbatim.
func (c *content) SetValue(v string) {
	c.data = v
}

// Text is escaped character data between tags.
type Text struct {
	content
}

// NewText creates a new text item. Markup-significant characters in
// value are escaped.
func NewText(value string) *Text {
	return &Text{content{textEscaper.Replace(value)}}
}

// SetValue replaces the text. Markup-significant characters in value
// are escaped.
func (t *Text) SetValue(value string) {
	t.data = textEscaper.Replace(value)
}

func (t *Text) tokens() []token.Token {
	return []token.Token{{Type: token.TEXT, Data: t.data}}
}

func (t *Text) String() string { return token.Render(t.tokens()) }

// Comment is a comment: <!-- ... -->.
type Comment struct {
	content
}

// NewComment creates a new comment. The value must not contain "-->".
func NewComment(value string) *Comment {
	return &Comment{content{value}}
}

func (c *Comment) tokens() []token.Token {
	return []token.Token{{Type: token.COMMENT, Data: c.data}}
}

func (c *Comment) String() string { return token.Render(c.tokens()) }

// CData is unescaped character data stored in <![CDATA[...]]>.
type CData struct {
	content
}

// NewCData creates a new CDATA section. The value must not contain
// "]]>".
func NewCData(value string) *CData {
	return &CData{content{value}}
}

func (c *CData) tokens() []token.Token {
	return []token.Token{{Type: token.CDATA, Data: c.data}}
}

func (c *CData) String() string { return token.Render(c.tokens()) }

// ProcInst is a processing instruction: <?target ...?>.
type ProcInst struct {
	content
}

// NewProcInst creates a new processing instruction from its full
// content, target included: NewProcInst(`php echo "hi" `).
func NewProcInst(value string) *ProcInst {
	return &ProcInst{content{value}}
}

// Target returns the instruction's target, the first word of its
// content.
func (p *ProcInst) Target() string {
	return token.Name(p.data)
}

func (p *ProcInst) tokens() []token.Token {
	return []token.Token{{Type: token.PI, Data: p.data}}
}

func (p *ProcInst) String() string { return token.Render(p.tokens()) }

// Doctype is document type definition data stored in <!DOCTYPE ...>.
type Doctype struct {
	content
}

// NewDoctype creates a new doctype from the content following the
// DOCTYPE keyword: NewDoctype("html").
func NewDoctype(value string) *Doctype {
	return &Doctype{content{"DOCTYPE " + value}}
}

// Value returns the doctype content with the leading DOCTYPE keyword
// stripped.
func (d *Doctype) Value() (string, error) {
	v, err := d.content.Value()
	if err != nil {
		return "", err
	}
	if len(v) >= 7 && strings.EqualFold(v[:7], "DOCTYPE") {
		v = strings.TrimLeft(v[7:], " \t\r\n")
	}
	return v, nil
}

func (d *Doctype) tokens() []token.Token {
	return []token.Token{{Type: token.DOCTYPE, Data: d.data}}
}

func (d *Doctype) String() string { return token.Render(d.tokens()) }

// Decl is the XML declaration: <?xml version="1.0"?>.
type Decl struct {
	content
}

// NewDecl creates a new XML declaration. An empty encoding or
// standalone omits that field.
func NewDecl(version, encoding, standalone string) *Decl {
	var sb strings.Builder
	sb.WriteString(`xml version="`)
	sb.WriteString(version)
	sb.WriteString(`"`)
	if encoding != "" {
		sb.WriteString(` encoding="`)
		sb.WriteString(encoding)
		sb.WriteString(`"`)
	}
	if standalone != "" {
		sb.WriteString(` standalone="`)
		sb.WriteString(standalone)
		sb.WriteString(`"`)
	}
	return &Decl{content{sb.String()}}
}

// Version returns the declared XML version. It fails if the
// declaration has no version field.
func (d *Decl) Version() (string, error) {
	if v, ok := d.field("version"); ok {
		return v, nil
	}
	return "", fmt.Errorf("ilex: declaration has no version")
}

// Encoding returns the declared encoding, if present.
func (d *Decl) Encoding() (string, bool) {
	return d.field("encoding")
}

// Standalone returns the standalone value, if present.
func (d *Decl) Standalone() (string, bool) {
	return d.field("standalone")
}

func (d *Decl) field(key string) (string, bool) {
	for _, a := range token.ScanAttrs(token.Rest(d.data)) {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (d *Decl) tokens() []token.Token {
	return []token.Token{{Type: token.DECL, Data: d.data}}
}

func (d *Decl) String() string { return token.Render(d.tokens()) }
