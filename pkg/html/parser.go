package html

import (
	"fmt"
	"strings"
)

// Parser turns raw markup text into a Document tree. It is a forgiving
// character-level parser: unknown constructs degrade to text, mismatched
// closing tags pop to the nearest matching open element, and style/script
// payloads are consumed without entering the tree.
type Parser struct {
	src   string
	pos   int
	doc   *Document
	stack []*Node
}

func NewParser(src string) *Parser {
	return &Parser{src: src, doc: NewDocument()}
}

// Parse consumes the whole input and returns the document tree.
func Parse(src string) (*Document, error) {
	return NewParser(src).Parse()
}

func (p *Parser) Parse() (*Document, error) {
	p.stack = []*Node{p.doc.Root}

	for p.pos < len(p.src) {
		if p.src[p.pos] == '<' {
			if err := p.parseTag(); err != nil {
				return nil, err
			}
			continue
		}
		p.parseText()
	}

	return p.doc, nil
}

func (p *Parser) current() *Node {
	return p.stack[len(p.stack)-1]
}

// parseText consumes up to the next '<' and appends a text leaf to the
// current open element. Runs that are pure whitespace are dropped; mixed
// runs keep their surrounding whitespace so the layout pass decides what
// a word is.
func (p *Parser) parseText() {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '<' {
		p.pos++
	}
	text := decodeEntities(p.src[start:p.pos])
	if strings.TrimSpace(text) != "" {
		p.current().AppendText(text)
	}
}

func (p *Parser) parseTag() error {
	// p.src[p.pos] == '<'
	if strings.HasPrefix(p.src[p.pos:], "<!--") {
		return p.skipComment()
	}
	if strings.HasPrefix(p.src[p.pos:], "<!") {
		// doctype or other declaration: skip to '>'
		p.skipTo('>')
		return nil
	}

	end := strings.IndexByte(p.src[p.pos:], '>')
	if end < 0 {
		// Unterminated tag: treat the rest of the input as consumed.
		p.pos = len(p.src)
		return nil
	}
	raw := p.src[p.pos+1 : p.pos+end]
	p.pos += end + 1

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if raw[0] == '/' {
		p.closeTag(strings.ToLower(strings.TrimSpace(raw[1:])))
		return nil
	}

	selfClosing := strings.HasSuffix(raw, "/")
	if selfClosing {
		raw = strings.TrimSpace(raw[:len(raw)-1])
	}

	name, attrs, err := splitTag(raw)
	if err != nil {
		return fmt.Errorf("parsing tag <%s>: %w", raw, err)
	}

	// Style and script payloads are raw text, not markup; consume them
	// without adding anything to the tree.
	if name == "style" || name == "script" {
		p.skipRawContent(name)
		return nil
	}

	node := &Node{
		Type:       ElementNode,
		TagName:    name,
		Attributes: attrs,
		Children:   make([]*Node, 0),
	}
	p.current().AddChild(node)

	if !selfClosing && !isVoidElement(name) {
		p.stack = append(p.stack, node)
	}
	return nil
}

// closeTag pops the open-element stack down to (and including) the nearest
// element with the given name. A close tag with no matching open element is
// ignored.
func (p *Parser) closeTag(name string) {
	for i := len(p.stack) - 1; i > 0; i-- {
		if p.stack[i].TagName == name {
			p.stack = p.stack[:i]
			return
		}
	}
}

func (p *Parser) skipComment() error {
	end := strings.Index(p.src[p.pos:], "-->")
	if end < 0 {
		p.pos = len(p.src)
		return nil
	}
	p.pos += end + len("-->")
	return nil
}

func (p *Parser) skipTo(c byte) {
	idx := strings.IndexByte(p.src[p.pos:], c)
	if idx < 0 {
		p.pos = len(p.src)
		return
	}
	p.pos += idx + 1
}

// skipRawContent consumes everything up to and including </name>.
func (p *Parser) skipRawContent(name string) {
	closing := "</" + name
	rest := strings.ToLower(p.src[p.pos:])
	idx := strings.Index(rest, closing)
	if idx < 0 {
		p.pos = len(p.src)
		return
	}
	p.pos += idx
	p.skipTo('>')
}

// splitTag separates "a href=x class='y'" into the tag name and its
// attribute map. Attribute values may be double-quoted, single-quoted, or
// bare; a name with no '=' maps to the empty string.
func splitTag(raw string) (string, map[string]string, error) {
	name := raw
	rest := ""
	if i := strings.IndexAny(raw, " \t\n\r"); i >= 0 {
		name, rest = raw[:i], strings.TrimSpace(raw[i+1:])
	}
	name = strings.ToLower(name)
	if name == "" {
		return "", nil, fmt.Errorf("empty tag name")
	}

	attrs := make(map[string]string)
	for rest != "" {
		var pair string
		pair, rest = nextAttribute(rest)
		if pair == "" {
			break
		}
		key, value, found := strings.Cut(pair, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if !found {
			attrs[key] = ""
			continue
		}
		attrs[key] = unquote(strings.TrimSpace(value))
	}
	return name, attrs, nil
}

// nextAttribute takes the leading attribute off s, honoring quoted values
// containing spaces.
func nextAttribute(s string) (pair, rest string) {
	inQuote := byte(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote != 0:
			if c == inQuote {
				inQuote = 0
			}
		case c == '"' || c == '\'':
			inQuote = c
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			return s[:i], strings.TrimSpace(s[i+1:])
		}
	}
	return s, ""
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
	"&amp;", "&",
)

func decodeEntities(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	return entityReplacer.Replace(s)
}
