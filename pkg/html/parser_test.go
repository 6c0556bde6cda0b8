package html

import "testing"

func TestParseElementWithAttributes(t *testing.T) {
	doc, err := Parse(`<html data-darkreader-mode="dynamic" data-darkreader-scheme="dark"></html>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(doc.Root.Children) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(doc.Root.Children))
	}

	node := doc.Root.Children[0]
	if node.TagName != "html" {
		t.Errorf("expected tag html, got %q", node.TagName)
	}
	if v, _ := node.GetAttribute("data-darkreader-mode"); v != "dynamic" {
		t.Errorf("data-darkreader-mode = %q, want dynamic", v)
	}
	if v, _ := node.GetAttribute("data-darkreader-scheme"); v != "dark" {
		t.Errorf("data-darkreader-scheme = %q, want dark", v)
	}
}

func TestParseTextContent(t *testing.T) {
	doc, err := Parse(`<html>welcome to my page</html>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	child := doc.Root.Children[0].Children[0]
	if child.Type != TextNode {
		t.Fatalf("expected text node, got type %d", child.Type)
	}
	// Text leaves expose their content under the reserved attribute key.
	if v, ok := child.GetAttribute(ContentAttr); !ok || v != "welcome to my page" {
		t.Errorf("content attribute = %q, %v", v, ok)
	}
}

func TestParseNestedContent(t *testing.T) {
	doc, err := Parse(`<html><h1 class="title-site">Welcome to my page</h1></html>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	h1 := doc.Root.Children[0].Children[0]
	if h1.TagName != "h1" {
		t.Fatalf("expected h1, got %q", h1.TagName)
	}
	if v, _ := h1.GetAttribute("class"); v != "title-site" {
		t.Errorf("class = %q, want title-site", v)
	}
	if h1.Children[0].Text != "Welcome to my page" {
		t.Errorf("h1 text = %q", h1.Children[0].Text)
	}
	if h1.Parent == nil || h1.Parent.TagName != "html" {
		t.Error("h1 parent not wired to html")
	}
}

func TestParseSiblings(t *testing.T) {
	doc, err := Parse(`<html><h1>Title</h1><h2>Subtitle</h2></html>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	html := doc.Root.Children[0]
	if len(html.Children) != 2 {
		t.Fatalf("expected 2 siblings, got %d", len(html.Children))
	}
	if html.Children[0].TagName != "h1" || html.Children[1].TagName != "h2" {
		t.Errorf("sibling tags: %q, %q", html.Children[0].TagName, html.Children[1].TagName)
	}
}

func TestParseAttributeForms(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		attr   string
		want   string
	}{
		{"double quoted", `<a href="x y"></a>`, "href", "x y"},
		{"single quoted", `<a href='x'></a>`, "href", "x"},
		{"bare", `<a href=x></a>`, "href", "x"},
		{"valueless", `<input disabled>`, "disabled", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.markup)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			node := doc.Root.Children[0]
			got, ok := node.GetAttribute(tt.attr)
			if !ok {
				t.Fatalf("attribute %q missing", tt.attr)
			}
			if got != tt.want {
				t.Errorf("attribute %q = %q, want %q", tt.attr, got, tt.want)
			}
		})
	}
}

func TestParseVoidElementDoesNotNest(t *testing.T) {
	doc, err := Parse(`<p>before<br>after</p>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	p := doc.Root.Children[0]
	if len(p.Children) != 3 {
		t.Fatalf("expected text, br, text under p; got %d children", len(p.Children))
	}
	br := p.Children[1]
	if br.TagName != "br" || len(br.Children) != 0 {
		t.Errorf("br parsed wrong: tag=%q children=%d", br.TagName, len(br.Children))
	}
}

func TestParseSkipsCommentsDoctypeStyleScript(t *testing.T) {
	doc, err := Parse(`<!doctype html><!-- note --><html><style>p { color: red }</style><script>var x = "<p>";</script><p>text</p></html>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	html := doc.Root.Children[0]
	if len(html.Children) != 1 || html.Children[0].TagName != "p" {
		t.Fatalf("expected only <p> to survive, got %d children", len(html.Children))
	}
}

func TestParseMismatchedCloseTagIgnored(t *testing.T) {
	doc, err := Parse(`<p>text</div></p>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	p := doc.Root.Children[0]
	if p.TagName != "p" || p.Children[0].Text != "text" {
		t.Errorf("unexpected tree: %q %q", p.TagName, p.Children[0].Text)
	}
}

func TestParseDecodesEntities(t *testing.T) {
	doc, err := Parse(`<p>a &amp; b &lt;c&gt;</p>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	got := doc.Root.Children[0].Children[0].Text
	if got != "a & b <c>" {
		t.Errorf("decoded text = %q", got)
	}
}

func TestTextNodesCollectsInDocumentOrder(t *testing.T) {
	doc, err := Parse(`<html><h1>one</h1><p>two <b>three</b></p></html>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	nodes := doc.Root.TextNodes()
	if len(nodes) != 3 {
		t.Fatalf("expected 3 text nodes, got %d", len(nodes))
	}
	want := []string{"one", "two ", "three"}
	for i, n := range nodes {
		if n.Text != want[i] {
			t.Errorf("text node %d = %q, want %q", i, n.Text, want[i])
		}
	}
}
