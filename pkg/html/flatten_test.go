package html

import (
	"reflect"
	"testing"
)

// tokenSummary renders a token stream compactly for comparison: tags as
// themselves, text wrapped in quotes.
func tokenSummary(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == TagToken {
			out = append(out, tok.Tag)
		} else {
			out = append(out, "\""+tok.Text+"\"")
		}
	}
	return out
}

func TestFlattenDocumentOrder(t *testing.T) {
	doc, err := Parse(`<html><h1>Title</h1><p>Hello <b>bold</b> world</p></html>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	got := tokenSummary(Flatten(doc.Root))
	want := []string{
		"html",
		"h1", `"Title"`, "/h1",
		"p", `"Hello "`, "b", `"bold"`, "/b", `" world"`, "/p",
		"/html",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("flatten order:\n got %v\nwant %v", got, want)
	}
}

func TestFlattenVoidElementHasNoCloseToken(t *testing.T) {
	doc, err := Parse(`<p>a<br>b</p>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	for _, tok := range Flatten(doc.Root) {
		if tok.Type == TagToken && tok.Tag == "/br" {
			t.Error("void element br produced a close token")
		}
	}
}

func TestFlattenDeterministic(t *testing.T) {
	doc, err := Parse(`<html><p>one</p><p>two <i>three</i></p></html>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	first := tokenSummary(Flatten(doc.Root))
	for i := 0; i < 5; i++ {
		if again := tokenSummary(Flatten(doc.Root)); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, first, again)
		}
	}
}

func TestFlattenEmptyDocument(t *testing.T) {
	if tokens := Flatten(NewDocument().Root); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %d", len(tokens))
	}
}

func TestFlattenTokensCarrySourceNodes(t *testing.T) {
	doc, err := Parse(`<p>word</p>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	for _, tok := range Flatten(doc.Root) {
		if tok.Node == nil {
			t.Errorf("token %+v has no source node", tok)
		}
	}
}
