package html

// TokenType discriminates the entries of a flattened document.
type TokenType int

const (
	// TagToken marks an element boundary. Tag holds the element name;
	// closing boundaries are prefixed with '/', mirroring source markup.
	TagToken TokenType = iota
	// TextToken carries a run of literal text.
	TextToken
)

// Token is one entry of the document-order flattening of a tree. Element
// nodes contribute an opening tag token, their descendants in order, and a
// closing tag token; text leaves contribute a single text token. The
// traversal is deterministic for a given tree.
type Token struct {
	Type TokenType
	Tag  string
	Text string
	Node *Node
}

// Flatten produces the document-order token sequence for the subtree under
// root. The synthetic root element itself contributes no tag tokens. Void
// elements (br, img, ...) contribute only an opening tag.
func Flatten(root *Node) []Token {
	var tokens []Token
	for _, child := range root.Children {
		tokens = flattenNode(child, tokens)
	}
	return tokens
}

func flattenNode(n *Node, tokens []Token) []Token {
	if n.Type == TextNode {
		return append(tokens, Token{Type: TextToken, Text: n.Text, Node: n})
	}

	tokens = append(tokens, Token{Type: TagToken, Tag: n.TagName, Node: n})
	for _, child := range n.Children {
		tokens = flattenNode(child, tokens)
	}
	if !isVoidElement(n.TagName) {
		tokens = append(tokens, Token{Type: TagToken, Tag: "/" + n.TagName, Node: n})
	}
	return tokens
}
