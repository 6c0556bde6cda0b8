package html

// ContentAttr is the reserved attribute key under which text leaves expose
// their literal content. Element nodes never carry it.
const ContentAttr = "content"

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is one node of the parsed markup tree: an element with a tag name
// and attributes, or a text leaf carrying literal content. The tree is
// immutable for the duration of a layout pass.
type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
}

// Document wraps the root of a parsed tree. The root is a synthetic
// "document" element holding the top-level nodes.
type Document struct {
	Root *Node
}

func NewDocument() *Document {
	return &Document{
		Root: &Node{
			Type:     ElementNode,
			TagName:  "document",
			Children: make([]*Node, 0),
		},
	}
}

// GetAttribute looks up an attribute by name. Text leaves expose their
// content under the reserved ContentAttr key.
func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Type == TextNode && name == ContentAttr {
		return n.Text, true
	}
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// AddChild appends a child node and sets its parent pointer.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendText creates a text leaf and adds it as a child. Empty text is
// dropped.
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	n.AddChild(&Node{Type: TextNode, Text: text})
}

// TextNodes returns every text leaf in the subtree rooted at n, in
// document order.
func (n *Node) TextNodes() []*Node {
	var out []*Node
	for _, child := range n.Children {
		if child.Type == TextNode {
			out = append(out, child)
		} else {
			out = append(out, child.TextNodes()...)
		}
	}
	return out
}

// isVoidElement reports whether tag never takes a closing tag.
func isVoidElement(tag string) bool {
	switch tag {
	case "br", "hr", "img", "input", "meta", "link", "area", "base",
		"col", "embed", "param", "source", "track", "wbr":
		return true
	}
	return false
}
