// Package render maps an editorial document plus layout settings to a
// deterministic visual tree, and serializes that tree to standalone HTML.
// Rendering is pure: no clock, no randomness, no mutation of its inputs.
package render

// Node is one element of the visual tree.
type Node struct {
	Tag      string
	ID       string
	Classes  []string
	Style    string // inline style text, used only for user-supplied colors
	Text     string
	Children []*Node
}

// El creates an element node.
func El(tag string, classes ...string) *Node {
	return &Node{Tag: tag, Classes: classes}
}

// Text creates an element node holding text content.
func Text(tag, text string, classes ...string) *Node {
	return &Node{Tag: tag, Classes: classes, Text: text}
}

// Add appends children and returns the node for chaining.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// WithID sets the element id.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithStyle sets the inline style text.
func (n *Node) WithStyle(style string) *Node {
	n.Style = style
	return n
}

// Find returns the first node in the tree with the given class, or nil.
// Depth-first, document order.
func (n *Node) Find(class string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Classes {
		if c == class {
			return n
		}
	}
	for _, child := range n.Children {
		if found := child.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in the tree with the given class, in document
// order.
func (n *Node) FindAll(class string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Classes {
		if c == class {
			out = append(out, n)
			break
		}
	}
	for _, child := range n.Children {
		out = append(out, child.FindAll(class)...)
	}
	return out
}

// HasClass reports whether the node carries the given class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}
