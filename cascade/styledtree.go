package cascade

import (
	"github.com/npillmayer/stylecore/domiface"
	"github.com/npillmayer/stylecore/internal/tree"
	"github.com/npillmayer/stylecore/style"
)

// StyNode is one node of a styled tree: a domiface.Element paired with its
// fully computed style, linked into the generic tree.Node machinery the way
// the DOM/CSSOM layer pairs an HTML node with its computed style.
type StyNode struct {
	tree.Node[*StyNode]
	element domiface.Element
	styles  *style.ComputedStyle
}

// newStyNodeFor creates a styled node wrapping e, not yet carrying a
// computed style.
func newStyNodeFor(e domiface.Element) *tree.Node[*StyNode] {
	sn := &StyNode{element: e}
	sn.Payload = sn
	return &sn.Node
}

// Node retrieves the styled payload from a generic tree node, or nil.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Element returns the domiface.Element this styled node wraps.
func (sn *StyNode) Element() domiface.Element {
	return sn.element
}

// Styles returns the computed style for this node, or nil before the tree
// has been styled.
func (sn *StyNode) Styles() *style.ComputedStyle {
	return sn.styles
}

// buildStructure mirrors e's element subtree into a tree.Node[*StyNode]
// structure, with no styles computed yet.
func buildStructure(e domiface.Element) *tree.Node[*StyNode] {
	n := newStyNodeFor(e)
	for _, ch := range e.ChildNodes() {
		n.AddChild(buildStructure(ch))
	}
	return n
}

// StyleTree builds a styled tree rooted at root: first the structural
// mirror of root's element subtree, then a single top-down pass computing
// and attaching each node's style. TopDown's parent-before-children
// guarantee is what lets a child's inherited properties read its parent's
// already-computed style.
func (m *Manager) StyleTree(root domiface.Element) (*tree.Node[*StyNode], error) {
	rootNode := buildStructure(root)
	action := func(n *tree.Node[*StyNode], parent *tree.Node[*StyNode], position int) (*tree.Node[*StyNode], error) {
		sn := Node(n)
		var parentStyles *style.ComputedStyle
		if p := Node(parent); p != nil {
			parentStyles = p.styles
		}
		sn.styles = m.ComputeStyle(sn.element, parentStyles)
		return n, nil
	}
	_, err := tree.NewWalker(rootNode).TopDown(action).Promise()()
	if err != nil {
		return nil, err
	}
	return rootNode, nil
}
