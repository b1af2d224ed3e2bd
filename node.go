package domaintree

// node is one label position in the tree. exact and wildcard hold the literal
// pattern that terminates here, if any.
type node struct {
	children map[string]*node
	exact    string
	wildcard string
}

func (n *node) child(label string) *node {
	return n.children[label]
}

// childOrNew returns the child for label, creating it when missing.
func (n *node) childOrNew(label string) *node {
	if c, ok := n.children[label]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[string]*node)
	}
	c := &node{}
	n.children[label] = c
	return c
}

func (n *node) walk(yield func(string) bool) bool {
	if n.exact != "" && !yield(n.exact) {
		return false
	}
	if n.wildcard != "" && !yield(n.wildcard) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}
