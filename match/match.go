// Package match defines the immutable parse-tree node produced by matching
// a grammar against a byte buffer.
//
// A Node borrows into the source buffer rather than copying matched bytes,
// so peak memory is proportional to the deepest live repetition stack
// during matching, not to the size of the input.
package match

// Node is an immutable interval over a source buffer plus its substructure.
//
// Node values are never mutated after construction; Children is shared,
// not copied, by callers that only need to inspect a subtree.
type Node struct {
	Name        string
	StartOffset int
	EndOffset   int
	Source      []byte
	Children    []*Node

	fieldMap map[string][]*Node
}

// New constructs a Node. children with zero length are never carried by the
// evaluation nodes that build match trees (see package node), but New does
// not itself enforce that — it is a plain value constructor.
func New(name string, start, end int, source []byte, children []*Node) *Node {
	return &Node{
		Name:        name,
		StartOffset: start,
		EndOffset:   end,
		Source:      source,
		Children:    children,
	}
}

// Len reports the number of bytes spanned by the match.
func (n *Node) Len() int {
	return n.EndOffset - n.StartOffset
}

// Value returns the byte slice matched by this node.
func (n *Node) Value() []byte {
	return n.Source[n.StartOffset:n.EndOffset]
}

// String returns the matched bytes as a string, byte for byte: no character
// decoding is applied, so every input byte is preserved unchanged.
func (n *Node) String() string {
	return string(n.Value())
}

func (n *Node) buildFieldMap() map[string][]*Node {
	if n.fieldMap != nil {
		return n.fieldMap
	}

	fieldMap := make(map[string][]*Node, len(n.Children))
	for _, child := range n.Children {
		fieldMap[child.Name] = append(fieldMap[child.Name], child)
	}
	n.fieldMap = fieldMap
	return fieldMap
}

// GetField returns every direct child named name, in document order, or
// nil if there is none. Callers that want a single child use GetOne, which
// shares the same lazily built name index.
func (n *Node) GetField(name string) []*Node {
	return n.buildFieldMap()[name]
}

// GetOne returns the first direct child named name, or nil if there is none.
func (n *Node) GetOne(name string) *Node {
	children := n.GetField(name)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// Search performs a breadth-first search of the subtree rooted at n,
// returning the nodes (including n itself) whose Name equals name. The
// children of a node that matches are not searched, so a node nested
// inside another match of the same name is not returned.
func (n *Node) Search(name string) []*Node {
	var results []*Node

	queue := []*Node{n}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.Name == name {
			results = append(results, current)
		} else {
			queue = append(queue, current.Children...)
		}
	}

	return results
}

// SearchOne returns the first breadth-first match for name, or nil.
func (n *Node) SearchOne(name string) *Node {
	queue := []*Node{n}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.Name == name {
			return current
		}
		queue = append(queue, current.Children...)
	}
	return nil
}

type depthNode struct {
	node  *Node
	depth int
}

// SearchDepth is Search bounded to maxDepth levels below n (n itself is
// depth 0). A negative maxDepth means unbounded, equivalent to Search.
func (n *Node) SearchDepth(name string, maxDepth int) []*Node {
	var results []*Node

	queue := []depthNode{{n, 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.node.Name == name {
			results = append(results, current.node)
			continue
		}
		if maxDepth >= 0 && current.depth >= maxDepth {
			continue
		}
		for _, child := range current.node.Children {
			queue = append(queue, depthNode{child, current.depth + 1})
		}
	}

	return results
}
