package shape

// Stats summarizes a Tree's size, for diagnostics and for the deopt
// manager's reporting surface.
type Stats struct {
	NodeCount       int
	DeprecatedCount int
	MaxDepth        int
}

// Stats walks the tree from its root and reports aggregate counters.
// It is O(nodes) and intended for diagnostics, not a hot path.
func (t *Tree) Stats() Stats {
	var s Stats
	visited := make(map[*node]bool)
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		if visited[n] {
			return
		}
		visited[n] = true

		s.NodeCount++
		if n.deprecated {
			s.DeprecatedCount++
		}
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		for _, child := range n.addEdges {
			walk(child, depth+1)
		}
		for _, child := range n.reconfigEdges {
			walk(child, depth+1)
		}
		if n.group != nil {
			for _, sibling := range n.group.siblings {
				walk(sibling, depth)
			}
		}
	}
	walk(t.root, 0)

	return s
}

// OwnPropertyNames returns s's own property names in slot order.
func (t *Tree) OwnPropertyNames(s Shape) ([]string, error) {
	n, err := t.own(s)
	if err != nil {
		return nil, err
	}

	flat := n.ownProperties()
	names := make([]string, len(flat))
	for name, sa := range flat {
		names[sa.slot] = name
	}

	return names, nil
}
