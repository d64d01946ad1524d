package shape

// NewArrayShape publishes base as an array shape carrying the given
// initial element kind. If base is already an array shape, the result is
// base itself or its sibling of that kind, shared like any element-kind
// transition. If base is not an array shape, every call publishes a new
// array shape with its own sibling group, so two calls with the same
// non-array base and kind return distinct Shapes.
func (t *Tree) NewArrayShape(base Shape, kind ElementKind) (Shape, error) {
	p, err := t.own(base)
	if err != nil {
		return Shape{}, err
	}

	if p.elementKind != nil {
		if *p.elementKind == kind {
			return Shape{n: p}, nil
		}

		return t.transitionWithinGroup(p, kind)
	}

	group := &kindGroup{siblings: make(map[ElementKind]*node, 1)}
	k := kind
	next := &node{
		tree:          t,
		parent:        p.parent,
		slot:          p.slot,
		slotCount:     p.slotCount,
		edgeName:      p.edgeName,
		edgeAttrs:     p.edgeAttrs,
		addEdges:      make(map[transitionKey]*node),
		reconfigEdges: make(map[reconfigureKey]*node),
		flat:          cloneFlat(p.ownProperties()),
		elementKind:   &k,
		group:         group,
	}
	group.siblings[kind] = next

	return Shape{n: next}, nil
}

// TransitionElementKind returns the array shape reached from arr by
// joining arr's current element kind with requested. The
// join never narrows: SMI -> Double -> Object, and any join with a
// HOLEY kind produces the HOLEY variant. Transitioning to arr's own
// kind (or to a kind that joins to the same value) returns arr itself.
func (t *Tree) TransitionElementKind(arr Shape, requested ElementKind) (Shape, error) {
	n, err := t.own(arr)
	if err != nil {
		return Shape{}, err
	}
	if n.elementKind == nil {
		return Shape{}, ErrNotArrayShape
	}

	joined := JoinElementKind(*n.elementKind, requested)
	if joined == *n.elementKind {
		return arr, nil
	}

	return t.transitionWithinGroup(n, joined)
}

func (t *Tree) transitionWithinGroup(n *node, kind ElementKind) (Shape, error) {
	if sibling, ok := n.group.siblings[kind]; ok {
		return Shape{n: sibling}, nil
	}

	k := kind
	next := &node{
		tree:          t,
		parent:        n.parent,
		slot:          n.slot,
		slotCount:     n.slotCount,
		edgeName:      n.edgeName,
		edgeAttrs:     n.edgeAttrs,
		addEdges:      make(map[transitionKey]*node),
		reconfigEdges: make(map[reconfigureKey]*node),
		flat:          cloneFlat(n.ownProperties()),
		elementKind:   &k,
		group:         n.group,
	}
	n.group.siblings[kind] = next

	return Shape{n: next}, nil
}

// ElementKind returns s's element kind and whether s is an array shape
// at all.
func (t *Tree) ElementKind(s Shape) (ElementKind, bool, error) {
	n, err := t.own(s)
	if err != nil {
		return 0, false, err
	}
	if n.elementKind == nil {
		return 0, false, nil
	}

	return *n.elementKind, true, nil
}

func cloneFlat(src map[string]slotAttrs) map[string]slotAttrs {
	dst := make(map[string]slotAttrs, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}
