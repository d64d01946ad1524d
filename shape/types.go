package shape

// Attrs describes a property's attributes: whether it can be reassigned,
// whether it shows up in enumeration, whether it can be deleted or
// reconfigured, and whether it is a data property or an accessor
// (getter/setter) pair.
type Attrs struct {
	Writable     bool
	Enumerable   bool
	Configurable bool
	Accessor     bool
}

// DefaultAttrs is the attribute set a freshly declared own property gets
// in the absence of an explicit descriptor: writable, enumerable,
// configurable, and a data property (not an accessor).
var DefaultAttrs = Attrs{Writable: true, Enumerable: true, Configurable: true}

// ElementKind is an array shape's specialized element storage class
//: one of SMI, Double, Object, each with a Holey variant.
// The zero value is ElementSMI.
type ElementKind uint8

const (
	ElementSMI ElementKind = iota
	ElementSMIHoley
	ElementDouble
	ElementDoubleHoley
	ElementObject
	ElementObjectHoley
)

// String renders an ElementKind for logging and diagnostics.
func (k ElementKind) String() string {
	names := [...]string{"smi", "smi_holey", "double", "double_holey", "object", "object_holey"}
	if int(k) < len(names) {
		return names[k]
	}

	return "unknown"
}

// rank orders the non-holey base kinds SMI < Double < Object.
func (k ElementKind) rank() int { return int(k) / 2 }

// holey reports whether k is the HOLEY variant of its base kind.
func (k ElementKind) holey() bool { return int(k)%2 == 1 }

// JoinElementKind computes the monotone join of two element kinds: the
// generalization never narrows (SMI -> Double -> Object) and any kind
// joined with a holey kind yields the holey variant of the wider rank
//. Join is commutative and associative, so
// join(join(a,b),c) == join(a,join(b,c)).
func JoinElementKind(a, b ElementKind) ElementKind {
	rank := a.rank()
	if b.rank() > rank {
		rank = b.rank()
	}
	holey := a.holey() || b.holey()
	k := ElementKind(2 * rank)
	if holey {
		k++
	}

	return k
}

// transitionKey identifies a property-add edge: add property name with
// the given attribute set.
type transitionKey struct {
	name  string
	attrs Attrs
}

// reconfigureKey identifies a reconfigure edge: change name's attributes
// to attrs on an already-published shape.
type reconfigureKey struct {
	name  string
	attrs Attrs
}

// slotAttrs is one entry of a shape's flattened own-property table.
type slotAttrs struct {
	slot  int
	attrs Attrs
}

// kindGroup is shared by every array-shape node reached from one another
// by element-kind transitions, giving them a common place to cache
// sibling shapes so the join is structurally shared, not recomputed.
type kindGroup struct {
	siblings map[ElementKind]*node
}

// node is the private, mutable-only-via-deprecation representation
// backing a published Shape. Shapes form a tree: every node except the
// root has exactly one parent, reached by exactly one add-edge.
type node struct {
	tree *Tree

	parent    *node
	slot      int // slot this node's own edge occupies; -1 for the root
	slotCount int // total slots defined by this shape (len of own-property list)

	edgeName  string // property name this node's edge added (empty for root)
	edgeAttrs Attrs

	addEdges       map[transitionKey]*node
	reconfigEdges  map[reconfigureKey]*node
	flat           map[string]slotAttrs // memoized flattened own-property table
	deprecated     bool
	migrationTarget *node

	elementKind *ElementKind // non-nil marks this node as an array shape
	group       *kindGroup   // shared sibling set, only set when elementKind != nil
}

// flatCacheThreshold is the chain depth beyond which a node's flattened
// own-property table is memoized rather than recomputed on every lookup.
const flatCacheThreshold = 8

// Shape is an opaque, comparable handle to a published hidden class. Two
// Shape values compare equal (==) if and only if they were produced by
// the identical transition history from the same Tree's root: this is
// the structural-sharing invariant the whole package exists to provide.
// Array shapes published by NewArrayShape on a non-array base are not
// shared this way; see NewArrayShape.
type Shape struct {
	n *node
}

// IsZero reports whether s is the zero Shape value (not associated with
// any Tree). A Shape obtained from Tree.Root or Tree.Child is never zero.
func (s Shape) IsZero() bool { return s.n == nil }
