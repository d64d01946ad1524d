// Package shape implements Corten's hidden-class transition tree: an
// ordered property-to-slot mapping with per-property attributes,
// shared structurally across every object that reaches the same shape
// by the same sequence of property adds.
//
// Design goals:
//   - One Tree per runtime, never shared across goroutines, so Tree
//     carries no internal locking; see DESIGN.md for the reasoning.
//   - Structural sharing: Child(parent, name, attrs) called with the same
//     arguments on the same parent always returns the same Shape
//     handle (pointer-equal node), by caching each transition edge on
//     its source node.
//   - Deprecation, not mutation: a published Shape's slot/attrs layout
//     never changes; a conflicting attribute change produces a new,
//     reconfigured Shape and marks the old one deprecated with a
//     migration pointer to the new one.
//
// Errors:
//
//	ErrNilShape      - a zero Shape was passed where a live shape is required.
//	ErrForeignShape  - a Shape from one Tree was passed to another Tree.
//	ErrNotArrayShape - TransitionElementKind was called on a non-array shape.
//
// Slot and Attrs do not return an error for a property the shape does
// not define; they report it through their ok result.
package shape
