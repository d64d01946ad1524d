package deopt

import (
	"github.com/cortenjs/corten/shape"
	"github.com/cortenjs/corten/value"
)

// MaterializeEscaped resolves every EscapedObject description into a
// MaterializedObject, keyed by its ObjectID. Resolution happens in two
// passes: first every object is allocated (its shape and a fresh
// value.ObjectID identity are fixed), then every slot is filled by
// materializing its location, which may itself be a reference back
// into this same table. Allocating before filling is what makes cyclic
// escaped-object graphs safe to resolve.
func MaterializeEscaped(tree *shape.Tree, state *JITState, objects []EscapedObject, nextObjectID func() value.ObjectID) (map[ObjectID]*MaterializedObject, error) {
	heap := make(map[ObjectID]*MaterializedObject, len(objects))

	for _, obj := range objects {
		if _, err := tree.OwnPropertyNames(obj.Shape); err != nil {
			return nil, ErrUnreachableShape
		}

		heap[obj.ID] = &MaterializedObject{
			ID:      obj.ID,
			ValueID: nextObjectID(),
			Shape:   obj.Shape,
			Slots:   make([]value.Value, len(obj.Slots)),
		}
	}

	for _, obj := range objects {
		mo := heap[obj.ID]
		for i, loc := range obj.Slots {
			v, err := Materialize(state, heap, loc)
			if err != nil {
				return nil, err
			}
			mo.Slots[i] = v
		}
	}

	return heap, nil
}

// Materialize resolves one ValueLocation against an optimized frame's
// register file and operand stack, an inline constant, or the
// already-allocated materialized-object table, returning the
// interpreter value it denotes. No widening or narrowing
// occurs: a raw small-int location stays small-int, a raw double stays
// double, and a pointer is re-tagged per its static kind as encoded in
// the ValueLocation itself.
func Materialize(state *JITState, heap map[ObjectID]*MaterializedObject, loc ValueLocation) (value.Value, error) {
	switch loc.kind {
	case locRegister:
		if loc.register < 0 || loc.register >= len(state.Registers) {
			return value.Value{}, ErrMissingLocation
		}
		return state.Registers[loc.register], nil

	case locStack:
		if loc.stackOffset < 0 || loc.stackOffset >= len(state.Stack) {
			return value.Value{}, ErrMissingLocation
		}
		return state.Stack[loc.stackOffset], nil

	case locConstant:
		return loc.constant, nil

	case locMaterializedObject:
		mo, ok := heap[loc.objectRef]
		if !ok {
			return value.Value{}, ErrMissingLocation
		}
		return value.Obj(mo.ValueID), nil

	default:
		return value.Value{}, ErrMissingLocation
	}
}
