// Package value implements Corten's tagged value model (component C1):
// small integer, double, boolean, null, undefined, string handle, object
// handle, and BigInt handle, all behind one closed Value type.
//
// Design goals:
//   - Zero surprises: Value is a small, comparable struct; no interface
//     boxing, no hidden allocation on the hot path of tag dispatch.
//   - Closed dispatch: every operation switches on Tag, never on Go's
//     dynamic type system.
//   - Two equality flavors: StrictEqual (NaN ≠ NaN) and SameValueZero
//     (NaN == NaN, +0 == -0)
//   - BigInt never mixes with Number: every arithmetic and comparison
//     entry point that would cross that boundary is rejected at the
//     value layer before it reaches the bigint package, except Compare, which
//     compares mathematical value across BigInt and float64 without
//     coercion.
//
// Errors:
//
//	ErrBigIntMix - an operation attempted to combine a BigInt Value with
//	               a SmallInt or Float Value outside of Compare.
package value
