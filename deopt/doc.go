// Package deopt implements Corten's deoptimization subsystem: the state
// materializer, frame reconstructor, and deopt manager. Together they
// provide the safe fallback from speculative, specialized code back to
// the interpreter when a runtime assumption breaks, whether about a
// shape, a type, or a value range.
//
// A bailout point's Metadata describes, once and for all at
// registration time, how to rebuild every interpreter frame live at
// that point from an optimized frame's register file, operand stack,
// constant pool, and any scalar-replaced (escaped) objects. Escaped
// objects are materialized in two passes, first allocate by shape, then
// fill slots, so cyclic object graphs never deadlock the materializer.
//
// Deoptimization is either EAGER (synchronous, immediate) or LAZY
// (deferred to the next safe point, a loop back-edge or function
// exit). A function registered for optimized execution moves through
// exactly one path of the state machine:
//
//	FRESH -> REGISTERED -> INVALIDATED -> RETIRED   (lazy)
//	FRESH -> REGISTERED -> RETIRED                  (eager)
//
// RETIRED is terminal: the interpreter runs that function until a
// future re-optimization calls Register again with a fresh FunctionID.
//
// Reconstruction is always correct or fatal; it is never retried and
// never partially succeeds, since running the wrong user code is
// unsound. The Manager wraps a reconstruction failure with
// github.com/pkg/errors (function id, bailout point, reason) and, if it
// was built WithLogger, reports it at Error level before returning it.
// This package never calls os.Exit itself.
package deopt
