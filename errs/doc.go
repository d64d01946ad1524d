// Package errs defines the four error kinds shared across Corten's core
// packages (value, shape, bigint, deopt, eventloop) and a Classify helper
// that maps any error produced by those packages back to its kind.
//
// Corten's error taxonomy:
//
//	TYPE      - BigInt mixed with a number, or arithmetic on incompatible
//	            tagged kinds, or a reconstruction type-kind mismatch.
//	RANGE     - negative BigInt exponent, invalid AsIntN/AsUintN width,
//	            negative index in a host query.
//	REFERENCE - access to an undeclared global binding. Surfaced by the
//	            interpreter layer, not by this core; Classify never returns
//	            Reference for an error raised inside this module, but the
//	            kind exists so a host's interpreter-level errors can be
//	            tagged consistently alongside the core's.
//	FATAL     - malformed deopt metadata, an unreachable shape, a frame-size
//	            mismatch. The only recoverable response is termination.
//
// Every sentinel error exported by value, shape, bigint, eventloop and
// deopt is registered with Classify at package init time via Register, so
// a host can branch on Classify(err) instead of calling errors.Is against
// every sentinel in every package.
package errs
