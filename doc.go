// Package corten is the execution substrate of a small JavaScript
// engine: hidden classes, a BigInt engine, a tagged value
// representation, a deoptimization pipeline, and the event loop they
// all run on.
//
// 🚀 What is corten?
//
//	A dependency-light, single-isolate-per-goroutine library that
//	brings together:
//
//	  • Shapes: a hidden-class transition tree with structural sharing
//	  • Values: a tagged sum type over Smi/Float/Bool/Null/Undefined/
//	    String/Object/BigInt
//	  • BigInt: arbitrary-precision integers, fast-pathed under 256 bits
//	  • Deopt: state materialization and frame reconstruction for the
//	    safe fallback from optimized code to the interpreter
//	  • Event loop: the microtask/macrotask scheduler everything runs on
//
// ✨ Why corten?
//
//   - No CLI, no I/O, no wire protocol: it is a library, not a runtime
//   - Pure Go, no cgo
//   - Every public type is a closed tag switch, never open polymorphism
//
// Everything is organized under five subpackages:
//
//	shape/     - hidden-class transition tree (Root, Child, Slot, Attrs)
//	value/     - tagged value model and equality (StrictEqual, SameValue)
//	bigint/    - arbitrary-precision integer arithmetic
//	deopt/     - state materializer, frame reconstructor, deopt manager
//	eventloop/ - microtask/macrotask scheduler
//
// Dive into README.md for usage examples and the package-by-package
// rundown.
//
//	go get github.com/cortenjs/corten
package corten
