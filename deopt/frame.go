package deopt

import (
	"github.com/cortenjs/corten/shape"
	"github.com/cortenjs/corten/value"
)

// Reconstruct rebuilds every interpreter frame live at meta's bailout
// point, outer-to-inner, from state and meta. Each
// frame's locals count is validated against its DeclaredLocals, and its
// locals and operand stack are materialized from their recorded
// locations; the innermost
// frame's instruction pointer is set to meta.BytecodeOffset, and each
// outer (inlined) frame's instruction pointer is set to its own
// ReturnOffset, the point execution resumes at once the inlined call
// that frame made would have returned.
func Reconstruct(tree *shape.Tree, state *JITState, meta *Metadata, nextObjectID func() value.ObjectID) ([]*InterpreterFrame, error) {
	heap, err := MaterializeEscaped(tree, state, meta.EscapedObjects, nextObjectID)
	if err != nil {
		return nil, err
	}

	shapes := make([]FrameShape, 0, len(meta.InlinedFrames)+1)
	shapes = append(shapes, meta.InlinedFrames...)
	shapes = append(shapes, meta.Frame)

	frames := make([]*InterpreterFrame, len(shapes))
	for i, fs := range shapes {
		if len(fs.Locals) != fs.DeclaredLocals {
			return nil, ErrFrameSizeMismatch
		}

		locals := make([]value.Value, len(fs.Locals))
		for j, loc := range fs.Locals {
			v, err := Materialize(state, heap, loc)
			if err != nil {
				return nil, err
			}
			locals[j] = v
		}

		operandStack := make([]value.Value, len(fs.OperandStack))
		for j, loc := range fs.OperandStack {
			v, err := Materialize(state, heap, loc)
			if err != nil {
				return nil, err
			}
			operandStack[j] = v
		}

		ip := fs.ReturnOffset
		isInnermost := i == len(shapes)-1
		if isInnermost {
			ip = meta.BytecodeOffset
		}

		frame := &InterpreterFrame{
			InstructionPointer: ip,
			Locals:             locals,
			OperandStack:       operandStack,
		}
		if i > 0 {
			frame.Caller = frames[i-1]
		}
		frames[i] = frame
	}

	return frames, nil
}
