package deopt_test

import (
	"fmt"

	"github.com/cortenjs/corten/deopt"
	"github.com/cortenjs/corten/shape"
	"github.com/cortenjs/corten/value"
)

func ExampleManager_Deoptimize() {
	tree := shape.NewTree()
	mgr := deopt.NewManager(tree)
	fn := deopt.NewFunctionID()

	mgr.Register(fn, map[int]*deopt.Metadata{
		0: {
			BytecodeOffset: 42,
			Frame: deopt.FrameShape{
				DeclaredLocals: 1,
				Locals:         []deopt.ValueLocation{deopt.Register(3)},
			},
		},
	})

	state := &deopt.JITState{Registers: []value.Value{3: value.Num(3.14)}}
	frames, err := mgr.Deoptimize(fn, 0, deopt.GuardFailure, deopt.Eager, state)
	if err != nil {
		panic(err)
	}

	fmt.Println(frames[0].InstructionPointer, frames[0].Locals[0].AsFloat())
	// Output: 42 3.14
}
