package irgen

import (
	"github.com/chtholly-lang/chtholly/ir"
	"github.com/chtholly-lang/chtholly/ptree"
)

// walkArrayList lowers "[e1, e2, ...]" as a call to a well-known builtin
// name, its elements pushed as the call's arguments.
func walkArrayList(o ptree.Observer, seq *ir.Sequence, state *State) error {
	return walkLiteralListLike(o, seq, state, "array.literal")
}

// walkDictList lowers "{e1, e2, ...}" the same way as walkArrayList: the
// grammar gives DictList the exact same shape as ArrayList, with no
// key:value pairing of its own.
func walkDictList(o ptree.Observer, seq *ir.Sequence, state *State) error {
	return walkLiteralListLike(o, seq, state, "dict.literal")
}

func walkLiteralListLike(o ptree.Observer, seq *ir.Sequence, state *State, builtin string) error {
	seq.Push(ir.Block.Begin())
	seq.Push(ir.Object.Use(builtin))
	if err := iterateChildrenForAll(o, seq, state, walk); err != nil {
		return err
	}
	seq.Push(ir.Function.Call())
	return nil
}
