package irgen

import (
	"github.com/chtholly-lang/chtholly/ir"
	"github.com/chtholly-lang/chtholly/ptree"
)

// declInstruction selects the Object.* declaration opcode for the given
// combination of binding kind, constraint presence and pack-ness, per the
// declaration-opcode matrix.
func declInstruction(prop ObjectProp, name string, hasConstraint, packed bool) ir.Instruction {
	switch {
	case prop == ObjectPropVar && !hasConstraint && !packed:
		return ir.Object.Var(name)
	case prop == ObjectPropVar && !hasConstraint && packed:
		return ir.Object.VarPack(name)
	case prop == ObjectPropVar && hasConstraint && !packed:
		return ir.Object.VarWithConstraint(name)
	case prop == ObjectPropVar && hasConstraint && packed:
		return ir.Object.VarPackWithConstraint(name)
	case prop == ObjectPropConst && !hasConstraint && !packed:
		return ir.Object.Const(name)
	case prop == ObjectPropConst && !hasConstraint && packed:
		return ir.Object.ConstPack(name)
	case prop == ObjectPropConst && hasConstraint && !packed:
		return ir.Object.ConstWithConstraint(name)
	default:
		return ir.Object.ConstPackWithConstraint(name)
	}
}

// walkSingleConstraintDecl lowers a single (non-packed) binding target:
// a ConstraintExpression holding just its bound name, or that name plus
// a trailing constraint expression. The constraint, when present, is
// walked first so its own instructions (typically an Object.Use of a
// type name) precede the declaration opcode that names the binding
// itself, matching the opcode table's ordering.
func walkSingleConstraintDecl(c ptree.Observer, seq *ir.Sequence, state *State) error {
	if c.Name() != "ConstraintExpression" {
		fault("walkSingleConstraintDecl: expected ConstraintExpression, got %q", c.Name())
	}
	switch c.ChildrenSize() {
	case 1:
		seq.Push(declInstruction(state.ObjectProp, c.ChildAt(0).Value().Value, false, false))
		return nil
	case 2:
		if err := walk(c.ChildAt(1), seq, state); err != nil {
			return err
		}
		seq.Push(declInstruction(state.ObjectProp, c.ChildAt(0).Value().Value, true, false))
		return nil
	default:
		fault("walkSingleConstraintDecl: ConstraintExpression expected 1 or 2 children, got %d", c.ChildrenSize())
		return nil
	}
}

// walkPatternBindingItem lowers one item of a parenthesized, packed
// binding target: either a bare Identifier (the common case, its
// ConstraintExpressionAtPatternExpression wrapper having been cut during
// parsing since it carried neither a pack marker nor a constraint), or a
// ConstraintExpressionAtPatternExpression term holding the name plus
// some combination of a PackMarker token and a constraint expression.
// Packed-ness is read per item from the presence of a PackMarker child,
// not assumed uniformly for the whole pattern — "(x..., y: Int, z)"
// packs only x.
func walkPatternBindingItem(c ptree.Observer, seq *ir.Sequence, state *State) error {
	switch c.Name() {
	case "Identifier":
		seq.Push(declInstruction(state.ObjectProp, c.Value().Value, false, false))
		return nil
	case "ConstraintExpressionAtPatternExpression":
		if c.ChildrenSize() == 0 {
			fault("walkPatternBindingItem: %s has no name child", c.Name())
		}
		name := c.ChildAt(0).Value().Value
		packed := false
		var constraint ptree.Observer
		hasConstraint := false
		for i := 1; i < c.ChildrenSize(); i++ {
			child := c.ChildAt(i)
			if child.Name() == "PackMarker" {
				packed = true
				continue
			}
			hasConstraint = true
			constraint = child
		}
		if hasConstraint {
			if err := walk(constraint, seq, state); err != nil {
				return err
			}
		}
		seq.Push(declInstruction(state.ObjectProp, name, hasConstraint, packed))
		return nil
	default:
		fault("walkPatternBindingItem: unexpected binding node %q", c.Name())
		return nil
	}
}

// declarationWalker builds the walker for VarDefineExpression and
// ConstDefineExpression. Both share the same shape: a binding target
// (always either a single ConstraintExpression or a parenthesized
// PatternExpression) and an optional initializer List, juxtaposed with
// no "=" of its own.
func declarationWalker(prop ObjectProp) walkerFunc {
	return func(o ptree.Observer, seq *ir.Sequence, state *State) error {
		children := o.Children()
		if len(children) == 0 {
			fault("declarationWalker: %s has no binding target", o.Name())
		}
		seq.Push(ir.Object.Begin())
		hasInit := false
		err := state.withObjectProp(prop, func() error {
			binding := children[0]
			switch binding.Name() {
			case "PatternExpression":
				if err := walkPackedPatternAutomaton(binding, seq, state); err != nil {
					return err
				}
			case "ConstraintExpression":
				if err := walkSingleConstraintDecl(binding, seq, state); err != nil {
					return err
				}
			default:
				fault("declarationWalker: unexpected binding target %q", binding.Name())
			}
			if len(children) > 1 {
				hasInit = true
				return walk(children[1], seq, state)
			}
			return nil
		})
		if err != nil {
			return err
		}
		if hasInit {
			seq.Push(ir.Object.EndWithInit())
		} else {
			seq.Push(ir.Object.End())
		}
		return nil
	}
}
