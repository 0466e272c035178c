package irgen

import (
	"github.com/chtholly-lang/chtholly/ir"
	"github.com/chtholly-lang/chtholly/ptree"
)

// automatonState is the two-state DFA the Expression/PatternExpression
// walkers drive across their children: value, then separator, alternating.
// Reified as a plain loop rather than a generic finite-automaton type.
type automatonState int

const (
	stateValue automatonState = iota
	stateSep
)

// walkSeparatedList drives the value/sep automaton common to Expression and
// PatternExpression over an explicit child slice: item := value child. Each
// value child is preceded by a fresh Block.Begin and handed to item. Each
// following Separator child closes the block: ";" with Block.End, "," with
// Block.Drop. If the list does not end on a separator, a closing Block.End
// is emitted after the loop.
func walkSeparatedList(children []ptree.Observer, seq *ir.Sequence, state *State, item walkerFunc) error {
	st := stateValue
	for _, c := range children {
		switch st {
		case stateValue:
			if c.Name() == "Separator" {
				fault("walkSeparatedList: expected a value child, got a Separator")
			}
			seq.Push(ir.Block.Begin())
			if err := item(c, seq, state); err != nil {
				return err
			}
			st = stateSep
		case stateSep:
			if c.Name() != "Separator" {
				fault("walkSeparatedList: expected a Separator child, got %q", c.Name())
			}
			switch c.Value().Value {
			case ";":
				seq.Push(ir.Block.End())
			case ",":
				seq.Push(ir.Block.Drop())
			default:
				fault("walkSeparatedList: unrecognized separator %q", c.Value().Value)
			}
			st = stateValue
		}
	}
	if st == stateSep {
		seq.Push(ir.Block.End())
	}
	return nil
}

func walkExpressionAutomaton(o ptree.Observer, seq *ir.Sequence, state *State) error {
	return walkSeparatedList(o.Children(), seq, state, walk)
}

// walkPackedPatternAutomaton drives the same automaton over a
// PatternExpression's items, lowering each one through
// walkPatternBindingItem rather than the generic walk dispatch (a
// pattern item's bare Identifier there does not mean "use this name's
// value", unlike everywhere else in the tree). A PatternExpression may
// carry one extra trailing child beyond its item/separator list: an
// overall constraint wrapped as PatternExpressionConstraint, attached
// after the closing ')' on top of each item's own per-item constraint.
// When present it is peeled off and walked first, for its own
// instructions' side effects, before the separated-list automaton runs
// over the remaining item/separator children — spec.md's walker table
// has no combined lowering for pack-plus-overall-constraint, so this
// ordering is a documented extension rather than a literal requirement.
func walkPackedPatternAutomaton(o ptree.Observer, seq *ir.Sequence, state *State) error {
	children := o.Children()
	if n := len(children); n > 0 && children[n-1].Name() == "PatternExpressionConstraint" {
		overall := children[n-1]
		if overall.ChildrenSize() != 1 {
			fault("walkPackedPatternAutomaton: PatternExpressionConstraint expected 1 child, got %d", overall.ChildrenSize())
		}
		if err := walk(overall.ChildAt(0), seq, state); err != nil {
			return err
		}
		children = children[:n-1]
	}
	return walkSeparatedList(children, seq, state, walkPatternBindingItem)
}
