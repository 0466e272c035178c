package irgen

import (
	"fmt"

	"github.com/chtholly-lang/chtholly/ir"
	"github.com/chtholly-lang/chtholly/ptree"
)

// walkerFunc lowers one node, appending whatever instructions it produces
// to seq and reading/writing state as needed.
type walkerFunc func(o ptree.Observer, seq *ir.Sequence, state *State) error

// Fault is the panic value raised for a dispatch-table/tree mismatch: a
// node name the grammar can produce but this table has no entry for at
// all. Unlike a notImplementedError, this always indicates a bug, never an
// intentionally deferred feature.
type Fault string

func (f Fault) Error() string { return string(f) }

func fault(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf("irgen: %s", msg)
	panic(Fault(msg))
}

// notImplementedError marks a node this package recognizes by name but
// does not lower.
type notImplementedError struct {
	name string
}

func (e notImplementedError) Error() string {
	return fmt.Sprintf("irgen: lowering not implemented for %s", e.name)
}

func deferLowering(name string) walkerFunc {
	return func(ptree.Observer, *ir.Sequence, *State) error {
		return notImplementedError{name: name}
	}
}

// walk looks up o's name in the dispatch table and runs the walker it
// finds. A name absent from the table entirely is a programming error:
// every term/token name walk can be handed has an entry, even if that
// entry only returns a notImplementedError. The Separator, PackMarker,
// BinaryOperator and UnaryOperator tokens have no entry; they are read
// directly by the automaton and declaration walkers, or sit inside nodes
// whose lowering is deferred.
func walk(o ptree.Observer, seq *ir.Sequence, state *State) error {
	fn, ok := dispatch[o.Name()]
	if !ok {
		fault("walk: no dispatch entry for %q", o.Name())
	}
	tracer().Infof("walk %s", o.Name())
	return fn(o, seq, state)
}

// iterateChildrenForAll walks every child of o in order through fn.
func iterateChildrenForAll(o ptree.Observer, seq *ir.Sequence, state *State, fn walkerFunc) error {
	for _, c := range o.Children() {
		if err := fn(c, seq, state); err != nil {
			return err
		}
	}
	return nil
}

// dispatch maps grammar term/token names to their walker. Every name the
// grammar package can attach to a node has an entry except the four
// tokens listed at walk: most lower directly, a documented subset (see
// package doc) defer with notImplementedError.
var dispatch = map[string]walkerFunc{
	"IntLiteral":       walkIntLiteral,
	"FloatLiteral":     walkFloatLiteral,
	"StringLiteral":    walkStringLiteral,
	"NullLiteral":      walkNullLiteral,
	"UndefinedLiteral": walkUndefLiteral,
	"UndefExpression":  walkUndefLiteral,
	"TrueLiteral":      walkTrueLiteral,
	"FalseLiteral":     walkFalseLiteral,
	"Identifier":       walkIdentifierUse,

	"ArrayList": walkArrayList,
	"DictList":  walkDictList,

	"Expression":        walkExpressionAutomaton,
	"PatternExpression": walkPackedPatternAutomaton,

	"VarDefineExpression":   declarationWalker(ObjectPropVar),
	"ConstDefineExpression": declarationWalker(ObjectPropConst),

	"MultiplicativeExpression":                deferLowering("MultiplicativeExpression"),
	"AdditiveExpression":                      deferLowering("AdditiveExpression"),
	"RelationalExpression":                    deferLowering("RelationalExpression"),
	"EqualityExpression":                      deferLowering("EqualityExpression"),
	"LogicalAndExpression":                    deferLowering("LogicalAndExpression"),
	"LogicalOrExpression":                     deferLowering("LogicalOrExpression"),
	"AssignmentExpression":                    deferLowering("AssignmentExpression"),
	"PairExpression":                          deferLowering("PairExpression"),
	"UnaryExpression":                         deferLowering("UnaryExpression"),
	"FoldExpression":                          deferLowering("FoldExpression"),
	"PointExpression":                         deferLowering("PointExpression"),
	"FunctionExpression":                      deferLowering("FunctionExpression"),
	"LambdaExpression":                        deferLowering("LambdaExpression"),
	"DoWhileLoopExpression":                   deferLowering("DoWhileLoopExpression"),
	"WhileLoopExpression":                     deferLowering("WhileLoopExpression"),
	"ConditionExpression":                     deferLowering("ConditionExpression"),
	"ReturnExpression":                        deferLowering("ReturnExpression"),
	"BreakExpression":                         deferLowering("BreakExpression"),
	"ContinueExpression":                      deferLowering("ContinueExpression"),
	"ConstraintExpression":                    deferLowering("ConstraintExpression"),
	"ConstraintExpressionAtPatternExpression": deferLowering("ConstraintExpressionAtPatternExpression"),
	"PatternExpressionConstraint":             deferLowering("PatternExpressionConstraint"),
}
