/*
Package irgen lowers a parsed ptree.Tree into an ir.Sequence: a name-indexed
dispatch table maps each grammar term/token name to a walker function, and
Generate drives it from the tree's top node down.

Arithmetic/call/control-flow forms (MultiplicativeExpression,
AdditiveExpression, RelationalExpression, EqualityExpression,
LogicalAndExpression, LogicalOrExpression, AssignmentExpression,
PairExpression, UnaryExpression, FoldExpression, PointExpression,
FunctionExpression, LambdaExpression, DoWhileLoopExpression,
WhileLoopExpression, ConditionExpression, ReturnExpression,
BreakExpression, ContinueExpression, ConstraintExpression,
ConstraintExpressionAtPatternExpression, PatternExpressionConstraint)
parse into a full concrete tree but are not lowered by this package: it
emits only literal, identifier-use, list-construction and
object-declaration instructions. Package ir has no arithmetic opcodes; it
does define Control.* and Function.Begin/End opcodes, but no walker here
emits them. Walking one of these nodes returns a descriptive error rather
than panicking, since reaching one is an expected limitation of this
lowering pass, not a tree/table mismatch. The last three
(ConstraintExpression, ConstraintExpressionAtPatternExpression,
PatternExpressionConstraint) are never actually reached through the generic
dispatch table in a declaration's own lowering — declare.go and
automaton.go read their structure directly — the entries exist purely as
a safety net for Fault-free behavior should a future caller walk one
directly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package irgen

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'chtholly.irgen'.
func tracer() tracing.Trace {
	return tracing.Select("chtholly.irgen")
}
