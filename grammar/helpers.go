package grammar

import "github.com/chtholly-lang/chtholly/combinator"

// Lazy defers building a production's Process until it is actually run.
// Productions in this package refer to each other in cycles (Expression
// reaches down through SingleExpression to PrimaryExpression, which
// reaches back up through ExpressionList to Expression); naming them as
// functions instead of package-level variables only avoids a Go
// initialization cycle, it does not stop a function that unconditionally
// calls another from recursing forever the moment it is *constructed*,
// before a single byte of input is ever looked at. Every production in
// this package is built through Lazy for exactly this reason: it turns
// that construction-time recursion into parse-time recursion, which
// terminates because each step consumes input or bottoms out at a
// non-recursive alternative.
func Lazy(build func() combinator.Process) combinator.Process {
	return combinator.New(false, func(info combinator.Info) combinator.Info {
		return build().Run(info)
	})
}

// chainOperator builds one level of the binary-operator precedence
// ladder: head (Term operator Term tail)*, wrapped in a term named name
// and cut away (ChangeOut(true)) when the operator never appears, so a
// lone operand parses as itself with no wrapper term at all. Most levels
// repeat the same production for head and tail (left-grouping);
// AssignmentExpression instead recurses all the way back up to
// SingleExpression for tail, which makes it right-grouping, since the
// first match of operator+tail swallows everything that follows.
// PairExpression has the same right-grouping shape but is written by
// hand, since its ':' is not captured as a token.
func chainOperator(name string, head, tail combinator.Process, opMatch combinator.Process) combinator.Process {
	operator := combinator.CatchToken(opMatch, "BinaryOperator")
	step := combinator.Seq(Term(), operator, Term(), tail)
	return combinator.Seq(
		combinator.ChangeIn(name),
		head,
		combinator.Many0(step),
		combinator.ChangeOut(true),
	)
}

// expressionListBody matches item (Separator item)* Separator? directly
// against the cursor's current position, without creating a wrapper term
// of its own. MultiExpressionPackage is this plus a wrapper; Parse uses
// the body alone since the tree's top node already serves as the
// program's implicit top-level list.
func expressionListBody(item combinator.Process) combinator.Process {
	return combinator.Seq(
		Term(),
		item,
		combinator.Many0(combinator.Seq(Term(), Separator(), Term(), item)),
		combinator.Opt(combinator.Seq(Term(), Separator())),
		Term(),
	)
}

// MultiExpressionPackage builds a ';'/','-separated list of item under a
// single wrapper term named name: item (Separator item)* Separator?. The
// resulting flat list of item subtrees interleaved with Separator tokens
// is exactly the shape irgen's list-lowering automaton walks. cutUnused
// controls whether a single-item list collapses to the bare item:
// Expression cuts (a lone statement needs no wrapper funneled through
// it). PatternExpression does not use this helper; it wraps
// expressionListBody in its own never-cut term, between its parentheses.
func MultiExpressionPackage(name string, item combinator.Process, cutUnused bool) combinator.Process {
	return combinator.Seq(
		combinator.ChangeIn(name),
		expressionListBody(item),
		combinator.ChangeOut(cutUnused),
	)
}
