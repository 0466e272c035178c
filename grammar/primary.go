package grammar

import "github.com/chtholly-lang/chtholly/combinator"

// PrimaryExpression is the tightest-binding production: a literal, an
// identifier, or one of the bracketed/parenthesized list forms. Every
// other production in this package eventually bottoms out here.
func PrimaryExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Or(
			FloatLiteral(),
			IntLiteral(),
			StringLiteral(),
			TrueLiteral(),
			FalseLiteral(),
			NullLiteral(),
			UndefinedLiteral(),
			List(),
			Identifier(),
		)
	})
}

// PointExpression is zero or more "->" pipe steps chaining one
// FunctionExpression into the next: "a -> b -> c" parses as a single flat
// PointExpression holding the operands interleaved with their "->"
// operator tokens (five children), not as nested PointExpressions. A lone
// FunctionExpression parses as itself, with the wrapper cut away.
func PointExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return chainOperator("PointExpression", FunctionExpression(), FunctionExpression(), combinator.MatchString("->"))
	})
}

// FunctionExpression is DoWhileLoopExpression's entire fallthrough chain
// (down through every statement form to PrimaryExpression) followed by
// zero or more juxtaposed List arguments, so that "f (1) (2)" chains two
// calls against the result of the first with no "." or "(" call syntax
// of its own — a call is just a value directly followed by a list. The
// wrapper is cut when no call follows, so a callee with no arguments at
// all parses as itself.
func FunctionExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(
			combinator.ChangeIn("FunctionExpression"),
			DoWhileLoopExpression(),
			combinator.Many0(combinator.Seq(Term(), List())),
			combinator.ChangeOut(true),
		)
	})
}

// foldPrefixOp matches the prefix operators UnaryExpression recognizes:
// "+", "-", or "not", the last tested as a whole word via Keyword rather
// than colliding with an identifier that merely starts with those
// letters.
func foldPrefixOp() combinator.Process {
	return combinator.Or(combinator.MatchAnyString("+", "-"), Keyword("not"))
}

// FoldExpression is a PointExpression optionally marked with a trailing
// "..." pack marker, the per-item spread/pack marker also used inside a
// PatternExpression's binding items.
func FoldExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(
			combinator.ChangeIn("FoldExpression"),
			PointExpression(),
			combinator.Opt(combinator.Seq(Term(), packMarker())),
			combinator.ChangeOut(true),
		)
	})
}

// UnaryExpression is a flat run of zero or more prefix operators ("+",
// "-", "not") followed by exactly one FoldExpression child — not a
// right-recursive nesting of one UnaryExpression per operator. "- - x"
// therefore parses as a single UnaryExpression holding two UnaryOperator
// tokens followed by one FoldExpression, never as two nested
// UnaryExpression terms.
func UnaryExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		prefix := combinator.Seq(combinator.CatchToken(foldPrefixOp(), "UnaryOperator"), Term())
		return combinator.Seq(
			combinator.ChangeIn("UnaryExpression"),
			combinator.Many0(prefix),
			FoldExpression(),
			combinator.ChangeOut(true),
		)
	})
}
