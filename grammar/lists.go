package grammar

import "github.com/chtholly-lang/chtholly/combinator"

// UndefExpression matches the empty parenthesis pair "()", the literal
// spelling for "the undefined list" as distinct from a parenthesized
// single-expression ExpressionList, which always holds exactly one
// child. It carries no children; irgen recognizes the bare term name.
func UndefExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(
			combinator.ChangeIn("UndefExpression"),
			combinator.MatchByte('('),
			Term(),
			combinator.MatchByte(')'),
			combinator.ChangeOut(false),
		)
	})
}

// ExpressionList matches a single parenthesized Expression, unwrapping
// the parentheses: the inner Expression subtree becomes the sole child
// consumers see, the parentheses themselves leaving no trace.
func ExpressionList() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(
			combinator.MatchByte('('),
			Term(),
			Expression(),
			Term(),
			combinator.MatchByte(')'),
		)
	})
}

// ArrayList matches a non-empty "[" item, ... "]" literal.
func ArrayList() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(
			combinator.ChangeIn("ArrayList"),
			combinator.MatchByte('['),
			Term(),
			SingleExpression(),
			combinator.Many0(combinator.Seq(Term(), combinator.MatchByte(','), Term(), SingleExpression())),
			Term(),
			combinator.MatchByte(']'),
			combinator.ChangeOut(false),
		)
	})
}

// DictList is structurally identical to ArrayList: a non-empty "{"
// item, ... "}" literal, with no key:value pairing of its own — each
// item is a plain SingleExpression, exactly as in ArrayList.
func DictList() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(
			combinator.ChangeIn("DictList"),
			combinator.MatchByte('{'),
			Term(),
			SingleExpression(),
			combinator.Many0(combinator.Seq(Term(), combinator.MatchByte(','), Term(), SingleExpression())),
			Term(),
			combinator.MatchByte('}'),
			combinator.ChangeOut(false),
		)
	})
}

// List is the union of the bracketed/parenthesized literal forms; order
// matters only in that UndefExpression must be tried before
// ExpressionList since "()" would otherwise fail ExpressionList's
// at-least-one-item requirement and fall through anyway, but trying the
// cheaper, unambiguous match first avoids the wasted attempt.
func List() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Or(UndefExpression(), ExpressionList(), ArrayList(), DictList())
	})
}

// packMarker catches a pattern item's trailing "..." pack marker as a
// named token, so irgen can tell a packed item from an unpacked one
// without depending on where the item sits inside its enclosing
// PatternExpression.
func packMarker() combinator.Process {
	return combinator.CatchToken(combinator.MatchString("..."), "PackMarker")
}

// patternItem matches one binding inside a destructuring pattern: a
// name, optionally marked packed with a trailing "...", optionally
// followed by ": Constraint". Packed-ness and constraint are independent
// per item — "(x..., y: Int, z)" packs only x, constrains only y, and
// leaves z bare, all inside the same parenthesized declaration.
func patternItem() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(
			combinator.ChangeIn("ConstraintExpressionAtPatternExpression"),
			Identifier(),
			combinator.Opt(combinator.Seq(Term(), packMarker())),
			combinator.Opt(combinator.Seq(Term(), combinator.MatchByte(':'), Term(), SingleExpression())),
			combinator.ChangeOut(true),
		)
	})
}

// patternOverallConstraint wraps an optional trailing ": Constraint"
// attached to a whole PatternExpression, after its closing ')' — on top
// of (and independent from) each item's own per-item constraint. It is
// given its own wrapper name, distinct from both a bare trailing
// Identifier item and from ConstraintExpression (which always names a
// binding, not a bare type tag), so irgen's automaton can always tell it
// apart from the pattern's last item by name alone.
func patternOverallConstraint() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(combinator.ChangeIn("PatternExpressionConstraint"), PrimaryExpression(), combinator.ChangeOut(false))
	})
}

// PatternExpression matches a parenthesized, ';'/','-separated sequence
// of pattern items, used as a var/const binding target ("var (x, y:
// Int, z)") and as a lambda's parameter list. The wrapper itself is
// never cut, even for a single-item pattern: its presence is what tells
// a packed declaration's binding target apart from a bare one.
func PatternExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(
			combinator.ChangeIn("PatternExpression"),
			combinator.MatchByte('('),
			expressionListBody(patternItem()),
			combinator.MatchByte(')'),
			combinator.Opt(combinator.Seq(Term(), combinator.MatchByte(':'), Term(), patternOverallConstraint())),
			combinator.ChangeOut(false),
		)
	})
}
