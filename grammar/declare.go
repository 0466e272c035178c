package grammar

import "github.com/chtholly-lang/chtholly/combinator"

// ConstraintExpression matches a single binding name, with an optional
// ": Constraint" type tag attached directly to it — "x" alone, or
// "y: Int" — so that VarDefineExpression's binding target is always this
// one wrapper regardless of whether a constraint follows. Its wrapper is
// never cut, even for the no-constraint, single-child case: the name is
// what lets a declaration's binding target be told apart from a bare
// identifier initializer, since both would otherwise be a lone
// Identifier node.
func ConstraintExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(
			combinator.ChangeIn("ConstraintExpression"),
			Identifier(),
			combinator.Opt(combinator.Seq(Term(), combinator.MatchByte(':'), Term(), PrimaryExpression())),
			combinator.ChangeOut(false),
		)
	})
}

// bindingTarget matches either a single identifier's own constraint
// wrapper (the "var x" / "var y: Int" shapes) or a parenthesized
// PatternExpression (the "var (x, y: Int, z)" shape). PatternExpression
// consumes its own surrounding parentheses, so no extra wrapping is
// needed here to tell the two shapes apart.
func bindingTarget() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Or(PatternExpression(), ConstraintExpression())
	})
}

// declaration builds the shared shape of VarDefineExpression and
// ConstDefineExpression: keyword, a binding target, and an optional bare
// juxtaposed List initializer — "var x [1, 2]" initializes x to an
// ArrayList, with no "=" of its own, the same juxtaposition
// FunctionExpression uses for a call's argument list.
func declaration(keyword, name string) combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(
			combinator.ChangeIn(name),
			Keyword(keyword),
			Term(),
			bindingTarget(),
			combinator.Opt(combinator.Seq(Term(), List())),
			combinator.ChangeOut(false),
		)
	})
}

// VarDefineExpression matches a mutable binding declaration: "var"
// target [List].
func VarDefineExpression() combinator.Process {
	return declaration("var", "VarDefineExpression")
}

// ConstDefineExpression matches an immutable binding declaration:
// "const" target [List].
func ConstDefineExpression() combinator.Process {
	return declaration("const", "ConstDefineExpression")
}
