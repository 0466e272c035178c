package grammar

import "github.com/chtholly-lang/chtholly/combinator"

// The binary-operator ladder, loosest-binding at the top (PairExpression)
// down to tightest (MultiplicativeExpression), each level except
// PairExpression built on chainOperator over the next-tighter level. Operators are matched
// longest-first within a level so that e.g. "<=" is never mistakenly
// split into "<" then "=", and a Not lookahead keeps an operator from
// swallowing the lead bytes of a longer operator one level up (the "<"
// of relational vs. the "<>" of equality, the "+"/"-"/"*"/"/"/"%" of
// additive/multiplicative vs. their "+="-style assignment counterparts).

func multiplicativeOp() combinator.Process {
	return combinator.Not(combinator.MatchAnyString("*", "/", "%"), combinator.MatchByte('='))
}

func MultiplicativeExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return chainOperator("MultiplicativeExpression", UnaryExpression(), UnaryExpression(), multiplicativeOp())
	})
}

func additiveOp() combinator.Process {
	return combinator.Not(combinator.MatchAnyString("+", "-"), combinator.MatchByte('='))
}

func AdditiveExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return chainOperator("AdditiveExpression", MultiplicativeExpression(), MultiplicativeExpression(), additiveOp())
	})
}

// relationalOp matches "<=", ">=" or ">" outright, but guards plain "<"
// with a Not lookahead against ">" so that the two-character "<>"
// not-equal operator one level up (EqualityExpression) is never split
// into a relational "<" followed by a dangling ">".
func relationalOp() combinator.Process {
	return combinator.Or(
		combinator.MatchAnyString("<=", ">="),
		combinator.Not(combinator.MatchByte('<'), combinator.MatchByte('>')),
		combinator.MatchByte('>'),
	)
}

func RelationalExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return chainOperator("RelationalExpression", AdditiveExpression(), AdditiveExpression(), relationalOp())
	})
}

func EqualityExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return chainOperator("EqualityExpression", RelationalExpression(), RelationalExpression(), combinator.MatchAnyString("==", "<>"))
	})
}

func LogicalAndExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return chainOperator("LogicalAndExpression", EqualityExpression(), EqualityExpression(), Keyword("and"))
	})
}

func LogicalOrExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return chainOperator("LogicalOrExpression", LogicalAndExpression(), LogicalAndExpression(), Keyword("or"))
	})
}

// assignmentOp matches "=" and the compound arithmetic-assignment forms,
// longest-first so "+=" is never split into an AdditiveExpression "+"
// followed by a dangling "=".
func assignmentOp() combinator.Process {
	return combinator.MatchAnyString("+=", "-=", "*=", "/=", "%=", "=")
}

// AssignmentExpression recurses to SingleExpression, not back to itself,
// for its tail: this makes the operator right-grouping ("a = b = c"
// parses as "a = (b = c)") since the first match of operator+tail
// consumes everything that follows in one bite.
func AssignmentExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return chainOperator("AssignmentExpression", LogicalOrExpression(), SingleExpression(), assignmentOp())
	})
}

// PairExpression is the loosest-binding level, used to build dict/array
// "key : value" entries inline with every other expression form rather
// than as a separate grammar rule. Its ':' separator is plain
// punctuation, not a captured BinaryOperator token, unlike every other
// level in this ladder — so it is written by hand instead of through
// chainOperator.
func PairExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		step := combinator.Seq(Term(), combinator.MatchByte(':'), Term(), SingleExpression())
		return combinator.Seq(
			combinator.ChangeIn("PairExpression"),
			AssignmentExpression(),
			combinator.Many0(step),
			combinator.ChangeOut(true),
		)
	})
}

// SingleExpression is the top of the value-producing expression ladder:
// every statement-level form (loops, conditions, lambdas, declarations)
// is itself reached by falling through SingleExpression's descent,
// bottoming out at PrimaryExpression when none of the keyword-led forms
// apply.
func SingleExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return PairExpression()
	})
}
