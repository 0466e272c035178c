package grammar

import "github.com/chtholly-lang/chtholly/combinator"

// DoWhileLoopExpression matches "do" SingleExpression "while" "("
// SingleExpression ")", falling through to WhileLoopExpression when the
// leading "do" keyword is absent.
func DoWhileLoopExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		doWhile := combinator.Seq(
			combinator.ChangeIn("DoWhileLoopExpression"),
			Keyword("do"),
			Term(),
			SingleExpression(),
			Term(),
			Keyword("while"),
			Term(),
			combinator.MatchByte('('),
			Term(),
			SingleExpression(),
			Term(),
			combinator.MatchByte(')'),
			combinator.ChangeOut(false),
		)
		return combinator.Or(doWhile, WhileLoopExpression())
	})
}

// WhileLoopExpression matches "while" "(" SingleExpression ")"
// SingleExpression ["else" SingleExpression], falling through to
// LoopControlExpression when the leading "while" keyword is absent.
func WhileLoopExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		elseBranch := combinator.Seq(Term(), Keyword("else"), Term(), SingleExpression())
		while := combinator.Seq(
			combinator.ChangeIn("WhileLoopExpression"),
			Keyword("while"),
			Term(),
			combinator.MatchByte('('),
			Term(),
			SingleExpression(),
			Term(),
			combinator.MatchByte(')'),
			Term(),
			SingleExpression(),
			combinator.Opt(elseBranch),
			combinator.ChangeOut(false),
		)
		return combinator.Or(while, LoopControlExpression())
	})
}

// ReturnExpression matches "return" with an optional operand.
func ReturnExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(
			combinator.ChangeIn("ReturnExpression"),
			Keyword("return"),
			combinator.Opt(combinator.Seq(Term(), SingleExpression())),
			combinator.ChangeOut(false),
		)
	})
}

// BreakExpression matches the bare "break" keyword.
func BreakExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(combinator.ChangeIn("BreakExpression"), Keyword("break"), combinator.ChangeOut(false))
	})
}

// ContinueExpression matches the bare "continue" keyword.
func ContinueExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Seq(combinator.ChangeIn("ContinueExpression"), Keyword("continue"), combinator.ChangeOut(false))
	})
}

// LoopControlExpression is Return, Break or Continue, falling through to
// ConditionExpression when none of the three leading keywords apply.
func LoopControlExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Or(ReturnExpression(), BreakExpression(), ContinueExpression(), ConditionExpression())
	})
}

// ConditionExpression matches "if" "(" SingleExpression ")"
// SingleExpression ["else" (ConditionExpression | SingleExpression)],
// falling through to LambdaExpression when the leading "if" keyword is
// absent.
func ConditionExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		elseBranch := combinator.Seq(Term(), Keyword("else"), Term(), combinator.Or(ConditionExpression(), SingleExpression()))
		ifExpr := combinator.Seq(
			combinator.ChangeIn("ConditionExpression"),
			Keyword("if"),
			Term(),
			combinator.MatchByte('('),
			Term(),
			SingleExpression(),
			Term(),
			combinator.MatchByte(')'),
			Term(),
			SingleExpression(),
			combinator.Opt(elseBranch),
			combinator.ChangeOut(false),
		)
		return combinator.Or(ifExpr, LambdaExpression())
	})
}

// LambdaExpression matches "fn" PatternExpression SingleExpression, an
// anonymous function literal whose parameter list reuses
// PatternExpression directly (the same "name[: Constraint]" shape a
// variable declaration's binding target uses), falling through to
// DefineExpression when the leading "fn" keyword is absent.
func LambdaExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		lambda := combinator.Seq(
			combinator.ChangeIn("LambdaExpression"),
			Keyword("fn"),
			Term(),
			PatternExpression(),
			Term(),
			SingleExpression(),
			combinator.ChangeOut(false),
		)
		return combinator.Or(lambda, DefineExpression())
	})
}

// DefineExpression is VarDefineExpression or ConstDefineExpression,
// falling through to PrimaryExpression when neither leading keyword
// applies — the bottom of SingleExpression's descent.
func DefineExpression() combinator.Process {
	return Lazy(func() combinator.Process {
		return combinator.Or(VarDefineExpression(), ConstDefineExpression(), PrimaryExpression())
	})
}
