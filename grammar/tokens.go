package grammar

import (
	"golang.org/x/exp/slices"

	"github.com/chtholly-lang/chtholly/chartype"
	"github.com/chtholly-lang/chtholly/combinator"
)

func isIdentStart(c byte) bool { return chartype.IsAlpha(c) || c == '_' }
func isIdentCont(c byte) bool  { return chartype.IsAlphaNum(c) || c == '_' }

// keywords lists every reserved word; Identifier must not match one of
// these, so that the keyword "var" and a hypothetical variable named "var"
// never collide in the tree.
var keywords = []string{
	"var", "const", "if", "else", "while", "do", "for",
	"return", "break", "continue", "fn", "null", "undef", "true", "false",
	"and", "or", "not",
}

func isKeyword(s string) bool {
	return slices.Contains(keywords, s)
}

// rawIdentifier matches an identifier-shaped word without checking it
// against the keyword list; Keyword and Identifier both build on it.
func rawIdentifier() combinator.Process {
	return combinator.Seq(
		combinator.MatchPredicate(isIdentStart),
		combinator.Many0(combinator.MatchPredicate(isIdentCont)),
	)
}

// Keyword matches the literal reserved word, provided it is not
// immediately followed by another identifier character (so "ifx" does not
// spuriously match the keyword "if").
func Keyword(word string) combinator.Process {
	return combinator.Not(combinator.MatchString(word), combinator.MatchPredicate(isIdentCont))
}

// Identifier matches a name and catches it as an Identifier token,
// rejecting anything that is actually a reserved word. It is written by
// hand rather than on top of Catch because it needs to inspect the
// captured text before deciding whether to commit a token at all.
func Identifier() combinator.Process {
	return combinator.New(false, func(info combinator.Info) combinator.Info {
		next := rawIdentifier().Run(info)
		if next.Input == info.Input {
			return info
		}
		captured := info.Input[:len(info.Input)-len(next.Input)]
		if isKeyword(captured) {
			return info
		}
		next.Cursor.PushToken("Identifier", captured)
		return next
	})
}

// digits matches one or more ASCII digits.
func digits() combinator.Process {
	return combinator.Many1(combinator.MatchPredicate(chartype.IsDigit))
}

// IntLiteral matches a run of digits not immediately followed by a
// fractional part, and catches it as an IntLiteral token.
func IntLiteral() combinator.Process {
	return combinator.CatchToken(
		combinator.Not(digits(), combinator.Seq(combinator.MatchByte('.'), combinator.MatchPredicate(chartype.IsDigit))),
		"IntLiteral",
	)
}

// FloatLiteral matches digits '.' digits, with an optional exponent, and
// catches it as a FloatLiteral token.
func FloatLiteral() combinator.Process {
	mantissa := combinator.Seq(digits(), combinator.MatchByte('.'), digits())
	exponent := combinator.Seq(combinator.MatchAnyByte("eE"), combinator.Opt(combinator.MatchAnyByte("+-")), digits())
	return combinator.CatchToken(combinator.Seq(mantissa, combinator.Opt(exponent)), "FloatLiteral")
}

// stringEscape matches a backslash followed by any single byte; the
// lowering pass, not the grammar, rejects unknown escape codes, since
// rejecting here would make a malformed escape indistinguishable from an
// unterminated string literal at the parse level.
func stringEscape() combinator.Process {
	return combinator.Seq(combinator.MatchByte('\\'), combinator.AnyChar)
}

func notQuote(b byte) bool { return b != '"' }

// StringLiteral matches a double-quoted string, honoring backslash
// escapes so an escaped quote doesn't terminate the literal early, and
// catches its source text (quotes and escapes included) as a
// StringLiteral token; irgen decodes escapes when lowering.
func StringLiteral() combinator.Process {
	body := combinator.Many0(combinator.Or(stringEscape(), combinator.MatchPredicate(notQuote)))
	return combinator.CatchToken(
		combinator.Seq(combinator.MatchByte('"'), body, combinator.MatchByte('"')),
		"StringLiteral",
	)
}

// TrueLiteral, FalseLiteral, NullLiteral and UndefinedLiteral match their
// respective keywords and catch a token named after the literal kind,
// recording the source span, mirroring IntLiteral/FloatLiteral/StringLiteral's shape so irgen's
// dispatch table can treat all six literal kinds uniformly.
func TrueLiteral() combinator.Process      { return combinator.CatchToken(Keyword("true"), "TrueLiteral") }
func FalseLiteral() combinator.Process     { return combinator.CatchToken(Keyword("false"), "FalseLiteral") }
func NullLiteral() combinator.Process      { return combinator.CatchToken(Keyword("null"), "NullLiteral") }
func UndefinedLiteral() combinator.Process { return combinator.CatchToken(Keyword("undef"), "UndefinedLiteral") }

// Separator matches the statement/list separators ';' and ','.
func Separator() combinator.Process {
	return combinator.CatchToken(combinator.MatchAnyByte(";,"), "Separator")
}

func notNewline(b byte) bool { return b != '\n' }

// lineComment and blockComment skip "//..." to end of line and
// "/*...*/" respectively, without capturing anything into the tree:
// comments are lexical noise, invisible to every later stage.
func lineComment() combinator.Process {
	return combinator.Seq(
		combinator.MatchString("//"),
		combinator.Many0(combinator.MatchPredicate(notNewline)),
		combinator.Opt(combinator.MatchByte('\n')),
	)
}

func blockComment() combinator.Process {
	return combinator.Seq(combinator.MatchString("/*"), combinator.AnyCharUntil(combinator.MatchString("*/")))
}

// Term skips any run of whitespace and comments. It is Optional — it never
// fails to "match", even when it consumes nothing — and is threaded
// between every pair of grammar tokens.
func Term() combinator.Process {
	return combinator.Opt(combinator.Many1(combinator.Or(
		combinator.MatchPredicate(chartype.IsSpace),
		lineComment(),
		blockComment(),
	)))
}
