/*
Package grammar implements the concrete Chtholly expression grammar: an
operator-precedence ladder of roughly thirty productions built on top of
package combinator, producing a concrete parse tree in package ptree.

Productions that refer to each other before they are defined (Expression
reaches SingleExpression reaches all the way back down to ExpressionList,
which reaches back up to Expression for its items) are written as ordinary
Go functions returning a combinator.Process rather than package-level
combinator.Process variables, exactly so that the forward references don't
become Go initialization cycles. Each such function rebuilds its Process
value on every call; grammar evaluation only ever happens a small, bounded
number of times per parse (once per production per position the parser
actually visits), so the rebuild cost is immaterial next to the string
scanning it wraps.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'chtholly.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("chtholly.grammar")
}
