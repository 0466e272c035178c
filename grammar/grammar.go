package grammar

import (
	"fmt"

	"github.com/chtholly-lang/chtholly/combinator"
	"github.com/chtholly-lang/chtholly/ptree"
)

// Expression wraps a ';'/','-separated sequence of SingleExpression
// items — every statement-level form (declarations, loops, conditions,
// ...) is reached by SingleExpression's own fallthrough descent, not as
// a sibling alternative here. A single item collapses to the bare item,
// so a lone statement carries no Expression wrapper at all.
func Expression() combinator.Process {
	return Lazy(func() combinator.Process {
		return MultiExpressionPackage("Expression", SingleExpression(), true)
	})
}

// Result is the outcome of a Parse: the tree built so far, and how much of
// the source was consumed.
type Result struct {
	Tree      *ptree.Tree
	Consumed  int
	Remaining string
}

// Parse runs the grammar against src from the start, returning the parse
// tree and the length of the longest prefix the grammar was able to
// consume. A non-empty Remaining means parsing stopped before reaching the
// end of src; per this grammar's error-handling design, that is the only
// diagnostic offered — there is no error-recovery or resynchronization
// pass.
func Parse(src string) Result {
	tree := ptree.New("Expression")
	info := combinator.Info{Input: src, Cursor: tree.Modifier()}
	out := expressionListBody(SingleExpression()).Run(info)
	consumed := len(src) - len(out.Input)
	return Result{Tree: tree, Consumed: consumed, Remaining: out.Input}
}

// Complete reports whether Parse consumed all of src.
func (r Result) Complete() bool {
	return r.Remaining == ""
}

// String renders a short summary, useful in test failure messages.
func (r Result) String() string {
	if r.Complete() {
		return fmt.Sprintf("parsed %d bytes", r.Consumed)
	}
	return fmt.Sprintf("parsed %d bytes, %d bytes unconsumed: %.20q", r.Consumed, len(r.Remaining), r.Remaining)
}
