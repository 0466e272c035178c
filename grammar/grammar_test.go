package grammar

import (
	"testing"

	"github.com/chtholly-lang/chtholly/ptree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func parseAll(t *testing.T, src string) Result {
	t.Helper()
	r := Parse(src)
	if !r.Complete() {
		t.Fatalf("expected %q to parse completely, got %s", src, r)
	}
	if !r.Tree.CheckParent() {
		t.Fatalf("parent invariant broken after parsing %q", src)
	}
	return r
}

func TestIntLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "42")
	top := r.Tree.Observer()
	if top.ChildrenSize() != 1 || top.ChildAt(0).Name() != "IntLiteral" {
		t.Fatalf("expected a lone IntLiteral token, got %s", ptree.Dump(top))
	}
}

func TestFloatLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "3.14e-2")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "FloatLiteral" {
		t.Fatalf("expected a FloatLiteral token, got %s", ptree.Dump(top))
	}
}

func TestIntLiteralDoesNotSwallowFloatPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "1.5")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "FloatLiteral" {
		t.Fatalf("expected 1.5 to parse whole as FloatLiteral, got %s", ptree.Dump(top))
	}
}

func TestStringLiteralWithEscapedQuote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, `"a\"b"`)
	top := r.Tree.Observer()
	tok := top.ChildAt(0)
	if tok.Name() != "StringLiteral" || tok.Value().Value != `"a\"b"` {
		t.Fatalf("expected full quoted text captured, got %+v", tok.Value())
	}
}

func TestKeywordNotConfusedWithIdentifierPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "ifx")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "Identifier" || top.ChildAt(0).Value().Value != "ifx" {
		t.Fatalf("expected ifx to parse as a plain Identifier, got %s", ptree.Dump(top))
	}
}

func TestIdentifierRejectsKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := Parse("var")
	if r.Complete() {
		t.Fatalf("expected the bare keyword var, with no bound name, to fail to parse as an Expression")
	}
	if r.Consumed != 0 {
		t.Fatalf("expected a failed VarDefineExpression attempt to roll back fully, got %d bytes consumed", r.Consumed)
	}
}

func TestAdditiveExpressionWrapperCutForLoneOperand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "5")
	top := r.Tree.Observer()
	if top.ChildrenSize() != 1 || top.ChildAt(0).Name() != "IntLiteral" {
		t.Fatalf("expected every ladder-level wrapper cut for a lone operand, got %s", ptree.Dump(top))
	}
}

func TestAdditiveExpressionSurvivesWithOperator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "1 + 2 * 3")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "AdditiveExpression" {
		t.Fatalf("expected a surviving AdditiveExpression wrapper, got %s", ptree.Dump(top))
	}
	add := top.ChildAt(0)
	if add.ChildrenSize() != 3 {
		t.Fatalf("expected operand, operator token, operand under AdditiveExpression, got %d children", add.ChildrenSize())
	}
	if add.ChildAt(1).Name() != "BinaryOperator" || add.ChildAt(1).Value().Value != "+" {
		t.Fatalf("expected the '+' operator token in the middle, got %+v", add.ChildAt(1).Value())
	}
	rhs := add.ChildAt(2)
	if rhs.Name() != "MultiplicativeExpression" {
		t.Fatalf("expected the tighter-binding '2 * 3' to survive as its own MultiplicativeExpression, got %q", rhs.Name())
	}
}

func TestRelationalLessThanNotConfusedWithNotEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "1 <> 2")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "EqualityExpression" {
		t.Fatalf("expected '<>' to parse as a whole EqualityExpression operator, not split by RelationalExpression's '<', got %s", ptree.Dump(top))
	}
	if top.ChildAt(0).ChildAt(1).Value().Value != "<>" {
		t.Fatalf("expected the '<>' operator token captured whole, got %+v", top.ChildAt(0).ChildAt(1).Value())
	}
}

func TestRelationalLessThanOrEqualNotSplitByRelational(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "1 <= 2")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "RelationalExpression" {
		t.Fatalf("expected RelationalExpression, got %s", ptree.Dump(top))
	}
	if top.ChildAt(0).ChildAt(1).Value().Value != "<=" {
		t.Fatalf("expected the '<=' operator token captured whole, got %+v", top.ChildAt(0).ChildAt(1).Value())
	}
}

func TestAdditiveOperatorNotConfusedWithCompoundAssignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "x += 1")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "AssignmentExpression" {
		t.Fatalf("expected '+=' to parse as a whole AssignmentExpression operator, not split by AdditiveExpression's '+', got %s", ptree.Dump(top))
	}
	if top.ChildAt(0).ChildAt(1).Value().Value != "+=" {
		t.Fatalf("expected the '+=' operator token captured whole, got %+v", top.ChildAt(0).ChildAt(1).Value())
	}
}

func TestLogicalAndOrKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "x and y or z")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "LogicalOrExpression" {
		t.Fatalf("expected LogicalOrExpression at the top, got %s", ptree.Dump(top))
	}
	lhs := top.ChildAt(0).ChildAt(0)
	if lhs.Name() != "LogicalAndExpression" {
		t.Fatalf("expected the tighter-binding 'x and y' to survive as its own LogicalAndExpression, got %q", lhs.Name())
	}
}

func TestAssignmentExpressionIsRightGrouping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "a = b = 1")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "AssignmentExpression" {
		t.Fatalf("expected AssignmentExpression, got %s", ptree.Dump(top))
	}
	outer := top.ChildAt(0)
	rhs := outer.ChildAt(2)
	if rhs.Name() != "AssignmentExpression" {
		t.Fatalf("expected 'b = 1' to nest as the outer assignment's right operand, got %q", rhs.Name())
	}
}

func TestPairExpressionColonIsPlainPunctuation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "x : y")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "PairExpression" {
		t.Fatalf("expected PairExpression, got %s", ptree.Dump(top))
	}
	pair := top.ChildAt(0)
	if pair.ChildrenSize() != 2 {
		t.Fatalf("expected exactly 2 children (no captured ':' token), got %d: %s", pair.ChildrenSize(), ptree.Dump(pair))
	}
}

func TestExpressionListParensAlwaysCut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "(1 + 2)")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "AdditiveExpression" {
		t.Fatalf("expected parentheses to vanish, leaving the inner AdditiveExpression directly, got %s", ptree.Dump(top))
	}
}

func TestVarDefinePlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "var x")
	top := r.Tree.Observer()
	def := top.ChildAt(0)
	if def.Name() != "VarDefineExpression" {
		t.Fatalf("expected VarDefineExpression, got %s", ptree.Dump(top))
	}
	if def.ChildrenSize() != 1 || def.ChildAt(0).Name() != "ConstraintExpression" {
		t.Fatalf("expected a single ConstraintExpression binding target, got %s", ptree.Dump(def))
	}
	binding := def.ChildAt(0)
	if binding.ChildrenSize() != 1 || binding.ChildAt(0).Name() != "Identifier" {
		t.Fatalf("expected the binding target to hold just the bound Identifier, got %s", ptree.Dump(binding))
	}
}

func TestVarDefineWithConstraint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "var y: Int")
	def := r.Tree.Observer().ChildAt(0)
	binding := def.ChildAt(0)
	if binding.Name() != "ConstraintExpression" || binding.ChildrenSize() != 2 {
		t.Fatalf("expected a 2-child ConstraintExpression binding target, got %s", ptree.Dump(def))
	}
	if binding.ChildAt(1).Name() != "Identifier" || binding.ChildAt(1).Value().Value != "Int" {
		t.Fatalf("expected the trailing constraint to be the Identifier Int, got %s", ptree.Dump(binding))
	}
}

func TestVarDefineWithInitializer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "var z [1, 2]")
	def := r.Tree.Observer().ChildAt(0)
	last := def.ChildAt(def.ChildrenSize() - 1)
	if last.Name() != "ArrayList" {
		t.Fatalf("expected the bare juxtaposed ArrayList initializer as the final child, got %s", ptree.Dump(def))
	}
}

func TestVarDefinePackedPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "var (x..., y: Int, z)")
	def := r.Tree.Observer().ChildAt(0)
	pattern := def.ChildAt(0)
	if pattern.Name() != "PatternExpression" || pattern.ChildrenSize() != 5 {
		t.Fatalf("expected a 3-item, 2-separator PatternExpression, got %s", ptree.Dump(def))
	}
	first := pattern.ChildAt(0)
	if first.Name() != "ConstraintExpressionAtPatternExpression" {
		t.Fatalf("expected the packed first item to survive its wrapper, got %q", first.Name())
	}
	if first.ChildAt(1).Name() != "PackMarker" {
		t.Fatalf("expected a PackMarker child marking x as packed, got %s", ptree.Dump(first))
	}
	third := pattern.ChildAt(4)
	if third.Name() != "Identifier" {
		t.Fatalf("expected the unpacked, unconstrained last item to collapse to a bare Identifier, got %q", third.Name())
	}
}

func TestPatternExpressionOverallConstraint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "var (x, y): Pair")
	def := r.Tree.Observer().ChildAt(0)
	pattern := def.ChildAt(0)
	overall := pattern.ChildAt(pattern.ChildrenSize() - 1)
	if overall.Name() != "PatternExpressionConstraint" {
		t.Fatalf("expected a trailing PatternExpressionConstraint, got %s", ptree.Dump(pattern))
	}
}

func TestArrayListLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "[1, 2, null]")
	list := r.Tree.Observer().ChildAt(0)
	if list.Name() != "ArrayList" || list.ChildrenSize() != 3 {
		t.Fatalf("expected a 3-element ArrayList, got %s", ptree.Dump(list))
	}
}

func TestUndefExpressionLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "()")
	list := r.Tree.Observer().ChildAt(0)
	if list.Name() != "UndefExpression" {
		t.Fatalf("expected () to parse as UndefExpression, got %q", list.Name())
	}
}

func TestDictListLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, `{1, 2}`)
	dict := r.Tree.Observer().ChildAt(0)
	if dict.Name() != "DictList" || dict.ChildrenSize() != 2 {
		t.Fatalf("expected a 2-element DictList, got %s", ptree.Dump(dict))
	}
	if dict.ChildAt(0).Name() != "IntLiteral" {
		t.Fatalf("expected each entry to be a plain value with no Pair wrapping, got %q", dict.ChildAt(0).Name())
	}
}

func TestWhileLoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "while (x) x")
	loop := r.Tree.Observer().ChildAt(0)
	if loop.Name() != "WhileLoopExpression" {
		t.Fatalf("expected WhileLoopExpression, got %s", ptree.Dump(loop))
	}
}

func TestDoWhileLoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "do x while (x)")
	loop := r.Tree.Observer().ChildAt(0)
	if loop.Name() != "DoWhileLoopExpression" {
		t.Fatalf("expected DoWhileLoopExpression, got %s", ptree.Dump(loop))
	}
}

func TestConditionWithElseIf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "if (x) 1 else if (y) 2 else 3")
	cond := r.Tree.Observer().ChildAt(0)
	if cond.Name() != "ConditionExpression" {
		t.Fatalf("expected ConditionExpression, got %s", ptree.Dump(cond))
	}
	if cond.ChildrenSize() != 3 {
		t.Fatalf("expected condition, then-branch, nested else-if chain, got %d children", cond.ChildrenSize())
	}
	if cond.ChildAt(2).Name() != "ConditionExpression" {
		t.Fatalf("expected the else-if chain to nest another ConditionExpression, got %q", cond.ChildAt(2).Name())
	}
}

func TestReturnBreakContinue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	for _, src := range []string{"return", "return 1", "break", "continue"} {
		parseAll(t, src)
	}
}

func TestLambdaLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "fn (x, y: Int) x + y")
	lambda := r.Tree.Observer().ChildAt(0)
	if lambda.Name() != "LambdaExpression" {
		t.Fatalf("expected LambdaExpression, got %s", ptree.Dump(lambda))
	}
}

func TestPointExpressionChaining(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "a -> b -> c")
	top := r.Tree.Observer()
	if top.ChildAt(0).Name() != "PointExpression" {
		t.Fatalf("expected a surviving PointExpression wrapper, got %s", ptree.Dump(top))
	}
}

func TestFunctionExpressionJuxtaposedCallChaining(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "f (1) (2)")
	top := r.Tree.Observer()
	fn := top.ChildAt(0)
	if fn.Name() != "FunctionExpression" {
		t.Fatalf("expected FunctionExpression, got %s", ptree.Dump(top))
	}
	if fn.ChildrenSize() != 3 {
		t.Fatalf("expected the callee plus two chained call arguments, got %d children: %s", fn.ChildrenSize(), ptree.Dump(fn))
	}
}

func TestUnaryFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "- - x")
	outer := r.Tree.Observer().ChildAt(0)
	if outer.Name() != "UnaryExpression" {
		t.Fatalf("expected UnaryExpression, got %s", ptree.Dump(outer))
	}
	if outer.ChildrenSize() != 3 {
		t.Fatalf("expected a flat run of 2 UnaryOperator tokens plus 1 operand, got %d children: %s", outer.ChildrenSize(), ptree.Dump(outer))
	}
	if outer.ChildAt(0).Name() != "UnaryOperator" || outer.ChildAt(1).Name() != "UnaryOperator" {
		t.Fatalf("expected two leading UnaryOperator tokens, got %s", ptree.Dump(outer))
	}
	if outer.ChildAt(2).Name() == "UnaryExpression" {
		t.Fatalf("expected a flat UnaryExpression, not a nested one for the second '-', got %s", ptree.Dump(outer))
	}
}

func TestUnaryNotKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "not x")
	outer := r.Tree.Observer().ChildAt(0)
	if outer.Name() != "UnaryExpression" || outer.ChildAt(0).Value().Value != "not" {
		t.Fatalf("expected a UnaryExpression led by the 'not' keyword operator, got %s", ptree.Dump(outer))
	}
}

func TestFoldExpressionPackMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "x...")
	fold := r.Tree.Observer().ChildAt(0)
	if fold.Name() != "FoldExpression" {
		t.Fatalf("expected a surviving FoldExpression wrapper for the '...' marker, got %s", ptree.Dump(fold))
	}
}

func TestWhitespaceAndCommentsAreTransparent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	a := parseAll(t, "1+2")
	b := parseAll(t, "1 /* note */ + // trailing\n2")
	if a.Tree.Observer().ChildAt(0).Name() != b.Tree.Observer().ChildAt(0).Name() {
		t.Fatalf("expected whitespace/comments to not change the parsed shape")
	}
}

func TestExpressionListSeparators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := parseAll(t, "1; 2, 3")
	top := r.Tree.Observer()
	if top.ChildrenSize() != 5 {
		t.Fatalf("expected 3 items interleaved with 2 Separator tokens, got %d children: %s", top.ChildrenSize(), ptree.Dump(top))
	}
	for i, want := range []string{"IntLiteral", "Separator", "IntLiteral", "Separator", "IntLiteral"} {
		if got := top.ChildAt(i).Name(); got != want {
			t.Errorf("child %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestIncompleteParseReportsRemaining(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chtholly.grammar")
	defer teardown()

	r := Parse("1 + )")
	if r.Complete() {
		t.Fatalf("expected a dangling ')' to stop the parse short of the input's end")
	}
	if r.Remaining == "" {
		t.Fatalf("expected a non-empty Remaining on an incomplete parse")
	}
}
