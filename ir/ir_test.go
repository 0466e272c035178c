package ir

import "testing"

func TestValueConstructorsRoundtrip(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{VUndef(), "undef"},
		{VNull(), "null"},
		{VBool(true), "true"},
		{VInt(42), "42"},
		{VFloat(1.5), "1.5"},
		{VString("x"), `"x"`},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("Value{%v}.String() = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestInstOperandLimit(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Inst to panic with more than 2 operands")
		}
	}()
	Inst(LiteralInt, VInt(1), VInt(2), VInt(3))
}

func TestOpcodeString(t *testing.T) {
	if Block.Begin().Op.String() != "Block.Begin" {
		t.Errorf("expected Block.Begin to stringify as Block.Begin, got %q", Block.Begin().Op.String())
	}
	if Object.EndWithInit().Op.String() != "Object.EndWithInit" {
		t.Errorf("expected Object.EndWithInit opcode name, got %q", Object.EndWithInit().Op.String())
	}
}

func TestInstructionHashStable(t *testing.T) {
	a := Literal.Int(7)
	b := Literal.Int(7)
	c := Literal.Int(8)
	if a.Hash() != b.Hash() {
		t.Errorf("expected identical instructions to hash equally")
	}
	if a.Hash() == c.Hash() {
		t.Errorf("expected different instructions to hash differently")
	}
}

func TestSequencePushAndMark(t *testing.T) {
	var seq Sequence
	if seq.Mark() != 0 {
		t.Fatalf("expected Mark() == 0 on an empty sequence")
	}
	seq.Push(Block.Begin())
	seq.Push(Literal.Int(1))
	if seq.Mark() != 2 {
		t.Errorf("expected Mark() == 2 after two pushes, got %d", seq.Mark())
	}
	seq.Push(Block.End())
	if len(seq) != 3 {
		t.Errorf("expected sequence length 3, got %d", len(seq))
	}
}
