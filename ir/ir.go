/*
Package ir defines the instruction set the lowering pass in package irgen
emits: a sum-typed Value, a closed enumeration of Opcodes, and Instruction
values pairing an opcode with zero to two ordered operands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ir

import (
	"fmt"

	"github.com/cnf/structhash"
)

// ValueKind tags which field of a Value is meaningful.
type ValueKind int

const (
	Undef ValueKind = iota
	Null
	Bool
	Int64
	Float64
	String
)

func (k ValueKind) String() string {
	switch k {
	case Undef:
		return "Undef"
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Int64:
		return "Int64"
	case Float64:
		return "Float64"
	case String:
		return "String"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is an immediate operand carried by an Instruction: a name, a
// numeric or string constant, or one of the two singleton values Undef and
// Null.
type Value struct {
	Kind ValueKind
	B    bool
	I    int64
	F    float64
	S    string
}

// VUndef is the singleton "undefined" value.
func VUndef() Value { return Value{Kind: Undef} }

// VNull is the singleton "null" value.
func VNull() Value { return Value{Kind: Null} }

// VBool wraps a boolean constant.
func VBool(b bool) Value { return Value{Kind: Bool, B: b} }

// VInt wraps an integer constant.
func VInt(i int64) Value { return Value{Kind: Int64, I: i} }

// VFloat wraps a floating-point constant.
func VFloat(f float64) Value { return Value{Kind: Float64, F: f} }

// VString wraps a string constant or identifier name.
func VString(s string) Value { return Value{Kind: String, S: s} }

func (v Value) String() string {
	switch v.Kind {
	case Undef:
		return "undef"
	case Null:
		return "null"
	case Bool:
		return fmt.Sprintf("%t", v.B)
	case Int64:
		return fmt.Sprintf("%d", v.I)
	case Float64:
		return fmt.Sprintf("%g", v.F)
	case String:
		return fmt.Sprintf("%q", v.S)
	}
	return "?"
}

// Opcode identifies an instruction's operation. The enumeration is closed:
// irgen never emits anything outside this set, and nothing downstream of
// irgen needs to tolerate an unknown opcode.
type Opcode int

const (
	BlockBegin Opcode = iota
	BlockEnd
	BlockDrop
	BlockNamedBegin

	FunctionBegin
	FunctionEnd
	FunctionCall

	ListPush
	ListPop

	ControlJump
	ControlJumpIf
	ControlJumpIfElse
	ControlMark

	ObjectBegin
	ObjectEnd
	ObjectEndWithInit
	ObjectAttachTo
	ObjectVar
	ObjectVarPack
	ObjectVarWithConstraint
	ObjectVarPackWithConstraint
	ObjectConst
	ObjectConstPack
	ObjectConstWithConstraint
	ObjectConstPackWithConstraint
	ObjectUse

	LiteralInt
	LiteralFloat
	LiteralString
	LiteralBool
	LiteralNull
	LiteralUndef
)

var opcodeNames = map[Opcode]string{
	BlockBegin:      "Block.Begin",
	BlockEnd:        "Block.End",
	BlockDrop:       "Block.Drop",
	BlockNamedBegin: "Block.NamedBegin",

	FunctionBegin: "Function.Begin",
	FunctionEnd:   "Function.End",
	FunctionCall:  "Function.Call",

	ListPush: "List.Push",
	ListPop:  "List.Pop",

	ControlJump:       "Control.Jump",
	ControlJumpIf:     "Control.JumpIf",
	ControlJumpIfElse: "Control.JumpIfElse",
	ControlMark:       "Control.Mark",

	ObjectBegin:                    "Object.Begin",
	ObjectEnd:                      "Object.End",
	ObjectEndWithInit:              "Object.EndWithInit",
	ObjectAttachTo:                 "Object.AttachTo",
	ObjectVar:                      "Object.Var",
	ObjectVarPack:                  "Object.VarPack",
	ObjectVarWithConstraint:        "Object.VarWithConstraint",
	ObjectVarPackWithConstraint:    "Object.VarPackWithConstraint",
	ObjectConst:                    "Object.Const",
	ObjectConstPack:                "Object.ConstPack",
	ObjectConstWithConstraint:      "Object.ConstWithConstraint",
	ObjectConstPackWithConstraint:  "Object.ConstPackWithConstraint",
	ObjectUse:                      "Object.Use",

	LiteralInt:    "Literal.Int",
	LiteralFloat:  "Literal.Float",
	LiteralString: "Literal.String",
	LiteralBool:   "Literal.Bool",
	LiteralNull:   "Literal.Null",
	LiteralUndef:  "Literal.Undef",
}

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// Instruction is one entry in an emitted Sequence: a stable opcode with up
// to two ordered operands.
type Instruction struct {
	Op       Opcode
	Operands []Value
}

// Inst constructs an Instruction from an opcode and 0-2 operands.
func Inst(op Opcode, operands ...Value) Instruction {
	if len(operands) > 2 {
		panic(fmt.Sprintf("ir: %s takes at most 2 operands, got %d", op, len(operands)))
	}
	return Instruction{Op: op, Operands: operands}
}

func (in Instruction) String() string {
	if len(in.Operands) == 0 {
		return in.Op.String()
	}
	s := in.Op.String() + "("
	for i, v := range in.Operands {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s + ")"
}

// Hash returns a stable content hash of the instruction, letting a
// consumer de-duplicate or compare instructions by value rather than by
// pointer identity.
func (in Instruction) Hash() string {
	h, err := structhash.Hash(in, 1)
	if err != nil {
		panic(fmt.Sprintf("ir: hashing instruction: %v", err))
	}
	return h
}

// Sequence is the linear stream of instructions a lowering pass emits.
type Sequence []Instruction

// Push appends an instruction.
func (s *Sequence) Push(in Instruction) {
	*s = append(*s, in)
}

// Mark returns the index the next Push will land at, used to patch forward
// jump targets once they are known.
func (s Sequence) Mark() int {
	return len(s)
}
