package ir

// Block, Function, List, Control, Object and Literal group the
// Instruction constructors by the part of the language they lower, the
// same grouping the instruction set documents informally by opcode
// prefix (Block.Begin, Function.Call, ...). Each is a zero-size value;
// its methods are the only thing that matters.

type blockConstructors struct{}

// Block holds the constructors for Block.* instructions.
var Block blockConstructors

func (blockConstructors) Begin() Instruction { return Inst(BlockBegin) }
func (blockConstructors) End() Instruction   { return Inst(BlockEnd) }
func (blockConstructors) Drop() Instruction  { return Inst(BlockDrop) }
func (blockConstructors) NamedBegin(name string) Instruction {
	return Inst(BlockNamedBegin, VString(name))
}

type functionConstructors struct{}

// Function holds the constructors for Function.* instructions.
var Function functionConstructors

func (functionConstructors) Begin() Instruction {
	return Inst(FunctionBegin)
}
func (functionConstructors) End() Instruction  { return Inst(FunctionEnd) }
func (functionConstructors) Call() Instruction { return Inst(FunctionCall) }

type listConstructors struct{}

// List holds the constructors for List.* instructions.
var List listConstructors

func (listConstructors) Push() Instruction { return Inst(ListPush) }
func (listConstructors) Pop() Instruction  { return Inst(ListPop) }

type controlConstructors struct{}

// Control holds the constructors for Control.* instructions.
var Control controlConstructors

func (controlConstructors) Jump(target int64) Instruction {
	return Inst(ControlJump, VInt(target))
}
func (controlConstructors) JumpIf(target int64) Instruction {
	return Inst(ControlJumpIf, VInt(target))
}
func (controlConstructors) JumpIfElse(thenTarget, elseTarget int64) Instruction {
	return Inst(ControlJumpIfElse, VInt(thenTarget), VInt(elseTarget))
}
func (controlConstructors) Mark(name string) Instruction {
	return Inst(ControlMark, VString(name))
}

type objectConstructors struct{}

// Object holds the constructors for Object.* instructions: declaration and
// lifetime management of named bindings.
var Object objectConstructors

func (objectConstructors) Begin() Instruction { return Inst(ObjectBegin) }
func (objectConstructors) End() Instruction   { return Inst(ObjectEnd) }

// EndWithInit closes an object declaration that carried an initializer
// expression, distinguishing it from a bare End so a later pass can tell
// whether a value is already sitting on the stack to consume.
func (objectConstructors) EndWithInit() Instruction { return Inst(ObjectEndWithInit) }
func (objectConstructors) AttachTo(name string) Instruction {
	return Inst(ObjectAttachTo, VString(name))
}
func (objectConstructors) Var(name string) Instruction {
	return Inst(ObjectVar, VString(name))
}
func (objectConstructors) VarPack(name string) Instruction {
	return Inst(ObjectVarPack, VString(name))
}
func (objectConstructors) VarWithConstraint(name string) Instruction {
	return Inst(ObjectVarWithConstraint, VString(name))
}
func (objectConstructors) VarPackWithConstraint(name string) Instruction {
	return Inst(ObjectVarPackWithConstraint, VString(name))
}
func (objectConstructors) Const(name string) Instruction {
	return Inst(ObjectConst, VString(name))
}
func (objectConstructors) ConstPack(name string) Instruction {
	return Inst(ObjectConstPack, VString(name))
}
func (objectConstructors) ConstWithConstraint(name string) Instruction {
	return Inst(ObjectConstWithConstraint, VString(name))
}
func (objectConstructors) ConstPackWithConstraint(name string) Instruction {
	return Inst(ObjectConstPackWithConstraint, VString(name))
}
func (objectConstructors) Use(name string) Instruction {
	return Inst(ObjectUse, VString(name))
}

type literalConstructors struct{}

// Literal holds the constructors for Literal.* instructions.
var Literal literalConstructors

func (literalConstructors) Int(i int64) Instruction     { return Inst(LiteralInt, VInt(i)) }
func (literalConstructors) Float(f float64) Instruction { return Inst(LiteralFloat, VFloat(f)) }
func (literalConstructors) String(s string) Instruction { return Inst(LiteralString, VString(s)) }
func (literalConstructors) Bool(b bool) Instruction     { return Inst(LiteralBool, VBool(b)) }
func (literalConstructors) Null() Instruction           { return Inst(LiteralNull) }
func (literalConstructors) Undef() Instruction          { return Inst(LiteralUndef) }
