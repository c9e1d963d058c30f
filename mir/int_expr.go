package mir

// IntExprNode is one element of the integer-expression arena.
type IntExprNode struct {
	Kind IntExprKind
	Span Span
}

// IntExprKind is the closed set of integer-expression variants.
type IntExprKind interface {
	intExprKind()
}

// IntLiteral is an integer-valued constant.
type IntLiteral struct{ Value int64 }

func (IntLiteral) intExprKind() {}

// IntBinaryOp enumerates the integer binary operators, a superset of the
// real ones plus bitwise/logical/shift operators.
type IntBinaryOp uint8

const (
	IntSum IntBinaryOp = iota
	IntDiff
	IntMul
	IntDiv
	IntPow
	IntMod
	IntShiftL
	IntShiftR
	IntXor
	IntNxor
	IntAnd
	IntOr
	IntLogicAnd
	IntLogicOr
)

// IntBinary applies a binary operator to two integer operands.
type IntBinary struct {
	Op       IntBinaryOp
	Lhs, Rhs IntExprId
}

func (IntBinary) intExprKind() {}

// IntUnaryOp enumerates the integer unary operators.
type IntUnaryOp uint8

const (
	IntNeg IntUnaryOp = iota
	IntPos
	IntBitNeg
	IntLogicNeg
)

// IntUnary applies a unary operator to an integer operand.
type IntUnary struct {
	Op  IntUnaryOp
	Arg IntExprId
}

func (IntUnary) intExprKind() {}

// ComparisonOp enumerates relational/equality comparison operators.
type ComparisonOp uint8

const (
	CmpLess ComparisonOp = iota
	CmpLessEqual
	CmpGreater
	CmpGreaterEqual
	CmpEqual
	CmpNotEqual
)

// IntRealComparison compares two real operands, producing a boolean
// (integer-typed) result.
type IntRealComparison struct {
	Lhs RealExprId
	Op  ComparisonOp
	Rhs RealExprId
}

func (IntRealComparison) intExprKind() {}

// IntIntComparison compares two integer operands.
type IntIntComparison struct {
	Lhs IntExprId
	Op  ComparisonOp
	Rhs IntExprId
}

func (IntIntComparison) intExprKind() {}

// IntCondition is a ternary conditional over an integer condition
// expression, yielding an integer result.
type IntCondition struct {
	Cond       IntExprId
	Then, Else IntExprId
}

func (IntCondition) intExprKind() {}

// IntVarRef references a program variable.
type IntVarRef struct{ Var VarId }

func (IntVarRef) intExprKind() {}

// IntParamRef references a module parameter.
type IntParamRef struct{ Param ParamId }

func (IntParamRef) intExprKind() {}

// IntPortRef references a digital port by value. Left unimplemented by the
// differentiator: analog callers must never route these through AD.
type IntPortRef struct{ Port PortId }

func (IntPortRef) intExprKind() {}

// IntNetRef references a digital net by value. Same caveat as IntPortRef.
type IntNetRef struct{ Net NetId }

func (IntNetRef) intExprKind() {}

// IntPortConnected tests whether a port is connected.
type IntPortConnected struct{ Port PortId }

func (IntPortConnected) intExprKind() {}

// IntParamGiven tests whether a parameter was explicitly given a value.
type IntParamGiven struct{ Param ParamId }

func (IntParamGiven) intExprKind() {}

// IntStringEq compares two string expressions for equality.
type IntStringEq struct{ Lhs, Rhs StringExprId }

func (IntStringEq) intExprKind() {}

// IntStringNeq compares two string expressions for inequality.
type IntStringNeq struct{ Lhs, Rhs StringExprId }

func (IntStringNeq) intExprKind() {}

// IntRealCast truncates a real expression to an integer.
type IntRealCast struct{ Real RealExprId }

func (IntRealCast) intExprKind() {}

// IntMin/IntMax take the min/max of two integer operands.
type IntMin struct{ A, B IntExprId }

func (IntMin) intExprKind() {}

type IntMax struct{ A, B IntExprId }

func (IntMax) intExprKind() {}

// IntAbs takes the absolute value of one integer operand.
type IntAbs struct{ Arg IntExprId }

func (IntAbs) intExprKind() {}
