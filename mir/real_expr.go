package mir

// RealExprNode is one element of the real-expression arena: a closed
// discriminated expression value plus the source span it was built from.
type RealExprNode struct {
	Kind RealExprKind
	Span Span
}

// RealExprKind is the closed set of real-expression variants (spec's
// "Real expression variants"). Each concrete type below implements it via
// an unexported marker method, the same closed-union idiom used throughout
// this package for integer expressions.
type RealExprKind interface {
	realExprKind()
}

// RealLiteral is a real-valued constant.
type RealLiteral struct{ Value float64 }

func (RealLiteral) realExprKind() {}

// RealNegate is arithmetic negation of a real expression.
type RealNegate struct{ Inner RealExprId }

func (RealNegate) realExprKind() {}

// RealBinaryOp enumerates the real binary operators.
type RealBinaryOp uint8

const (
	RealSum RealBinaryOp = iota
	RealDiff
	RealMul
	RealDiv
	RealPow
	RealMod
)

// RealBinary applies a binary operator to two real operands.
type RealBinary struct {
	Op       RealBinaryOp
	Lhs, Rhs RealExprId
}

func (RealBinary) realExprKind() {}

// Builtin1 enumerates the one-argument built-in math functions.
type Builtin1 uint8

const (
	FnSqrt Builtin1 = iota
	FnExp
	FnLn
	FnLog
	FnAbs
	FnFloor
	FnCeil
	FnSin
	FnCos
	FnTan
	FnArcsin
	FnArccos
	FnArctan
	FnSinh
	FnCosh
	FnTanh
	FnArcsinh
	FnArccosh
	FnArctanh
)

// RealBuiltin1 calls a one-argument built-in math function.
type RealBuiltin1 struct {
	Fn  Builtin1
	Arg RealExprId
}

func (RealBuiltin1) realExprKind() {}

// Builtin2 enumerates the two-argument built-in math functions.
type Builtin2 uint8

const (
	FnPow Builtin2 = iota
	FnHypot
	FnArctan2
	FnMin
	FnMax
)

// RealBuiltin2 calls a two-argument built-in math function.
type RealBuiltin2 struct {
	Fn   Builtin2
	A, B RealExprId
}

func (RealBuiltin2) realExprKind() {}

// RealCondition is a ternary conditional over a (typically synthesized)
// integer condition expression.
type RealCondition struct {
	Cond       IntExprId
	Then, Else RealExprId
}

func (RealCondition) realExprKind() {}

// RealVarRef references a program variable (possibly a synthesized
// derivative variable — see DerivativeVarTable).
type RealVarRef struct{ Var VarId }

func (RealVarRef) realExprKind() {}

// RealParamRef references a module parameter.
type RealParamRef struct{ Param ParamId }

func (RealParamRef) realExprKind() {}

// RealBranchAccess accesses a branch's potential or flow, at an optional
// time-derivative order (d/dt applied order times already).
type RealBranchAccess struct {
	Access         DisciplineAccess
	Branch         BranchId
	TimeDerivOrder uint8
}

func (RealBranchAccess) realExprKind() {}

// RealIntegerConversion promotes an integer expression to real.
type RealIntegerConversion struct{ Int IntExprId }

func (RealIntegerConversion) realExprKind() {}

// RealNoise references a noise source; optionally named.
type RealNoise struct {
	Src  RealExprId
	Name *StringExprId
}

func (RealNoise) realExprKind() {}

// RealTemperature references the device temperature.
type RealTemperature struct{}

func (RealTemperature) realExprKind() {}

// RealSimParam references a simulator parameter looked up by name, with an
// optional default expression.
type RealSimParam struct {
	Name    StringExprId
	Default *RealExprId
}

func (RealSimParam) realExprKind() {}
