package mir

import "fmt"

// ValidationError reports a structural invariant violation found in a Mir.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// Validate checks invariant I1 — every expression id appearing in any node
// refers to an index strictly less than the id of the containing node in
// its own arena — across both expression arenas. Because the arenas are
// append-only and the AD engine never constructs a node referencing an id
// it hasn't already produced or received as input, a well-behaved engine
// run never violates this; Validate exists to catch the mistake early in
// tests and in defensive callers.
func Validate(m *Mir) []ValidationError {
	var errs []ValidationError

	for i, node := range m.RealExprs {
		self := RealExprId(i)
		forEachRealChild(node.Kind, func(child RealExprId) {
			if child >= self {
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("real expression %d references non-preceding real expression %d", self, child),
				})
			}
		})
		forEachIntChildOfReal(node.Kind, func(child IntExprId) {
			if int(child) >= len(m.IntExprs) {
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("real expression %d references out-of-range integer expression %d", self, child),
				})
			}
		})
	}

	for i, node := range m.IntExprs {
		self := IntExprId(i)
		forEachIntChild(node.Kind, func(child IntExprId) {
			if child >= self {
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("integer expression %d references non-preceding integer expression %d", self, child),
				})
			}
		})
		forEachRealChildOfInt(node.Kind, func(child RealExprId) {
			if int(child) >= len(m.RealExprs) {
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("integer expression %d references out-of-range real expression %d", self, child),
				})
			}
		})
	}

	return errs
}

func forEachRealChild(kind RealExprKind, f func(RealExprId)) {
	switch k := kind.(type) {
	case RealNegate:
		f(k.Inner)
	case RealBinary:
		f(k.Lhs)
		f(k.Rhs)
	case RealBuiltin1:
		f(k.Arg)
	case RealBuiltin2:
		f(k.A)
		f(k.B)
	case RealCondition:
		f(k.Then)
		f(k.Else)
	case RealNoise:
		f(k.Src)
	case RealSimParam:
		if k.Default != nil {
			f(*k.Default)
		}
	}
}

func forEachIntChildOfReal(kind RealExprKind, f func(IntExprId)) {
	switch k := kind.(type) {
	case RealCondition:
		f(k.Cond)
	case RealIntegerConversion:
		f(k.Int)
	}
}

func forEachIntChild(kind IntExprKind, f func(IntExprId)) {
	switch k := kind.(type) {
	case IntBinary:
		f(k.Lhs)
		f(k.Rhs)
	case IntUnary:
		f(k.Arg)
	case IntIntComparison:
		f(k.Lhs)
		f(k.Rhs)
	case IntCondition:
		f(k.Cond)
		f(k.Then)
		f(k.Else)
	case IntMin:
		f(k.A)
		f(k.B)
	case IntMax:
		f(k.A)
		f(k.B)
	case IntAbs:
		f(k.Arg)
	}
}

func forEachRealChildOfInt(kind IntExprKind, f func(RealExprId)) {
	switch k := kind.(type) {
	case IntRealComparison:
		f(k.Lhs)
		f(k.Rhs)
	case IntRealCast:
		f(k.Real)
	}
}
