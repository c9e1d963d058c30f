package ad

import (
	"math"

	"github.com/vpinon/OpenVAF/mir"
)

// derivative is the sparse encoding of a sub-derivative: nil means
// structural zero, a concrete id means a built expression tree.
type derivative = *mir.RealExprId

func some(id mir.RealExprId) derivative { return &id }

// genConstant appends a real literal node.
func (c *adContext) genConstant(span mir.Span, val float64) mir.RealExprId {
	return c.m.PushReal(mir.RealLiteral{Value: val}, span)
}

// genIntConstant appends an integer literal node.
func (c *adContext) genIntConstant(span mir.Span, val int64) mir.IntExprId {
	return c.m.PushInt(mir.IntLiteral{Value: val}, span)
}

// genNeg appends a real negation node.
func (c *adContext) genNeg(span mir.Span, arg mir.RealExprId) mir.RealExprId {
	return c.m.PushReal(mir.RealNegate{Inner: arg}, span)
}

// genBinary appends a real binary-operator node.
func (c *adContext) genBinary(span mir.Span, lhs mir.RealExprId, op mir.RealBinaryOp, rhs mir.RealExprId) mir.RealExprId {
	return c.m.PushReal(mir.RealBinary{Op: op, Lhs: lhs, Rhs: rhs}, span)
}

// genMath1 appends a one-argument built-in math function call.
func (c *adContext) genMath1(span mir.Span, fn mir.Builtin1, arg mir.RealExprId) mir.RealExprId {
	return c.m.PushReal(mir.RealBuiltin1{Fn: fn, Arg: arg}, span)
}

// genOnePlusMinusSquared builds 1±f² (minus=true ⇒ 1-f², minus=false ⇒
// 1+f²), used by the inverse-trig and hyperbolic-inverse rules.
func (c *adContext) genOnePlusMinusSquared(span mir.Span, minus bool, arg mir.RealExprId) mir.RealExprId {
	one := c.genConstant(span, 1.0)
	square := c.genBinary(span, arg, mir.RealMul, arg)
	op := mir.RealSum
	if minus {
		op = mir.RealDiff
	}
	return c.genBinary(span, one, op, square)
}

// convertToPaired reconciles two optional derivatives so both branches of
// a synthesized condition can be compared: if both are structural zero,
// there is nothing to build (the caller should also return structural
// zero); otherwise any structural-zero side is materialized as a literal
// 0.0, and both concrete ids are returned in their original order.
func (c *adContext) convertToPaired(span mir.Span, a, b derivative) (mir.RealExprId, mir.RealExprId, bool) {
	switch {
	case a != nil && b != nil:
		return *a, *b, true
	case a != nil:
		return *a, c.genConstant(span, 0.0), true
	case b != nil:
		return c.genConstant(span, 0.0), *b, true
	default:
		return 0, 0, false
	}
}

// derivativeSum implements D(a)+D(b) with 0-elision: either side missing
// contributes nothing, both missing is structural zero.
func (c *adContext) derivativeSum(span mir.Span, dlhs, drhs derivative) derivative {
	switch {
	case dlhs != nil && drhs != nil:
		return some(c.genBinary(span, *dlhs, mir.RealSum, *drhs))
	case dlhs != nil:
		return dlhs
	case drhs != nil:
		return drhs
	default:
		return nil
	}
}

// mulDerivative implements D(a)*b + a*D(b) with 0-elision on each factor.
func (c *adContext) mulDerivative(span mir.Span, lhs mir.RealExprId, dlhs derivative, rhs mir.RealExprId, drhs derivative) derivative {
	var factor1, factor2 derivative
	if dlhs != nil {
		factor1 = some(c.genBinary(span, *dlhs, mir.RealMul, rhs))
	}
	if drhs != nil {
		factor2 = some(c.genBinary(span, lhs, mir.RealMul, *drhs))
	}
	return c.derivativeSum(span, factor1, factor2)
}

// quotientDerivative implements (a/b)' = (a'*b - b'*a) / (b*b).
func (c *adContext) quotientDerivative(span mir.Span, lhs mir.RealExprId, dlhs derivative, rhs mir.RealExprId, drhs derivative) derivative {
	if drhs != nil {
		neg := c.genNeg(span, *drhs)
		drhs = some(neg)
	}
	num := c.mulDerivative(span, lhs, dlhs, rhs, drhs)
	if num == nil {
		return nil
	}
	den := c.genBinary(span, rhs, mir.RealMul, rhs)
	return some(c.genBinary(span, *num, mir.RealDiv, den))
}

// powDerivative implements (f**g)' = (g/f*f' + ln(f)*g') * f**g. original
// is the pre-existing pow expression node, reused rather than rebuilt.
func (c *adContext) powDerivative(span mir.Span, lhs mir.RealExprId, dlhs derivative, rhs mir.RealExprId, drhs derivative, original mir.RealExprId) derivative {
	var sum1, sum2 derivative
	if dlhs != nil {
		quotient := c.genBinary(span, rhs, mir.RealDiv, lhs)
		sum1 = some(c.genBinary(span, quotient, mir.RealMul, *dlhs))
	}
	if drhs != nil {
		ln := c.genMath1(span, mir.FnLn, lhs)
		sum2 = some(c.genBinary(span, ln, mir.RealMul, *drhs))
	}
	sum := c.derivativeSum(span, sum1, sum2)
	if sum == nil {
		return nil
	}
	return some(c.genBinary(span, *sum, mir.RealMul, original))
}

// genLtConditionReal synthesizes `a < b` over two real operands, used by
// the real-valued abs/min/max rules.
func (c *adContext) genLtConditionReal(span mir.Span, a, b mir.RealExprId) mir.IntExprId {
	return c.m.PushInt(mir.IntRealComparison{Lhs: a, Op: mir.CmpLess, Rhs: b}, span)
}

// genLtConditionInt synthesizes `a < b` over two integer operands, used by
// the integer-valued abs/min/max rules.
func (c *adContext) genLtConditionInt(span mir.Span, a, b mir.IntExprId) mir.IntExprId {
	return c.m.PushInt(mir.IntIntComparison{Lhs: a, Op: mir.CmpLess, Rhs: b}, span)
}

// log10E and ln2 are the only math constants the engine needs (log and
// shiftl/shiftr rules), taken straight from the standard library's math
// package.
var (
	log10E = math.Log10E
	ln2    = math.Ln2
)
