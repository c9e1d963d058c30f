package ad

import "github.com/vpinon/OpenVAF/mir"

// diffInt implements component F: the integer-expression differentiator.
// Its result, like diffReal's, is a real-typed sparse derivative — every
// concrete result is wrapped so the enclosing real rule never has to know
// it started from an integer sub-expression.
func (c *adContext) diffInt(id mir.IntExprId) derivative {
	node := c.m.GetInt(id)
	span := node.Span

	switch k := node.Kind.(type) {
	case mir.IntLiteral:
		return nil

	case mir.IntBinary:
		return c.diffIntBinary(span, id, k)

	case mir.IntUnary:
		return c.diffIntUnary(span, k)

	case mir.IntRealComparison:
		c.sink.AddError(diagComparison(), span)
		return nil

	case mir.IntIntComparison:
		c.sink.AddError(diagComparison(), span)
		return nil

	case mir.IntStringEq:
		c.sink.AddError(diagComparison(), span)
		return nil

	case mir.IntStringNeq:
		c.sink.AddError(diagComparison(), span)
		return nil

	case mir.IntCondition:
		dthen := c.diffInt(k.Then)
		delse := c.diffInt(k.Else)
		if dthen == nil && delse == nil {
			return nil
		}
		thenId, elseId, _ := c.convertToPaired(span, dthen, delse)
		return some(c.m.PushReal(mir.RealCondition{Cond: k.Cond, Then: thenId, Else: elseId}, span))

	case mir.IntVarRef:
		dv := c.m.DerivativeVar(k.Var, c.unknown)
		return some(c.m.PushReal(mir.RealVarRef{Var: dv}, span))

	case mir.IntParamRef:
		if c.unknown.IsParameter(k.Param) {
			return some(c.genConstant(span, 1.0))
		}
		return nil

	case mir.IntPortRef:
		panic(mir.InvariantViolation{Message: "cannot differentiate a digital port reference"})

	case mir.IntNetRef:
		panic(mir.InvariantViolation{Message: "cannot differentiate a digital net reference"})

	case mir.IntPortConnected:
		return nil

	case mir.IntParamGiven:
		return nil

	case mir.IntRealCast:
		return c.diffReal(k.Real)

	case mir.IntMin:
		cond := c.genLtConditionInt(span, k.A, k.B)
		condId := c.m.PushInt(mir.IntCondition{Cond: cond, Then: k.A, Else: k.B}, span)
		return c.diffInt(condId)

	case mir.IntMax:
		cond := c.genLtConditionInt(span, k.B, k.A)
		condId := c.m.PushInt(mir.IntCondition{Cond: cond, Then: k.A, Else: k.B}, span)
		return c.diffInt(condId)

	case mir.IntAbs:
		cond := c.genLtConditionInt(span, k.Arg, c.genIntConstant(span, 0))
		neg := c.m.PushInt(mir.IntUnary{Op: mir.IntNeg, Arg: k.Arg}, span)
		condId := c.m.PushInt(mir.IntCondition{Cond: cond, Then: neg, Else: k.Arg}, span)
		return c.diffInt(condId)

	default:
		violateUnknownKind(span)
		return nil
	}
}

func (c *adContext) diffIntUnary(span mir.Span, k mir.IntUnary) derivative {
	switch k.Op {
	case mir.IntNeg:
		d := c.diffInt(k.Arg)
		if d == nil {
			return nil
		}
		return some(c.genNeg(span, *d))

	case mir.IntPos:
		return c.diffInt(k.Arg)

	case mir.IntBitNeg:
		c.sink.AddError(diagBitWiseOp(), span)
		return nil

	case mir.IntLogicNeg:
		c.sink.AddError(diagLogicOp(), span)
		return nil

	default:
		violateUnknownKind(span)
		return nil
	}
}

// asReal wraps an integer operand in the explicit promotion node required
// whenever an integer sub-expression feeds a real rule.
func (c *adContext) asReal(span mir.Span, id mir.IntExprId) mir.RealExprId {
	return c.m.PushReal(mir.RealIntegerConversion{Int: id}, span)
}

func (c *adContext) diffIntBinary(span mir.Span, self mir.IntExprId, k mir.IntBinary) derivative {
	switch k.Op {
	case mir.IntSum:
		return c.derivativeSum(span, c.diffInt(k.Lhs), c.diffInt(k.Rhs))

	case mir.IntDiff:
		dlhs := c.diffInt(k.Lhs)
		drhs := c.diffInt(k.Rhs)
		if drhs != nil {
			neg := c.genNeg(span, *drhs)
			drhs = some(neg)
		}
		return c.derivativeSum(span, dlhs, drhs)

	case mir.IntMul:
		lhs, rhs := c.asReal(span, k.Lhs), c.asReal(span, k.Rhs)
		return c.mulDerivative(span, lhs, c.diffInt(k.Lhs), rhs, c.diffInt(k.Rhs))

	case mir.IntDiv:
		lhs, rhs := c.asReal(span, k.Lhs), c.asReal(span, k.Rhs)
		return c.quotientDerivative(span, lhs, c.diffInt(k.Lhs), rhs, c.diffInt(k.Rhs))

	case mir.IntPow:
		lhs, rhs := c.asReal(span, k.Lhs), c.asReal(span, k.Rhs)
		original := c.asReal(span, self)
		return c.powDerivative(span, lhs, c.diffInt(k.Lhs), rhs, c.diffInt(k.Rhs), original)

	case mir.IntMod:
		c.sink.AddError(diagModulus(), span)
		return nil

	case mir.IntShiftL:
		return c.diffShift(span, self, k.Lhs, k.Rhs, false)

	case mir.IntShiftR:
		return c.diffShift(span, self, k.Lhs, k.Rhs, true)

	case mir.IntXor, mir.IntNxor, mir.IntAnd, mir.IntOr:
		c.sink.AddError(diagBitWiseOp(), span)
		return nil

	case mir.IntLogicAnd, mir.IntLogicOr:
		c.sink.AddError(diagLogicOp(), span)
		return nil

	default:
		violateUnknownKind(span)
		return nil
	}
}

// diffShift implements `a << b` (interpreted as a*2^b) and `a >> b`
// (a*2^-b): derivative is (D(a) + sign*ln2*a*D(b)) * self, sign flipping
// between the two directions.
func (c *adContext) diffShift(span mir.Span, self mir.IntExprId, a, b mir.IntExprId, negate bool) derivative {
	da := c.diffInt(a)
	db := c.diffInt(b)

	var logTerm derivative
	if db != nil {
		aReal := c.asReal(span, a)
		ln2Lit := c.genConstant(span, ln2)
		if negate {
			ln2Lit = c.genNeg(span, ln2Lit)
		}
		product := c.genBinary(span, ln2Lit, mir.RealMul, aReal)
		logTerm = some(c.genBinary(span, product, mir.RealMul, *db))
	}

	sum := c.derivativeSum(span, da, logTerm)
	if sum == nil {
		return nil
	}
	selfReal := c.asReal(span, self)
	return some(c.genBinary(span, *sum, mir.RealMul, selfReal))
}
