package ad

import "github.com/vpinon/OpenVAF/mir"

// diffReal implements component E: the real-expression differentiator.
// It returns nil for structural zero: a sub-derivative known at
// construction time to be identically zero, elided rather than built as a
// literal 0.0 node (see package doc).
func (c *adContext) diffReal(id mir.RealExprId) derivative {
	node := c.m.GetReal(id)
	span := node.Span

	switch k := node.Kind.(type) {
	case mir.RealLiteral:
		return nil

	case mir.RealNegate:
		d := c.diffReal(k.Inner)
		if d == nil {
			return nil
		}
		return some(c.genNeg(span, *d))

	case mir.RealBinary:
		return c.diffRealBinary(span, id, k)

	case mir.RealBuiltin1:
		return c.diffRealBuiltin1(span, id, k)

	case mir.RealBuiltin2:
		return c.diffRealBuiltin2(span, id, k)

	case mir.RealCondition:
		dthen := c.diffReal(k.Then)
		delse := c.diffReal(k.Else)
		if dthen == nil && delse == nil {
			return nil
		}
		thenId, elseId, _ := c.convertToPaired(span, dthen, delse)
		return some(c.m.PushReal(mir.RealCondition{Cond: k.Cond, Then: thenId, Else: elseId}, span))

	case mir.RealVarRef:
		dv := c.m.DerivativeVar(k.Var, c.unknown)
		return some(c.m.PushReal(mir.RealVarRef{Var: dv}, span))

	case mir.RealParamRef:
		if c.unknown.IsParameter(k.Param) {
			return some(c.genConstant(span, 1.0))
		}
		return nil

	case mir.RealBranchAccess:
		return c.diffBranchAccess(span, k)

	case mir.RealIntegerConversion:
		return c.diffInt(k.Int)

	case mir.RealNoise:
		c.sink.AddLint(diagNoiseLint(), span)
		return nil

	case mir.RealTemperature:
		if c.unknown.IsTemperature() {
			return some(c.genConstant(span, 1.0))
		}
		return nil

	case mir.RealSimParam:
		return nil

	default:
		violateUnknownKind(span)
		return nil
	}
}

func (c *adContext) diffRealBinary(span mir.Span, self mir.RealExprId, k mir.RealBinary) derivative {
	switch k.Op {
	case mir.RealSum:
		return c.derivativeSum(span, c.diffReal(k.Lhs), c.diffReal(k.Rhs))

	case mir.RealDiff:
		dlhs := c.diffReal(k.Lhs)
		drhs := c.diffReal(k.Rhs)
		if drhs != nil {
			neg := c.genNeg(span, *drhs)
			drhs = some(neg)
		}
		return c.derivativeSum(span, dlhs, drhs)

	case mir.RealMul:
		return c.mulDerivative(span, k.Lhs, c.diffReal(k.Lhs), k.Rhs, c.diffReal(k.Rhs))

	case mir.RealDiv:
		return c.quotientDerivative(span, k.Lhs, c.diffReal(k.Lhs), k.Rhs, c.diffReal(k.Rhs))

	case mir.RealPow:
		return c.powDerivative(span, k.Lhs, c.diffReal(k.Lhs), k.Rhs, c.diffReal(k.Rhs), self)

	case mir.RealMod:
		c.sink.AddError(diagModulus(), span)
		return nil

	default:
		violateUnknownKind(span)
		return nil
	}
}

func (c *adContext) diffRealBuiltin1(span mir.Span, self mir.RealExprId, k mir.RealBuiltin1) derivative {
	arg := k.Arg
	switch k.Fn {
	case mir.FnSqrt:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		den := c.genBinary(span, c.genConstant(span, 2.0), mir.RealMul, self)
		return some(c.genBinary(span, *d, mir.RealDiv, den))

	case mir.FnExp:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		return some(c.genBinary(span, *d, mir.RealMul, self))

	case mir.FnLn:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		return some(c.genBinary(span, *d, mir.RealDiv, arg))

	case mir.FnLog:
		// log10(f)' reuses the ln rule: d(ln(f)) = D(f)/f.
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		dln := c.genBinary(span, *d, mir.RealDiv, arg)
		return some(c.genBinary(span, c.genConstant(span, log10E), mir.RealMul, dln))

	case mir.FnAbs:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		cond := c.genLtConditionReal(span, arg, c.genConstant(span, 0.0))
		negD := c.genNeg(span, *d)
		return some(c.m.PushReal(mir.RealCondition{Cond: cond, Then: negD, Else: *d}, span))

	case mir.FnFloor, mir.FnCeil:
		if c.mode == ModeStrictZero {
			return some(c.genConstant(span, 0.0))
		}
		c.sink.AddLint(diagRounding(), span)
		return nil

	case mir.FnSin:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		cos := c.m.PushReal(mir.RealBuiltin1{Fn: mir.FnCos, Arg: arg}, span)
		return some(c.genBinary(span, *d, mir.RealMul, cos))

	case mir.FnCos:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		sin := c.m.PushReal(mir.RealBuiltin1{Fn: mir.FnSin, Arg: arg}, span)
		negSin := c.genNeg(span, sin)
		return some(c.genBinary(span, *d, mir.RealMul, negSin))

	case mir.FnTan:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		factor := c.genOnePlusMinusSquared(span, false, self)
		return some(c.genBinary(span, *d, mir.RealMul, factor))

	case mir.FnArcsin:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		den := c.genMath1(span, mir.FnSqrt, c.genOnePlusMinusSquared(span, true, arg))
		return some(c.genBinary(span, *d, mir.RealDiv, den))

	case mir.FnArccos:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		den := c.genMath1(span, mir.FnSqrt, c.genOnePlusMinusSquared(span, true, arg))
		asinD := c.genBinary(span, *d, mir.RealDiv, den)
		return some(c.genNeg(span, asinD))

	case mir.FnArctan:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		den := c.genOnePlusMinusSquared(span, false, arg)
		return some(c.genBinary(span, *d, mir.RealDiv, den))

	case mir.FnSinh:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		cosh := c.m.PushReal(mir.RealBuiltin1{Fn: mir.FnCosh, Arg: arg}, span)
		return some(c.genBinary(span, *d, mir.RealMul, cosh))

	case mir.FnCosh:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		sinh := c.m.PushReal(mir.RealBuiltin1{Fn: mir.FnSinh, Arg: arg}, span)
		return some(c.genBinary(span, *d, mir.RealMul, sinh))

	case mir.FnTanh:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		factor := c.genOnePlusMinusSquared(span, true, self)
		return some(c.genBinary(span, *d, mir.RealMul, factor))

	case mir.FnArcsinh:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		den := c.genMath1(span, mir.FnSqrt, c.genOnePlusMinusSquared(span, false, arg))
		return some(c.genBinary(span, *d, mir.RealDiv, den))

	case mir.FnArccosh:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		square := c.genBinary(span, arg, mir.RealMul, arg)
		diff := c.genBinary(span, square, mir.RealDiff, c.genConstant(span, 1.0))
		den := c.genMath1(span, mir.FnSqrt, diff)
		return some(c.genBinary(span, *d, mir.RealDiv, den))

	case mir.FnArctanh:
		d := c.diffReal(arg)
		if d == nil {
			return nil
		}
		den := c.genOnePlusMinusSquared(span, true, arg)
		return some(c.genBinary(span, *d, mir.RealDiv, den))

	default:
		violateUnknownKind(span)
		return nil
	}
}

func (c *adContext) diffRealBuiltin2(span mir.Span, self mir.RealExprId, k mir.RealBuiltin2) derivative {
	switch k.Fn {
	case mir.FnPow:
		return c.powDerivative(span, k.A, c.diffReal(k.A), k.B, c.diffReal(k.B), self)

	case mir.FnHypot:
		da, db := c.diffReal(k.A), c.diffReal(k.B)
		num := c.mulDerivative(span, k.B, da, k.A, db)
		if num == nil {
			return nil
		}
		return some(c.genBinary(span, *num, mir.RealDiv, self))

	case mir.FnArctan2:
		da, db := c.diffReal(k.A), c.diffReal(k.B)
		var term1, term2 derivative
		if da != nil {
			term1 = some(c.genBinary(span, k.B, mir.RealMul, *da))
		}
		if db != nil {
			neg := c.genNeg(span, *db)
			term2 = some(c.genBinary(span, k.A, mir.RealMul, neg))
		}
		num := c.derivativeSum(span, term1, term2)
		if num == nil {
			return nil
		}
		den := c.genBinary(span,
			c.genBinary(span, k.A, mir.RealMul, k.A), mir.RealSum,
			c.genBinary(span, k.B, mir.RealMul, k.B))
		return some(c.genBinary(span, *num, mir.RealDiv, den))

	case mir.FnMax:
		cond := c.genLtConditionReal(span, k.B, k.A)
		condId := c.m.PushReal(mir.RealCondition{Cond: cond, Then: k.A, Else: k.B}, span)
		return c.diffReal(condId)

	case mir.FnMin:
		cond := c.genLtConditionReal(span, k.A, k.B)
		condId := c.m.PushReal(mir.RealCondition{Cond: cond, Then: k.A, Else: k.B}, span)
		return c.diffReal(condId)

	default:
		violateUnknownKind(span)
		return nil
	}
}

func (c *adContext) diffBranchAccess(span mir.Span, k mir.RealBranchAccess) derivative {
	if c.unknown.IsTime() {
		return some(c.m.PushReal(mir.RealBranchAccess{
			Access:         k.Access,
			Branch:         k.Branch,
			TimeDerivOrder: k.TimeDerivOrder + 1,
		}, span))
	}

	if net, ok := c.unknown.NodePotential(); ok && k.Access == mir.AccessPotential {
		branch := c.m.BranchOf(k.Branch)
		if upper, lower, ok := branch.Nets(); ok {
			switch net {
			case upper:
				return some(c.genConstant(span, 1.0))
			case lower:
				return some(c.genConstant(span, -1.0))
			}
		}
		return nil
	}

	if branch, ok := c.unknown.Flow(); ok && k.Access == mir.AccessFlow && branch == k.Branch {
		return some(c.genConstant(span, 1.0))
	}

	return nil
}
