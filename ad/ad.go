package ad

import (
	"github.com/vpinon/OpenVAF/diag"
	"github.com/vpinon/OpenVAF/mir"
)

// Mode selects how the engine handles floor/ceil derivatives, whose
// mathematical value is zero almost everywhere but undefined at the step
// points.
type Mode uint8

const (
	// ModeLint is the default: floor/ceil derivatives dispatch the
	// RoundingDerivativeNotFullyDefined lint and contribute structural
	// zero.
	ModeLint Mode = iota
	// ModeStrictZero suppresses the rounding lint and instead emits a
	// literal 0.0 node for floor/ceil derivatives, for callers that want
	// an always-concrete result tree with no structural zeros at
	// rounding boundaries.
	ModeStrictZero
)

// adContext carries the state threaded through one differentiation call:
// the MIR being extended, the diagnostic sink, the unknown being
// differentiated with respect to, and the selected Mode. It has no other
// mutable state: every rule below takes the span of the expression it
// differentiates as an explicit parameter instead of mutating a "current
// expression" cursor, keeping the zero value free of a save/restore stack.
type adContext struct {
	m       *mir.Mir
	sink    *diag.Sink
	unknown mir.Unknown
	mode    Mode
}

// PartialDerivative is the AD engine's single entry point (component G).
// It dispatches on expr's static type, returning a real-typed derivative
// id in every case: a real expression is differentiated directly (E), an
// integer expression is differentiated and promoted (F), and a string
// expression produces an OnlyNumericExpressionsCanBeDerived diagnostic plus
// a placeholder literal zero. The returned id is always valid in m; no
// error is ever returned directly — the caller inspects sink afterward.
func PartialDerivative(m *mir.Mir, sink *diag.Sink, expr mir.ExprId, by mir.Unknown) mir.RealExprId {
	return PartialDerivativeMode(m, sink, expr, by, ModeLint)
}

// PartialDerivativeMode is PartialDerivative with an explicit Mode (see
// Mode for the open questions it resolves).
func PartialDerivativeMode(m *mir.Mir, sink *diag.Sink, expr mir.ExprId, by mir.Unknown, mode Mode) mir.RealExprId {
	c := &adContext{m: m, sink: sink, unknown: by, mode: mode}

	switch expr.Kind {
	case mir.ExprKindReal:
		if d := c.diffReal(expr.Real); d != nil {
			return *d
		}
		return c.genConstant(m.SpanOfReal(expr.Real), 0.0)

	case mir.ExprKindInt:
		if d := c.diffInt(expr.Int); d != nil {
			return *d
		}
		return c.genConstant(m.SpanOfInt(expr.Int), 0.0)

	default: // ExprKindString
		span := m.SpanOf(expr)
		sink.AddStringEntryPoint(span)
		return m.PushReal(mir.RealLiteral{Value: 0.0}, span)
	}
}
