package mir

// Variable is a program variable declared somewhere in the (externally
// lowered) MIR. The AD engine only ever reads Name/Type off existing
// variables and appends new ones (derivative variables); it never mutates
// an existing entry.
type Variable struct {
	Name string
	Type VarType
}

// VarType distinguishes real- and integer-typed variables. Derivative
// variables synthesized by DerivativeVarTable are always VarTypeReal
// (spec invariant I4).
type VarType uint8

const (
	VarTypeReal VarType = iota
	VarTypeInt
)

// Parameter is a module parameter declaration.
type Parameter struct {
	Name string
}

// BranchDecl records the underlying Branch (port or net pair) for a
// BranchId.
type BranchDecl struct {
	Branch Branch
}

// Mir is the mid-level intermediate representation: two append-only
// expression arenas plus the auxiliary declaration tables the
// differentiator consults. The zero value is usable.
//
// Mir is single-writer: at most one differentiation call may mutate a
// given Mir at a time. Nothing inside Mir takes a lock — serializing
// concurrent differentiation against the same Mir is the caller's
// responsibility, exactly as the arena it generalizes from documents.
type Mir struct {
	RealExprs []RealExprNode
	IntExprs  []IntExprNode

	Variables  []Variable
	Parameters []Parameter
	Branches   []BranchDecl

	derivVars DerivativeVarTable
}

// PushReal appends a real expression node and returns its stable handle.
// Every call site in package ad passes the span of the expression
// currently being processed (spec invariant I3); Mir does not and cannot
// enforce that itself, since it has no notion of "current expression" —
// enforcing I3 is the differentiator's job.
func (m *Mir) PushReal(kind RealExprKind, span Span) RealExprId {
	id := RealExprId(len(m.RealExprs))
	m.RealExprs = append(m.RealExprs, RealExprNode{Kind: kind, Span: span})
	return id
}

// PushInt appends an integer expression node and returns its stable handle.
func (m *Mir) PushInt(kind IntExprKind, span Span) IntExprId {
	id := IntExprId(len(m.IntExprs))
	m.IntExprs = append(m.IntExprs, IntExprNode{Kind: kind, Span: span})
	return id
}

// GetReal returns the node for id. Panics with InvariantViolation if id is
// out of range for this Mir's real arena; an in-range handle minted by
// another Mir is not detected.
func (m *Mir) GetReal(id RealExprId) RealExprNode {
	if int(id) >= len(m.RealExprs) {
		violate("real expression handle %d out of range (len=%d)", id, len(m.RealExprs))
	}
	return m.RealExprs[id]
}

// GetInt returns the node for id. Panics with InvariantViolation if id is
// out of range for this Mir's integer arena; an in-range handle minted by
// another Mir is not detected.
func (m *Mir) GetInt(id IntExprId) IntExprNode {
	if int(id) >= len(m.IntExprs) {
		violate("integer expression handle %d out of range (len=%d)", id, len(m.IntExprs))
	}
	return m.IntExprs[id]
}

// SpanOfReal returns the span tagged on a real expression.
func (m *Mir) SpanOfReal(id RealExprId) Span { return m.GetReal(id).Span }

// SpanOfInt returns the span tagged on an integer expression.
func (m *Mir) SpanOfInt(id IntExprId) Span { return m.GetInt(id).Span }

// SpanOf returns the span tagged on any ExprId, dispatching on its Kind.
func (m *Mir) SpanOf(expr ExprId) Span {
	switch expr.Kind {
	case ExprKindReal:
		return m.SpanOfReal(expr.Real)
	case ExprKindInt:
		return m.SpanOfInt(expr.Int)
	default:
		return dummySpan
	}
}

// AddVariable declares a new program variable and returns its handle.
func (m *Mir) AddVariable(v Variable) VarId {
	id := VarId(len(m.Variables))
	m.Variables = append(m.Variables, v)
	return id
}

// AddParameter declares a new module parameter and returns its handle.
func (m *Mir) AddParameter(p Parameter) ParamId {
	id := ParamId(len(m.Parameters))
	m.Parameters = append(m.Parameters, p)
	return id
}

// AddBranch declares a new branch and returns its handle.
func (m *Mir) AddBranch(b Branch) BranchId {
	id := BranchId(len(m.Branches))
	m.Branches = append(m.Branches, BranchDecl{Branch: b})
	return id
}

// BranchOf returns the declared Branch for id.
func (m *Mir) BranchOf(id BranchId) Branch {
	if int(id) >= len(m.Branches) {
		violate("branch handle %d out of range (len=%d)", id, len(m.Branches))
	}
	return m.Branches[id].Branch
}

// DerivativeVar returns the derivative variable standing for ∂var/∂unknown,
// allocating and interning a fresh one on first use. See
// DerivativeVarTable for the memoization contract (spec invariant I4).
func (m *Mir) DerivativeVar(v VarId, u Unknown) VarId {
	return m.derivVars.get(m, v, u)
}
