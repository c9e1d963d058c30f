package mir

import "testing"

func TestPushRealAssignsStableDenseHandles(t *testing.T) {
	var m Mir
	a := m.PushReal(RealLiteral{Value: 1}, Span{})
	b := m.PushReal(RealLiteral{Value: 2}, Span{})

	if a != 0 || b != 1 {
		t.Fatalf("expected handles 0,1; got %d,%d", a, b)
	}
	if got := m.GetReal(a).Kind.(RealLiteral).Value; got != 1 {
		t.Fatalf("GetReal(0) = %v, want 1", got)
	}
}

func TestGetRealOutOfRangePanics(t *testing.T) {
	var m Mir
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range handle")
		}
	}()
	m.GetReal(RealExprId(0))
}

func TestSpanOfDispatchesOnExprKind(t *testing.T) {
	var m Mir
	span := Span{Start: Position{Line: 3, Column: 1}}
	id := m.PushReal(RealLiteral{Value: 0}, span)

	got := m.SpanOf(RealExprOf(id))
	if got != span {
		t.Fatalf("SpanOf = %+v, want %+v", got, span)
	}
}

func TestDerivativeVarIsMemoized(t *testing.T) {
	var m Mir
	v := m.AddVariable(Variable{Name: "x", Type: VarTypeReal})
	u := UnknownParameter(m.AddParameter(Parameter{Name: "p"}))

	first := m.DerivativeVar(v, u)
	second := m.DerivativeVar(v, u)
	if first != second {
		t.Fatalf("DerivativeVar not memoized: got %d then %d", first, second)
	}

	other := m.DerivativeVar(v, UnknownTemperature)
	if other == first {
		t.Fatalf("distinct unknowns must not share a derivative variable")
	}
	if m.Variables[first].Type != VarTypeReal {
		t.Fatalf("derivative variable must be real-typed")
	}
}

func TestValidateCatchesForwardReference(t *testing.T) {
	var m Mir
	// Hand-construct a forward reference: node 0 references node 1 (which
	// does not exist yet at push time), violating invariant I1.
	m.RealExprs = append(m.RealExprs, RealExprNode{Kind: RealNegate{Inner: 1}})

	errs := Validate(&m)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for the forward reference")
	}
}

func TestValidateAcceptsWellFormedArena(t *testing.T) {
	var m Mir
	lit := m.PushReal(RealLiteral{Value: 1}, Span{})
	m.PushReal(RealNegate{Inner: lit}, Span{})

	if errs := Validate(&m); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
}

func TestBranchNetsAndPort(t *testing.T) {
	var m Mir
	port := m.AddBranch(BranchPort(5))
	nets := m.AddBranch(BranchNets(1, 2))

	if p, ok := m.BranchOf(port).IsPort(); !ok || p != 5 {
		t.Fatalf("expected port branch with PortId 5, got %v,%v", p, ok)
	}
	upper, lower, ok := m.BranchOf(nets).Nets()
	if !ok || upper != 1 || lower != 2 {
		t.Fatalf("expected net branch (1,2), got (%v,%v,%v)", upper, lower, ok)
	}
}
