package mir

// Handle types for referencing MIR objects. They double as arena indices:
// appending to an arena is the only way to mint a new one, so a handle is
// always valid for the arena that produced it. A handle does not record
// which arena produced it.
type (
	RealExprId   uint32
	IntExprId    uint32
	StringExprId uint32

	VarId      uint32
	ParamId    uint32
	NetId      uint32
	PortId     uint32
	BranchId   uint32
)

// ExprKind discriminates the three possible static types an expression
// reference can carry (spec's combined ExprId sum type).
type ExprKind uint8

const (
	ExprKindReal ExprKind = iota
	ExprKindInt
	ExprKindString
)

// ExprId is the combined sum type tagging an expression reference as real,
// integer, or string. Exactly one of Real/Int/Str is meaningful, selected
// by Kind.
type ExprId struct {
	Kind ExprKind
	Real RealExprId
	Int  IntExprId
	Str  StringExprId
}

// RealExprOf builds an ExprId wrapping a real expression handle.
func RealExprOf(id RealExprId) ExprId { return ExprId{Kind: ExprKindReal, Real: id} }

// IntExprOf builds an ExprId wrapping an integer expression handle.
func IntExprOf(id IntExprId) ExprId { return ExprId{Kind: ExprKindInt, Int: id} }

// StringExprOf builds an ExprId wrapping a string expression handle.
func StringExprOf(id StringExprId) ExprId { return ExprId{Kind: ExprKindString, Str: id} }
