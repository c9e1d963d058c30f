package mir

// Position represents a position in the original Verilog-AMS source.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Span represents a source range tagged onto every MIR node. The AD engine
// never constructs a Span from scratch: every node it pushes carries the
// span of the expression it was derived from (see the package-level
// invariant documented on Mir.PushReal / Mir.PushInt).
type Span struct {
	Start  Position
	End    Position
	Source string // source file name or identifier
}

// dummySpan is used only as a placeholder for the literal 0.0 produced when
// differentiating a string-typed entry point expression (spec step G.3);
// it carries no meaningful location because there is, by construction, no
// real node whose span it could inherit.
var dummySpan = Span{}
