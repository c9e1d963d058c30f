// Package ad implements symbolic automatic differentiation of Verilog-AMS
// MIR expressions (components E, F, G of the design).
//
// PartialDerivative is the single entry point: given a MIR expression and
// an Unknown to differentiate with respect to, it returns the MIR id of a
// new expression tree representing the partial derivative, appending any
// new nodes to the supplied mir.Mir and routing diagnostics (undefined
// derivatives, rounding-operator lints) to the supplied diag.Sink.
//
// Internally, a sub-result is either "structural zero" (represented as a
// nil derivative, i.e. *mir.RealExprId, never a literal 0.0 node — see the
// derivative type in helpers.go) or a concrete expression id. This sparse
// encoding is what keeps d(x*y)/du from expanding into x*0 + y*dx/du
// chains when dy/du is zero; see helpers.go's mulDerivative for the
// elision.
package ad
