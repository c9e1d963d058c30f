// Package mir defines the mid-level intermediate representation consumed
// and extended by the automatic-differentiation engine.
//
// The IR is two parallel, append-only expression arenas — one for real
// (floating point) expressions, one for integer expressions — plus the
// small set of auxiliary tables (variables, parameters, branches) the
// differentiator needs to resolve references. It intentionally does not
// model statements, control flow, modules, or functions: a Verilog-AMS
// contribution statement's right-hand side is a pure expression tree, and
// this package only represents that tree and its derivatives.
//
// # Structure
//
// MIR is organized around a single Mir type holding:
//   - RealExprs / IntExprs: the two expression arenas
//   - Variables / Parameters / Branches: auxiliary declaration tables
//   - a DerivativeVarTable mapping (variable, unknown) pairs to synthesized
//     derivative variables
//
// Expressions are referenced by dense, stable handles (RealExprId,
// IntExprId) that double as arena indices. Nodes are immutable once
// pushed; the arena only ever grows.
package mir
