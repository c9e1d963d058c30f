// Package diag collects the diagnostics the automatic-differentiation
// engine emits while it walks an expression tree: hard errors for
// operators with no mathematical derivative, and advisory lints for
// operators whose derivative is only almost-everywhere defined.
//
// Diagnostics are collected, not thrown: a Sink is an append-only bag the
// engine keeps writing to as it traverses, and the caller inspects it once
// differentiation returns to decide whether to continue compilation.
package diag
