package diag

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/vpinon/OpenVAF/mir"
)

// ErrorReason names why an operator has no mathematical derivative in this
// framework.
type ErrorReason uint8

const (
	Modulus ErrorReason = iota
	BitWiseOp
	LogicOp
	Comparison
)

func (r ErrorReason) String() string {
	switch r {
	case Modulus:
		return "modulus has no defined derivative"
	case BitWiseOp:
		return "bitwise operator has no defined derivative"
	case LogicOp:
		return "logical operator has no defined derivative"
	case Comparison:
		return "comparison has no defined derivative"
	default:
		return "operator has no defined derivative"
	}
}

// Error is a hard diagnostic: the engine could not produce a derivative
// for the operator at Span and instead treated its contribution as zero.
type Error struct {
	Reason ErrorReason
	Span   mir.Span
}

func (e Error) Error() string {
	if e.Span.Start.Line == 0 {
		return e.Reason.String()
	}
	return fmt.Sprintf("%d:%d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Reason)
}

// StringEntryPoint is the distinct hard error emitted when the entry point
// is asked to differentiate a string-valued expression — it is not an
// ErrorReason because it is raised by PartialDerivative itself, never from
// inside a traversal rule.
type StringEntryPoint struct {
	Span mir.Span
}

func (e StringEntryPoint) Error() string {
	return "only numeric expressions can be derived"
}

// LintKind names an advisory diagnostic: the produced derivative is
// mathematically correct almost everywhere but undefined at isolated
// points.
type LintKind uint8

const (
	// RoundingDerivativeNotFullyDefined is dispatched when floor/ceil's
	// derivative is requested: it is 0 almost everywhere but undefined at
	// the step points.
	RoundingDerivativeNotFullyDefined LintKind = iota
	// NoiseDerivativeTreatedAsZero is dispatched when a noise source's
	// derivative is requested: always treated as structural zero,
	// advisory only.
	NoiseDerivativeTreatedAsZero
)

func (k LintKind) String() string {
	switch k {
	case RoundingDerivativeNotFullyDefined:
		return "derivative of rounding operator is not fully defined at step points"
	case NoiseDerivativeTreatedAsZero:
		return "derivative of noise source is treated as zero"
	default:
		return "lint"
	}
}

// Lint is an advisory diagnostic.
type Lint struct {
	Kind LintKind
	Span mir.Span
}

func (l Lint) String() string {
	if l.Span.Start.Line == 0 {
		return l.Kind.String()
	}
	return fmt.Sprintf("%d:%d: %s", l.Span.Start.Line, l.Span.Start.Column, l.Kind)
}

// Sink accumulates hard errors and lints across a differentiation call (and,
// if the caller chooses, across many calls against the same Mir). It is
// append-only and never aborts traversal: see package doc.
type Sink struct {
	Errors       []Error
	StringErrors []StringEntryPoint
	Lints        []Lint
}

// AddError appends a hard error.
func (s *Sink) AddError(reason ErrorReason, span mir.Span) {
	s.Errors = append(s.Errors, Error{Reason: reason, Span: span})
}

// AddStringEntryPoint appends the string-entry-point hard error.
func (s *Sink) AddStringEntryPoint(span mir.Span) {
	s.StringErrors = append(s.StringErrors, StringEntryPoint{Span: span})
}

// AddLint appends an advisory lint.
func (s *Sink) AddLint(kind LintKind, span mir.Span) {
	s.Lints = append(s.Lints, Lint{Kind: kind, Span: span})
}

// HasErrors reports whether any hard error was recorded.
func (s *Sink) HasErrors() bool {
	return len(s.Errors) > 0 || len(s.StringErrors) > 0
}

// Summary returns a one-line "first error (and N more)" summary, or nil if
// there are no hard errors. It wraps the underlying error with
// github.com/pkg/errors so a caller that re-raises it at a package
// boundary keeps a stack trace attached to the first failure.
func (s *Sink) Summary() error {
	total := len(s.Errors) + len(s.StringErrors)
	if total == 0 {
		return nil
	}

	var first error
	switch {
	case len(s.Errors) > 0:
		first = s.Errors[0]
	default:
		first = s.StringErrors[0]
	}

	if total == 1 {
		return errors.WithStack(first)
	}
	return errors.WithStack(fmt.Errorf("%s (and %d more errors)", first, total-1))
}
