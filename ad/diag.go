package ad

import (
	"github.com/vpinon/OpenVAF/diag"
	"github.com/vpinon/OpenVAF/mir"
)

// Thin accessors keep real.go/int.go reading as rule tables rather than
// import-qualified diag.* noise at every call site.

func diagModulus() diag.ErrorReason    { return diag.Modulus }
func diagBitWiseOp() diag.ErrorReason  { return diag.BitWiseOp }
func diagLogicOp() diag.ErrorReason    { return diag.LogicOp }
func diagComparison() diag.ErrorReason { return diag.Comparison }

func diagRounding() diag.LintKind  { return diag.RoundingDerivativeNotFullyDefined }
func diagNoiseLint() diag.LintKind { return diag.NoiseDerivativeTreatedAsZero }

// violateUnknownKind panics when a rule table's switch falls through to a
// kind the closed union should make unreachable — defensive only; it would
// indicate a new Kind variant was added to mir without a matching rule here.
func violateUnknownKind(span mir.Span) {
	panic(mir.InvariantViolation{Message: "differentiator: unhandled expression kind"})
}
