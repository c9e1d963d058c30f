package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpinon/OpenVAF/mir"
)

func TestSinkAccumulatesWithoutAborting(t *testing.T) {
	var s Sink
	s.AddError(Modulus, mir.Span{})
	s.AddError(Comparison, mir.Span{})
	s.AddLint(RoundingDerivativeNotFullyDefined, mir.Span{})

	assert.True(t, s.HasErrors())
	assert.Len(t, s.Errors, 2)
	assert.Len(t, s.Lints, 1)
}

func TestSinkSummaryReportsFirstAndCount(t *testing.T) {
	var s Sink
	require.Nil(t, s.Summary())

	s.AddError(Modulus, mir.Span{Start: mir.Position{Line: 4, Column: 2}})
	summary := s.Summary()
	require.Error(t, summary)
	assert.Contains(t, summary.Error(), "4:2")

	s.AddError(BitWiseOp, mir.Span{})
	summary = s.Summary()
	require.Error(t, summary)
	assert.Contains(t, summary.Error(), "and 1 more errors")
}

func TestSinkHasErrorsIncludesStringEntryPoint(t *testing.T) {
	var s Sink
	assert.False(t, s.HasErrors())
	s.AddStringEntryPoint(mir.Span{})
	assert.True(t, s.HasErrors())
}
