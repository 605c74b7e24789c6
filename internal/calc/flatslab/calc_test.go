package flatslab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDDMFullRun(t *testing.T) {
	in := baseInput()
	in.Rebar.ColumnStripTop = RebarChoice{BarDiameterMM: 16, SpacingMM: 125}

	res, err := Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, "SAFE", res.Status)
	assert.True(t, res.Safe)
	assert.Nil(t, res.Stiffness, "DDM run carries no stiffness set")
	assert.Len(t, res.Rebar, 4)
	assert.True(t, res.Shear.Safe)
	assert.True(t, res.Deflection.Safe)
}

func TestCalculateEFMFullRun(t *testing.T) {
	in := baseInput()
	in.Method = MethodEFM
	in.Position = PositionEdge
	in.Rebar.ColumnStripTop = RebarChoice{BarDiameterMM: 16, SpacingMM: 125}

	res, err := Calculate(in)
	require.NoError(t, err)

	require.NotNil(t, res.Stiffness)
	assert.False(t, res.Stiffness.Degenerate)
	assert.GreaterOrEqual(t, res.Stiffness.DistributionFactor, 0.0)
	assert.LessOrEqual(t, res.Stiffness.DistributionFactor, 1.0)
	assert.Len(t, res.Rebar, 4)
	assert.Greater(t, res.Moments.FEMKgM, 0.0)
}

func TestCalculateIdempotent(t *testing.T) {
	in := baseInput()

	first, err := Calculate(in)
	require.NoError(t, err)
	second, err := Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateUnsafeWhenRebarFails(t *testing.T) {
	in := baseInput()
	in.Rebar.ColumnStripTop = RebarChoice{BarDiameterMM: 6, SpacingMM: 300}

	res, err := Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, "UNSAFE", res.Status)
	assert.False(t, res.Safe)
	// The report is still complete: every sub-result is present.
	assert.Len(t, res.Rebar, 4)
	assert.Greater(t, res.Shear.CapacityKg, 0.0)
	assert.Greater(t, res.Deflection.LimitMM, 0.0)
}

func TestCalculateValidation(t *testing.T) {
	cases := map[string]func(*Input){
		"zero span":        func(in *Input) { in.SpanXM = 0 },
		"zero thickness":   func(in *Input) { in.ThicknessMM = 0 },
		"zero column":      func(in *Input) { in.ColumnWidthMM = 0 },
		"zero cover":       func(in *Input) { in.CoverMM = 0 },
		"zero fc":          func(in *Input) { in.FcKsc = 0 },
		"zero fy":          func(in *Input) { in.FyKsc = 0 },
		"bad position":     func(in *Input) { in.Position = "middle" },
		"bad method":       func(in *Input) { in.Method = "fem" },
		"efm needs storey": func(in *Input) { in.Method = MethodEFM; in.StoreyHeightM = 0 },
	}
	for name, mutate := range cases {
		in := baseInput()
		mutate(&in)
		_, err := Calculate(in)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
}
