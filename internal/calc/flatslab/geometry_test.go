package flatslab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePlan(diaMM, spacingMM float64) RebarPlan {
	choice := RebarChoice{BarDiameterMM: diaMM, SpacingMM: spacingMM}
	return RebarPlan{
		ColumnStripTop:    choice,
		ColumnStripBottom: choice,
		MiddleStripTop:    choice,
		MiddleStripBottom: choice,
	}
}

func baseInput() Input {
	return Input{
		SpanXM:        6,
		SpanYM:        6,
		ThicknessMM:   200,
		StoreyHeightM: 3,
		ColumnWidthMM: 400,
		ColumnDepthMM: 400,
		CoverMM:       25,
		SDLKgM2:       100,
		LiveKgM2:      300,
		FcKsc:         240,
		FyKsc:         4000,
		Position:      PositionInterior,
		Method:        MethodDDM,
		Combination:   "ACI318-14",
		Rebar:         basePlan(12, 150),
	}
}

func TestEffectiveDepthFromCoverAndBars(t *testing.T) {
	g, err := resolveGeometry(baseInput())
	require.NoError(t, err)

	// d = 200 - 25 - (12+12)/2
	assert.InDelta(t, 163.0, g.EffectiveDepthMM, 1e-9)
}

func TestInteriorPerimeterManual(t *testing.T) {
	g, err := resolveGeometry(baseInput())
	require.NoError(t, err)

	// bo = 2·[(c1+d)+(c2+d)] with c = 40 cm, d = 16.3 cm
	assert.InDelta(t, 2*((40+16.3)+(40+16.3)), g.PerimeterCM, 1e-9)
	assert.InDelta(t, (40+16.3)*(40+16.3), g.CriticalAreaCM2, 1e-9)
	assert.InDelta(t, 40.0, g.AlphaS, 1e-9)
	assert.InDelta(t, 1.0, g.Beta, 1e-9)
	assert.InDelta(t, 1.0, g.UnbalancedFactor, 1e-9)
}

func TestGeometryPositiveForAllPositions(t *testing.T) {
	for _, pos := range []Position{PositionInterior, PositionEdge, PositionCorner} {
		in := baseInput()
		in.Position = pos

		g, err := resolveGeometry(in)
		require.NoError(t, err, "position %s", pos)
		assert.Greater(t, g.PerimeterCM, 0.0, "position %s", pos)
		assert.Greater(t, g.CriticalAreaCM2, 0.0, "position %s", pos)
		assert.GreaterOrEqual(t, g.Beta, 1.0, "position %s", pos)
	}
}

func TestEdgeAndCornerPerimeters(t *testing.T) {
	in := baseInput()
	in.Position = PositionEdge
	g, err := resolveGeometry(in)
	require.NoError(t, err)
	assert.InDelta(t, 2*(40+16.3/2)+(40+16.3), g.PerimeterCM, 1e-9)
	assert.InDelta(t, 30.0, g.AlphaS, 1e-9)
	assert.InDelta(t, 1.15, g.UnbalancedFactor, 1e-9)

	in.Position = PositionCorner
	g, err = resolveGeometry(in)
	require.NoError(t, err)
	assert.InDelta(t, (40+16.3/2)+(40+16.3/2), g.PerimeterCM, 1e-9)
	assert.InDelta(t, 20.0, g.AlphaS, 1e-9)
	assert.InDelta(t, 1.0, g.Beta, 1e-9)
	assert.InDelta(t, 1.20, g.UnbalancedFactor, 1e-9)
}

func TestClearSpanFloor(t *testing.T) {
	in := baseInput()
	in.ColumnWidthMM = 3000 // absurdly wide column

	g, err := resolveGeometry(in)
	require.NoError(t, err)
	// ln may not drop below 0.65·L1
	assert.InDelta(t, 0.65*6, g.ClearSpanM, 1e-9)
}

func TestNonPositiveEffectiveDepthIsFatal(t *testing.T) {
	in := baseInput()
	in.ThicknessMM = 30 // thinner than cover plus bars

	_, err := resolveGeometry(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUnrecognizedPositionIsError(t *testing.T) {
	in := baseInput()
	in.Position = Position("wall")

	_, err := resolveGeometry(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
