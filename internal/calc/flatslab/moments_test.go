package flatslab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func momentByLocation(t *testing.T, set MomentSet, loc Location) LocationMoment {
	t.Helper()
	for _, lm := range set.Locations {
		if lm.Location == loc {
			return lm
		}
	}
	t.Fatalf("location %s missing from moment set", loc)
	return LocationMoment{}
}

func TestStaticMomentManual(t *testing.T) {
	in := baseInput()
	g, err := resolveGeometry(in)
	require.NoError(t, err)
	loads, err := deriveLoads(in)
	require.NoError(t, err)

	set, err := distributeMoments(loads, in, g, nil)
	require.NoError(t, err)

	// Mo = qu·L2·ln²/8 with ln = 6 − 0.4 m
	assert.InDelta(t, 1176.0*6.0*5.6*5.6/8.0, set.StaticKgM, 1e-6)
}

func TestDDMStripSharesSumToLongitudinalShare(t *testing.T) {
	for _, pos := range []Position{PositionInterior, PositionEdge, PositionCorner} {
		in := baseInput()
		in.Position = pos
		g, err := resolveGeometry(in)
		require.NoError(t, err)
		loads, err := deriveLoads(in)
		require.NoError(t, err)

		set, err := distributeMoments(loads, in, g, nil)
		require.NoError(t, err)

		csTop := momentByLocation(t, set, LocationColumnStripTop)
		msTop := momentByLocation(t, set, LocationMiddleStripTop)
		csBot := momentByLocation(t, set, LocationColumnStripBottom)
		msBot := momentByLocation(t, set, LocationMiddleStripBottom)

		assert.InDelta(t, set.NegativeKgM, csTop.TotalKgM+msTop.TotalKgM, 1e-9, "position %s", pos)
		assert.InDelta(t, set.PositiveKgM, csBot.TotalKgM+msBot.TotalKgM, 1e-9, "position %s", pos)

		// The column strip takes the larger share at both signs.
		assert.Greater(t, csTop.TotalKgM, msTop.TotalKgM, "position %s", pos)
		assert.Greater(t, csBot.TotalKgM, msBot.TotalKgM, "position %s", pos)
	}
}

func TestDDMLongitudinalCoefficients(t *testing.T) {
	in := baseInput()
	g, err := resolveGeometry(in)
	require.NoError(t, err)
	loads, err := deriveLoads(in)
	require.NoError(t, err)

	interior, err := distributeMoments(loads, in, g, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.65*interior.StaticKgM, interior.NegativeKgM, 1e-9)
	assert.InDelta(t, 0.35*interior.StaticKgM, interior.PositiveKgM, 1e-9)

	in.Position = PositionEdge
	g, err = resolveGeometry(in)
	require.NoError(t, err)
	exterior, err := distributeMoments(loads, in, g, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.70*exterior.StaticKgM, exterior.NegativeKgM, 1e-9)
	assert.InDelta(t, 0.52*exterior.StaticKgM, exterior.PositiveKgM, 1e-9)
}

func TestEFMEmitsSameShapeAsDDM(t *testing.T) {
	in := baseInput()
	in.Method = MethodEFM
	in.Position = PositionEdge
	g, err := resolveGeometry(in)
	require.NoError(t, err)
	loads, err := deriveLoads(in)
	require.NoError(t, err)
	st := analyzeFrameStiffness(in)

	set, err := distributeMoments(loads, in, g, &st)
	require.NoError(t, err)

	require.Len(t, set.Locations, 4)
	assert.Greater(t, set.FEMKgM, 0.0)
	assert.InDelta(t, 1176.0*6.0*6.0*6.0/12.0, set.FEMKgM, 1e-6)
	for _, lm := range set.Locations {
		assert.GreaterOrEqual(t, lm.TotalKgM, 0.0, "location %s", lm.Location)
		assert.Greater(t, lm.StripWidthM, 0.0, "location %s", lm.Location)
	}
}

func TestEFMInteriorJointIsBalanced(t *testing.T) {
	in := baseInput()
	in.Method = MethodEFM
	g, err := resolveGeometry(in)
	require.NoError(t, err)
	loads, err := deriveLoads(in)
	require.NoError(t, err)
	st := analyzeFrameStiffness(in)

	set, err := distributeMoments(loads, in, g, &st)
	require.NoError(t, err)

	// Equal spans either side: no unbalanced moment, so the centerline
	// negative stays at the fixed-end value before the face reduction.
	shear := 1176.0 * 6.0 * 6.0 / 2.0
	wantFace := set.FEMKgM - shear*0.4/2.0
	assert.InDelta(t, wantFace, set.NegativeKgM, 1e-6)
}

func TestEFMWithoutStiffnessIsError(t *testing.T) {
	in := baseInput()
	in.Method = MethodEFM
	g, err := resolveGeometry(in)
	require.NoError(t, err)
	loads, err := deriveLoads(in)
	require.NoError(t, err)

	_, err = distributeMoments(loads, in, g, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
