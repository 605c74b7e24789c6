package flatslab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeflectionManual(t *testing.T) {
	in := baseInput()
	loads, err := deriveLoads(in)
	require.NoError(t, err)

	res := checkDeflection(loads, in)
	require.False(t, res.Indeterminate)

	// δ = 5·w·L⁴ / (384·Ec·Is) in kg-cm units
	ec := 15100.0 * math.Sqrt(240.0)
	is := 600.0 * math.Pow(20.0, 3) / 12.0
	w := 1176.0 * 6.0 / 100.0
	want := 5.0 * w * math.Pow(600.0, 4) / (384.0 * ec * is) * 10.0 // mm

	assert.InDelta(t, want, res.DeflectionMM, 1e-9)
	assert.InDelta(t, 25.0, res.LimitMM, 1e-9) // 6000/240
	assert.True(t, res.Safe)
}

func TestDeflectionLimitRatioConfigurable(t *testing.T) {
	in := baseInput()
	in.DeflectionLimitRatio = 480
	loads, err := deriveLoads(in)
	require.NoError(t, err)

	res := checkDeflection(loads, in)
	assert.InDelta(t, 12.5, res.LimitMM, 1e-9)
}

func TestDeflectionIndeterminateOnCollapsedDenominator(t *testing.T) {
	in := baseInput()
	in.FcKsc = 0 // Ec collapses
	loads := LoadSet{FactoredKgM2: 1176}

	res := checkDeflection(loads, in)
	assert.True(t, res.Indeterminate)
	assert.False(t, res.Safe)
	assert.InDelta(t, 0.0, res.DeflectionMM, 1e-12)
	assert.NotEmpty(t, res.Note)
}
