package aci

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEc(t *testing.T) {
	assert.InDelta(t, 15100.0*math.Sqrt(240.0), Ec(240), 1e-9)
	assert.InDelta(t, 15100.0*math.Sqrt(280.0), Ec(280), 1e-9)
	assert.Equal(t, 0.0, Ec(0))
	assert.Equal(t, 0.0, Ec(-5))
}

func TestCombinationFactored(t *testing.T) {
	c99 := CombinationByName("ACI318-99")
	assert.InDelta(t, 1.4*580+1.7*300, c99.Factored(580, 300), 1e-9)

	c14 := CombinationByName("aci318-14") // case-insensitive
	assert.InDelta(t, 1176.0, c14.Factored(580, 300), 1e-9)
}

func TestUnknownCombinationFallsBack(t *testing.T) {
	c := CombinationByName("ASCE-7")
	assert.Equal(t, DefaultCombination.Name, c.Name)
	assert.InDelta(t, 1.4, c.Dead, 1e-9)
	assert.InDelta(t, 1.7, c.Live, 1e-9)
}
