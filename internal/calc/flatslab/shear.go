package flatslab

import (
	"math"

	"github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/aci"
)

// analyzePunchingShear checks two-way shear at the critical section.
// Demand is the factored load on the tributary area outside the critical
// section, amplified for unbalanced moment transfer. Capacity is the minimum
// of the three ACI stress branches over the critical section.
func analyzePunchingShear(loads LoadSet, in Input, g GeometrySet) ShearResult {
	qu := loads.FactoredKgM2

	tributary := in.SpanXM * in.SpanYM    // m²
	critical := g.CriticalAreaCM2 / 1e4   // cm² -> m²
	demand := qu * (tributary - critical) * g.UnbalancedFactor // kg

	root := math.Sqrt(in.FcKsc)
	v1 := aci.VcBasicCoef * root
	v2 := aci.VcRectangularityCoef * (1.0 + 2.0/g.Beta) * root
	v3 := aci.VcPerimeterCoef * (2.0 + g.AlphaS*g.EffectiveDepthMM/10.0/g.PerimeterCM) * root
	vc := math.Min(v1, math.Min(v2, v3))

	// ksc × cm × cm = kg, consistent with the demand above.
	capacity := aci.PhiShear * vc * g.PerimeterCM * g.EffectiveDepthMM / 10.0

	res := ShearResult{
		DemandKg:   demand,
		V1Ksc:      v1,
		V2Ksc:      v2,
		V3Ksc:      v3,
		StressKsc:  vc,
		CapacityKg: capacity,
	}
	if capacity <= 0 {
		res.Indeterminate = true
		res.Safe = false
		res.Note = ErrDegenerate.Error() + ": punching capacity is zero or negative, utilization undefined"
		return res
	}

	res.Utilization = demand / capacity
	res.Safe = res.Utilization <= 1.0
	return res
}
