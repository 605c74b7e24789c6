package flatslab

import (
	"math"

	"github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/aci"
)

// Utilization reported when the provided steel area is zero.
const utilizationCap = 9.9

// verifyReinforcement checks the selected reinforcement at every design
// location against the larger of the required and minimum steel areas, and
// against the maximum spacing limit. All simultaneous failure reasons are
// recorded.
func verifyReinforcement(in Input, g GeometrySet, m MomentSet) []RebarCheck {
	checks := make([]RebarCheck, 0, len(m.Locations))
	for _, lm := range m.Locations {
		choice := in.Rebar.ByLocation(lm.Location)
		checks = append(checks, checkLocation(lm.Location, lm.PerMeterKgM, choice, in, g))
	}
	return checks
}

func checkLocation(loc Location, momentKgM float64, choice RebarChoice, in Input, g GeometrySet) RebarCheck {
	tCM := in.ThicknessMM / 10.0
	dCM := g.EffectiveDepthMM / 10.0

	// As,min = 0.0018 · b · t over a 100 cm unit strip (cm²/m).
	asMin := aci.MinSlabSteelRatio * 100.0 * tCM

	// As,req = M / (φ·fy·jd) with M in kg·m converted to kg·cm (cm²/m).
	asReq := momentKgM * 100.0 / (aci.PhiFlexure * in.FyKsc * aci.LeverArmFactor * dCM)
	if asReq < 0 {
		asReq = 0
	}

	target := math.Max(asReq, asMin)

	// Bar area in cm², bars per metre from the spacing in mm.
	barArea := math.Pi * choice.BarDiameterMM * choice.BarDiameterMM / 4.0 / 100.0
	provided := 0.0
	if choice.SpacingMM > 0 {
		provided = barArea * 1000.0 / choice.SpacingMM
	}

	check := RebarCheck{
		Location:       loc,
		MomentKgM:      momentKgM,
		RequiredCM2:    asReq,
		MinimumCM2:     asMin,
		TargetCM2:      target,
		BarAreaCM2:     barArea,
		ProvidedCM2:    provided,
		SpacingMM:      choice.SpacingMM,
		SpacingLimitMM: aci.MaxBarSpacingMM,
		Safe:           true,
	}

	if provided < target {
		check.Safe = false
		check.Reasons = append(check.Reasons, "As < Req")
	}
	if choice.SpacingMM > aci.MaxBarSpacingMM {
		check.Safe = false
		check.Reasons = append(check.Reasons, "Spacing > 300")
	}
	if choice.SpacingMM <= 0 {
		check.Safe = false
		check.Reasons = append(check.Reasons, "Spacing invalid")
	}

	if provided > 0 {
		check.Utilization = asReq / provided
	} else {
		check.Utilization = utilizationCap
	}
	return check
}
