package suggest

import (
	"fmt"
	"math"

	"github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/aci"
)

type SpacingInput struct {
	MomentKgMPerM    float64 `json:"moment_kg_m_per_m"`
	ThicknessMM      float64 `json:"thickness_mm"`
	EffectiveDepthMM float64 `json:"effective_depth_mm"`
	FyKsc            float64 `json:"fy_ksc"`
	BarDiameterMM    float64 `json:"bar_diameter_mm"`
}

type SpacingResult struct {
	RequiredCM2  float64 `json:"required_cm2_per_m"`
	MinimumCM2   float64 `json:"minimum_cm2_per_m"`
	TargetCM2    float64 `json:"target_cm2_per_m"`
	BarAreaCM2   float64 `json:"bar_area_cm2"`
	SpacingMM    float64 `json:"spacing_mm"`
	Notes        string  `json:"notes"`
}

// Spacing recommends the widest spacing for the chosen bar that satisfies
// both the required steel area and the 300 mm spacing cap, rounded down to
// a 10 mm increment.
func Spacing(in SpacingInput) (SpacingResult, error) {
	if in.MomentKgMPerM <= 0 || in.ThicknessMM <= 0 || in.EffectiveDepthMM <= 0 ||
		in.FyKsc <= 0 || in.BarDiameterMM <= 0 {
		return SpacingResult{}, fmt.Errorf("invalid input")
	}

	dCM := in.EffectiveDepthMM / 10.0
	asReq := in.MomentKgMPerM * 100.0 / (aci.PhiFlexure * in.FyKsc * aci.LeverArmFactor * dCM)
	asMin := aci.MinSlabSteelRatio * 100.0 * in.ThicknessMM / 10.0
	target := math.Max(asReq, asMin)

	barArea := math.Pi * in.BarDiameterMM * in.BarDiameterMM / 4.0 / 100.0 // cm²
	spacing := barArea * 1000.0 / target                                  // mm
	spacing = math.Floor(spacing/10.0) * 10.0
	if spacing > aci.MaxBarSpacingMM {
		spacing = aci.MaxBarSpacingMM
	}
	if spacing < 50 {
		return SpacingResult{}, fmt.Errorf("bar too small for demand, spacing below 50 mm")
	}

	return SpacingResult{
		RequiredCM2: asReq,
		MinimumCM2:  asMin,
		TargetCM2:   target,
		BarAreaCM2:  barArea,
		SpacingMM:   spacing,
		Notes:       "Widest spacing satisfying steel area and the 300 mm cap.",
	}, nil
}
