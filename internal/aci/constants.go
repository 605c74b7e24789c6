// Package aci collects the ACI 318 constants and tables used by the flat slab
// tools. Everything is expressed in the metric kg-cm ("ksc") system common in
// Thai practice: stresses in kg/cm², lengths in cm unless noted.
package aci

import "math"

const (
	// Unit weight of reinforced concrete (kg/m³).
	ConcreteUnitWeight = 2400.0

	// Modulus of elasticity for reinforcing steel (ksc).
	Es = 2.04e6

	// Strength reduction factors (ACI 318 Section 21.2).
	PhiFlexure = 0.90
	PhiShear   = 0.85

	// Two-way (punching) shear stress coefficients in ksc units
	// (ACI 318 Table 22.6.5.2, metric kg-cm form).
	VcBasicCoef          = 1.06 // vc = 1.06·√f'c
	VcRectangularityCoef = 0.53 // vc = 0.53·(1 + 2/β)·√f'c
	VcPerimeterCoef      = 0.27 // vc = 0.27·(2 + αs·d/bo)·√f'c

	// Minimum reinforcement ratio for slabs of deformed bars
	// (ACI 318 Section 8.6.1.1).
	MinSlabSteelRatio = 0.0018

	// Maximum bar spacing for slab flexural reinforcement (mm).
	MaxBarSpacingMM = 300.0

	// Internal lever-arm factor for the simplified slab flexure formula,
	// jd ≈ 0.9·d.
	LeverArmFactor = 0.9

	// Clear span may not be taken less than 0.65 of the centerline span
	// (ACI 318 Section 8.10.3.2.1).
	MinClearSpanRatio = 0.65

	// Default immediate-deflection limit divisor, L/240
	// (ACI 318 Table 24.2.2).
	DeflectionLimitDivisor = 240.0
)

// Ec returns the concrete modulus of elasticity in ksc for a cylinder
// strength f'c in ksc: Ec = 15100·√f'c (ACI 318 Section 19.2.2.1, kg-cm form).
func Ec(fc float64) float64 {
	if fc <= 0 {
		return 0
	}
	return 15100.0 * math.Sqrt(fc)
}
