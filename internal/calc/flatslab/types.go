// Package flatslab performs an ACI 318 design check for one flat (beamless)
// slab panel supported on columns: factored loads, punching shear at the
// column, flexural moment distribution by DDM or EFM, reinforcement
// verification and an immediate deflection check, combined into one verdict.
//
// Boundary units are the practical field units: spans and storey height in m,
// thickness/cover/bars/spacing in mm, loads in kg/m², strengths in ksc
// (kg/cm²). Internal shear and stiffness arithmetic runs in a single kg-cm
// system; steel areas come out in cm² per metre strip, moments in kg·m.
package flatslab

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrDegenerate    = errors.New("degenerate configuration")
	ErrIndeterminate = errors.New("indeterminate result")
)

// Position is the column position category of the panel.
type Position string

const (
	PositionInterior Position = "interior"
	PositionEdge     Position = "edge"
	PositionCorner   Position = "corner"
)

func (p Position) Valid() bool {
	switch p {
	case PositionInterior, PositionEdge, PositionCorner:
		return true
	}
	return false
}

// Method selects the moment distribution path.
type Method string

const (
	MethodDDM Method = "ddm" // Direct Design Method, fixed code coefficients
	MethodEFM Method = "efm" // Equivalent Frame Method, stiffness based
)

func (m Method) Valid() bool {
	return m == MethodDDM || m == MethodEFM
}

// Location is one of the four design locations of the panel.
type Location string

const (
	LocationColumnStripTop    Location = "column_strip_top"
	LocationColumnStripBottom Location = "column_strip_bottom"
	LocationMiddleStripTop    Location = "middle_strip_top"
	LocationMiddleStripBottom Location = "middle_strip_bottom"
)

// RebarChoice is the user-selected reinforcement at one location.
type RebarChoice struct {
	BarDiameterMM float64 `json:"bar_diameter_mm"`
	SpacingMM     float64 `json:"spacing_mm"`
}

// RebarPlan holds the selected reinforcement per location-and-face.
type RebarPlan struct {
	ColumnStripTop    RebarChoice `json:"column_strip_top"`
	ColumnStripBottom RebarChoice `json:"column_strip_bottom"`
	MiddleStripTop    RebarChoice `json:"middle_strip_top"`
	MiddleStripBottom RebarChoice `json:"middle_strip_bottom"`
}

// ByLocation returns the choice for a design location.
func (p RebarPlan) ByLocation(loc Location) RebarChoice {
	switch loc {
	case LocationColumnStripTop:
		return p.ColumnStripTop
	case LocationColumnStripBottom:
		return p.ColumnStripBottom
	case LocationMiddleStripTop:
		return p.MiddleStripTop
	default:
		return p.MiddleStripBottom
	}
}

// Input is one panel configuration. It is passed by value and never mutated.
type Input struct {
	SpanXM        float64 `json:"span_x_m"` // L1, direction of analysis
	SpanYM        float64 `json:"span_y_m"` // L2, transverse direction
	ThicknessMM   float64 `json:"thickness_mm"`
	StoreyHeightM float64 `json:"storey_height_m"`
	ColumnWidthMM float64 `json:"column_width_mm"` // c1, parallel to L1
	ColumnDepthMM float64 `json:"column_depth_mm"` // c2, parallel to L2
	CoverMM       float64 `json:"cover_mm"`

	SDLKgM2  float64 `json:"sdl_kg_m2"` // superimposed dead load
	LiveKgM2 float64 `json:"live_kg_m2"`

	FcKsc float64 `json:"fc_ksc"`
	FyKsc float64 `json:"fy_ksc"`

	Position    Position  `json:"position"`
	Method      Method    `json:"method"`
	Combination string    `json:"combination"` // load factor pair name, optional
	Rebar       RebarPlan `json:"rebar"`

	DeflectionLimitRatio float64 `json:"deflection_limit_ratio"` // default 240
}

// LoadSet holds derived area loads (kg/m²).
type LoadSet struct {
	SelfWeightKgM2 float64 `json:"self_weight_kg_m2"`
	DeadKgM2       float64 `json:"dead_kg_m2"`
	LiveKgM2       float64 `json:"live_kg_m2"`
	FactoredKgM2   float64 `json:"factored_kg_m2"`
	DeadFactor     float64 `json:"dead_factor"`
	LiveFactor     float64 `json:"live_factor"`
	Combination    string  `json:"combination"`
}

// GeometrySet holds the critical-section geometry for the column position.
type GeometrySet struct {
	EffectiveDepthMM float64 `json:"effective_depth_mm"`
	PerimeterCM      float64 `json:"perimeter_cm"`      // bo
	CriticalAreaCM2  float64 `json:"critical_area_cm2"` // area inside bo
	AlphaS           float64 `json:"alpha_s"`           // shape coefficient
	Beta             float64 `json:"beta"`              // column aspect ratio
	UnbalancedFactor float64 `json:"unbalanced_factor"` // shear demand amplification
	ClearSpanM       float64 `json:"clear_span_m"`
	MinThicknessMM   float64 `json:"min_thickness_mm"` // ln / divisor, informational
	ThicknessDivisor float64 `json:"thickness_divisor"`
}

// StiffnessSet holds the equivalent-frame stiffness results (EFM only).
// Stiffness values are in kg·cm, inertias in cm⁴.
type StiffnessSet struct {
	SlabInertiaCM4     float64 `json:"slab_inertia_cm4"`
	ColumnInertiaCM4   float64 `json:"column_inertia_cm4"`
	SlabStiffness      float64 `json:"slab_stiffness"`
	ColumnStiffness    float64 `json:"column_stiffness"` // upper + lower columns
	TorsionalConstant  float64 `json:"torsional_constant_cm4"`
	TorsionalStiffness float64 `json:"torsional_stiffness"`
	TorsionArms        int     `json:"torsion_arms"`
	EquivalentColumn   float64 `json:"equivalent_column_stiffness"` // Kec
	DistributionFactor float64 `json:"distribution_factor"`
	Degenerate         bool    `json:"degenerate"`
	Note               string  `json:"note,omitempty"`
}

// LocationMoment is the design moment assigned to one location.
type LocationMoment struct {
	Location    Location `json:"location"`
	StripWidthM float64  `json:"strip_width_m"`
	TotalKgM    float64  `json:"total_kg_m"`
	PerMeterKgM float64  `json:"per_meter_kg_m"`
}

// MomentSet is the method-agnostic moment distribution result.
type MomentSet struct {
	StaticKgM   float64          `json:"static_kg_m"` // Mo
	FEMKgM      float64          `json:"fem_kg_m,omitempty"`
	NegativeKgM float64          `json:"negative_kg_m"`
	PositiveKgM float64          `json:"positive_kg_m"`
	Locations   []LocationMoment `json:"locations"`
}

// RebarCheck is the verification result at one design location.
type RebarCheck struct {
	Location       Location `json:"location"`
	MomentKgM      float64  `json:"moment_kg_m"` // per metre strip
	RequiredCM2    float64  `json:"required_cm2_per_m"`
	MinimumCM2     float64  `json:"minimum_cm2_per_m"`
	TargetCM2      float64  `json:"target_cm2_per_m"` // max(required, minimum)
	BarAreaCM2     float64  `json:"bar_area_cm2"`
	ProvidedCM2    float64  `json:"provided_cm2_per_m"`
	SpacingMM      float64  `json:"spacing_mm"`
	SpacingLimitMM float64  `json:"spacing_limit_mm"`
	Utilization    float64  `json:"utilization"`
	Safe           bool     `json:"safe"`
	Reasons        []string `json:"reasons,omitempty"`
}

// ShearResult is the punching shear check at the critical section.
type ShearResult struct {
	DemandKg      float64 `json:"demand_kg"`
	V1Ksc         float64 `json:"v1_ksc"`
	V2Ksc         float64 `json:"v2_ksc"`
	V3Ksc         float64 `json:"v3_ksc"`
	StressKsc     float64 `json:"stress_ksc"` // governing = min(v1, v2, v3)
	CapacityKg    float64 `json:"capacity_kg"`
	Utilization   float64 `json:"utilization"`
	Safe          bool    `json:"safe"`
	Indeterminate bool    `json:"indeterminate"`
	Note          string  `json:"note,omitempty"`
}

// DeflectionResult is the immediate deflection check.
type DeflectionResult struct {
	DeflectionMM  float64 `json:"deflection_mm"`
	LimitMM       float64 `json:"limit_mm"`
	Ratio         float64 `json:"ratio"`
	Safe          bool    `json:"safe"`
	Indeterminate bool    `json:"indeterminate"`
	Note          string  `json:"note,omitempty"`
}

// Report is the aggregated design check; the only object exposed to callers.
type Report struct {
	Position   Position         `json:"position"`
	Method     Method           `json:"method"`
	Loads      LoadSet          `json:"loads"`
	Geometry   GeometrySet      `json:"geometry"`
	Stiffness  *StiffnessSet    `json:"stiffness,omitempty"` // EFM only
	Moments    MomentSet        `json:"moments"`
	Rebar      []RebarCheck     `json:"rebar"`
	Shear      ShearResult      `json:"shear"`
	Deflection DeflectionResult `json:"deflection"`
	Safe       bool             `json:"safe"`
	Status     string           `json:"status"` // SAFE or UNSAFE
	Notes      string           `json:"notes"`
}
