package flatslab

import (
	"fmt"
	"math"

	"github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/aci"
)

// Minimum slab thickness divisors for flat plates without edge beams
// (ACI 318 Table 8.3.1.1): interior panels ln/33, exterior panels ln/30.
var thicknessDivisors = map[Position]float64{
	PositionInterior: 33,
	PositionEdge:     30,
	PositionCorner:   30,
}

// Shear demand amplification accounting for unbalanced moment transfer.
var unbalancedFactors = map[Position]float64{
	PositionInterior: 1.00,
	PositionEdge:     1.15,
	PositionCorner:   1.20,
}

// resolveGeometry computes the effective depth and the critical shear
// perimeter for the column position. The critical section sits d/2 from the
// column faces; edge and corner columns lose the sides that fall outside
// the slab.
func resolveGeometry(in Input) (GeometrySet, error) {
	topDia := in.Rebar.ColumnStripTop.BarDiameterMM
	botDia := in.Rebar.ColumnStripBottom.BarDiameterMM

	// d = t - cover - average controlling bar diameter
	dMM := in.ThicknessMM - in.CoverMM - (topDia+botDia)/2.0
	if dMM <= 0 {
		return GeometrySet{}, fmt.Errorf("%w: effective depth %.1f mm (thickness too small for cover and bars)", ErrInvalidInput, dMM)
	}

	d := dMM / 10.0               // cm
	c1 := in.ColumnWidthMM / 10.0 // cm
	c2 := in.ColumnDepthMM / 10.0 // cm

	var bo, area, alphaS, beta float64
	switch in.Position {
	case PositionInterior:
		bo = 2.0 * ((c1 + d) + (c2 + d))
		area = (c1 + d) * (c2 + d)
		alphaS = 40
		beta = math.Max(c1, c2) / math.Min(c1, c2)
	case PositionEdge:
		bo = 2.0*(c1+d/2.0) + (c2 + d)
		area = (c1 + d/2.0) * (c2 + d)
		alphaS = 30
		beta = math.Max(c1, c2) / math.Min(c1, c2)
	case PositionCorner:
		bo = (c1 + d/2.0) + (c2 + d/2.0)
		area = (c1 + d/2.0) * (c2 + d/2.0)
		alphaS = 20
		beta = 1.0
	default:
		return GeometrySet{}, fmt.Errorf("%w: unrecognized column position %q", ErrInvalidInput, in.Position)
	}

	// Clear span in the direction of analysis, floored per code.
	ln := in.SpanXM - in.ColumnWidthMM/1000.0
	if min := aci.MinClearSpanRatio * in.SpanXM; ln < min {
		ln = min
	}

	divisor := thicknessDivisors[in.Position]

	return GeometrySet{
		EffectiveDepthMM: dMM,
		PerimeterCM:      bo,
		CriticalAreaCM2:  area,
		AlphaS:           alphaS,
		Beta:             beta,
		UnbalancedFactor: unbalancedFactors[in.Position],
		ClearSpanM:       ln,
		MinThicknessMM:   ln * 1000.0 / divisor,
		ThicknessDivisor: divisor,
	}, nil
}
