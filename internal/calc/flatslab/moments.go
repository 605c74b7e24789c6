package flatslab

import (
	"fmt"
	"math"
)

// DDM longitudinal distribution of the static moment Mo, keyed by the span
// continuity condition (ACI 318 Section 8.10.4, flat plate without edge
// beams). These are table lookups, not derived values.
type longitudinalCoef struct {
	Negative float64
	Positive float64
}

var ddmLongitudinal = map[Position]longitudinalCoef{
	// Interior span: 0.65 Mo negative, 0.35 Mo positive.
	PositionInterior: {Negative: 0.65, Positive: 0.35},
	// Exterior end span, slab without edge beams: the interior negative
	// 0.70 Mo governs the top steel, 0.52 Mo positive.
	PositionEdge:   {Negative: 0.70, Positive: 0.52},
	PositionCorner: {Negative: 0.70, Positive: 0.52},
}

// Column strip share of each longitudinal moment, keyed by sign
// (ACI 318 Sections 8.10.5.1 and 8.10.5.5). The middle strip takes the
// remainder, so the shares of each longitudinal moment sum to 1.0.
var columnStripShare = struct {
	Negative float64
	Positive float64
}{
	Negative: 0.75,
	Positive: 0.60,
}

// distributeMoments computes the total static moment and splits it into the
// four design locations. DDM uses the fixed code percentages; EFM runs a
// single-joint moment distribution with the slab distribution factor. Both
// paths emit the same MomentSet shape so verification stays method-agnostic.
func distributeMoments(loads LoadSet, in Input, g GeometrySet, st *StiffnessSet) (MomentSet, error) {
	qu := loads.FactoredKgM2
	ln := g.ClearSpanM

	mo := qu * in.SpanYM * ln * ln / 8.0 // kg·m

	var set MomentSet
	set.StaticKgM = mo

	switch in.Method {
	case MethodDDM:
		coef := ddmLongitudinal[in.Position]
		set.NegativeKgM = coef.Negative * mo
		set.PositiveKgM = coef.Positive * mo

	case MethodEFM:
		if st == nil {
			return MomentSet{}, fmt.Errorf("%w: equivalent frame method requires stiffness results", ErrInvalidInput)
		}
		l1 := in.SpanXM

		fem := qu * in.SpanYM * l1 * l1 / 12.0
		set.FEMKgM = fem

		// Adjacent-span contribution: an interior joint sees an equal
		// fixed-end moment from the far side, an exterior joint sees none.
		adjacent := 0.0
		if in.Position == PositionInterior {
			adjacent = fem
		}
		unbalanced := fem - adjacent
		correction := -(unbalanced * st.DistributionFactor)
		centerline := fem + correction

		// Reduce to the face of support over the half column width.
		shear := qu * in.SpanYM * l1 / 2.0 // kg
		face := centerline - shear*(in.ColumnWidthMM/1000.0)/2.0
		if face < 0 {
			face = 0
		}

		simple := qu * in.SpanYM * l1 * l1 / 8.0
		positive := simple - face
		if in.Position != PositionInterior {
			// Only one end of the span carries the full negative moment.
			positive = simple - face/2.0
		}

		set.NegativeKgM = face
		set.PositiveKgM = math.Max(positive, 0)

	default:
		return MomentSet{}, fmt.Errorf("%w: unrecognized design method %q", ErrInvalidInput, in.Method)
	}

	// Transverse split: column strip is half the shorter span, the middle
	// strip takes the rest of the panel width.
	csWidth := math.Min(in.SpanXM, in.SpanYM) / 2.0
	msWidth := in.SpanYM - csWidth

	csNeg := columnStripShare.Negative * set.NegativeKgM
	csPos := columnStripShare.Positive * set.PositiveKgM
	msNeg := set.NegativeKgM - csNeg
	msPos := set.PositiveKgM - csPos

	set.Locations = []LocationMoment{
		locationMoment(LocationColumnStripTop, csWidth, csNeg),
		locationMoment(LocationColumnStripBottom, csWidth, csPos),
		locationMoment(LocationMiddleStripTop, msWidth, msNeg),
		locationMoment(LocationMiddleStripBottom, msWidth, msPos),
	}
	return set, nil
}

func locationMoment(loc Location, widthM, totalKgM float64) LocationMoment {
	perMeter := 0.0
	if widthM > 0 {
		perMeter = totalKgM / widthM
	}
	return LocationMoment{
		Location:    loc,
		StripWidthM: widthM,
		TotalKgM:    totalKgM,
		PerMeterKgM: perMeter,
	}
}
