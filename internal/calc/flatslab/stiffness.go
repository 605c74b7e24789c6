package flatslab

import (
	"math"

	"github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/aci"
)

// Torsion arm count by column position: a corner column has a single edge
// member framing into the joint, edge and interior columns have two.
var torsionArms = map[Position]int{
	PositionInterior: 2,
	PositionEdge:     2,
	PositionCorner:   1,
}

// analyzeFrameStiffness computes the equivalent-frame member stiffnesses and
// the distribution factor at the joint (EFM path only). All member stiffness
// arithmetic runs in kg and cm so the reciprocal combination of column and
// torsional stiffness stays dimensionally consistent.
func analyzeFrameStiffness(in Input) StiffnessSet {
	ec := aci.Ec(in.FcKsc) // ksc

	l1 := in.SpanXM * 100.0         // cm
	l2 := in.SpanYM * 100.0         // cm
	lc := in.StoreyHeightM * 100.0  // cm
	t := in.ThicknessMM / 10.0      // cm
	c1 := in.ColumnWidthMM / 10.0   // cm
	c2 := in.ColumnDepthMM / 10.0   // cm

	iSlab := l2 * math.Pow(t, 3) / 12.0   // cm⁴
	iCol := c2 * math.Pow(c1, 3) / 12.0   // cm⁴, bending about the transverse axis
	ks := 4.0 * ec * iSlab / l1           // kg·cm
	kc := 4.0 * ec * iCol / lc            // one column
	sumKc := 2.0 * kc                     // columns above and below the joint

	// Torsional member: the slab strip over the column, short side x, long
	// side y of the rectangular cross section.
	x := math.Min(t, c2)
	y := math.Max(t, c2)
	c := (1.0 - 0.63*x/y) * math.Pow(x, 3) * y / 3.0 // cm⁴

	arms := torsionArms[in.Position]
	ktArm := 9.0 * ec * c / (l2 * math.Pow(1.0-c2/l2, 3))
	sumKt := float64(arms) * ktArm

	set := StiffnessSet{
		SlabInertiaCM4:     iSlab,
		ColumnInertiaCM4:   iCol,
		SlabStiffness:      ks,
		ColumnStiffness:    sumKc,
		TorsionalConstant:  c,
		TorsionalStiffness: sumKt,
		TorsionArms:        arms,
	}

	if sumKt <= 0 || sumKc <= 0 {
		// 1/Kec = 1/ΣKc + 1/ΣKt has no solution; report the degenerate
		// case instead of falling back to the bare column stiffness.
		set.Degenerate = true
		set.Note = ErrDegenerate.Error() + ": torsional or column stiffness is zero, equivalent column stiffness undefined"
		return set
	}

	set.EquivalentColumn = 1.0 / (1.0/sumKc + 1.0/sumKt)

	// Slab members on both sides of an interior joint share the unbalance.
	if in.Position == PositionInterior {
		set.DistributionFactor = ks / (2.0*ks + set.EquivalentColumn)
	} else {
		set.DistributionFactor = ks / (ks + set.EquivalentColumn)
	}
	return set
}
