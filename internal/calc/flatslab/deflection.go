package flatslab

import (
	"math"

	"github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/aci"
)

// checkDeflection estimates the immediate deflection of the panel from an
// equivalent uniformly loaded simply supported strip:
//
//	δ = 5·w·L⁴ / (384·Ec·Is)
//
// with the factored line load on the full panel width and the gross slab
// inertia. The limit is span/240 unless the caller overrides the ratio.
func checkDeflection(loads LoadSet, in Input) DeflectionResult {
	ec := aci.Ec(in.FcKsc)                                  // ksc
	iSlab := in.SpanYM * 100.0 * math.Pow(in.ThicknessMM/10.0, 3) / 12.0 // cm⁴

	ratio := in.DeflectionLimitRatio
	if ratio <= 0 {
		ratio = aci.DeflectionLimitDivisor
	}
	limitMM := in.SpanXM * 1000.0 / ratio

	res := DeflectionResult{LimitMM: limitMM}
	if ec <= 0 || iSlab <= 0 {
		res.Indeterminate = true
		res.Safe = false
		res.Note = ErrIndeterminate.Error() + ": deflection denominator is zero or negative"
		return res
	}

	w := loads.FactoredKgM2 * in.SpanYM / 100.0 // line load, kg/m -> kg/cm
	l := in.SpanXM * 100.0                      // cm

	deflCM := 5.0 * w * math.Pow(l, 4) / (384.0 * ec * iSlab)
	res.DeflectionMM = deflCM * 10.0
	res.Ratio = res.DeflectionMM / limitMM
	res.Safe = res.Ratio <= 1.0
	return res
}
