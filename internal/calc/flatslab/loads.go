package flatslab

import (
	"fmt"

	"github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/aci"
)

// deriveLoads computes self weight, total dead load and the factored area
// load for the panel. The load factor pair comes from the named combination;
// unset names fall back to the 1.4D + 1.7L pair.
func deriveLoads(in Input) (LoadSet, error) {
	if in.ThicknessMM <= 0 {
		return LoadSet{}, fmt.Errorf("%w: thickness %.1f mm", ErrInvalidInput, in.ThicknessMM)
	}
	if in.LiveKgM2 <= 0 {
		return LoadSet{}, fmt.Errorf("%w: live load %.1f kg/m²", ErrInvalidInput, in.LiveKgM2)
	}
	if in.SDLKgM2 < 0 {
		return LoadSet{}, fmt.Errorf("%w: superimposed dead load %.1f kg/m²", ErrInvalidInput, in.SDLKgM2)
	}

	self := in.ThicknessMM / 1000.0 * aci.ConcreteUnitWeight // kg/m²
	dead := self + in.SDLKgM2

	combo := aci.CombinationByName(in.Combination)
	return LoadSet{
		SelfWeightKgM2: self,
		DeadKgM2:       dead,
		LiveKgM2:       in.LiveKgM2,
		FactoredKgM2:   combo.Factored(dead, in.LiveKgM2),
		DeadFactor:     combo.Dead,
		LiveFactor:     combo.Live,
		Combination:    combo.Name,
	}, nil
}
