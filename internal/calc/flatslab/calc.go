package flatslab

import "fmt"

// Calculate runs the full design check for one panel and returns the
// aggregated report. Configuration errors (non-positive dimensions, unknown
// position or method) are returned as errors wrapping ErrInvalidInput;
// degenerate computed quantities are flagged inside the affected sub-result
// so the caller still receives a complete report.
func Calculate(in Input) (Report, error) {
	if err := validate(in); err != nil {
		return Report{}, err
	}

	geometry, err := resolveGeometry(in)
	if err != nil {
		return Report{}, err
	}
	loads, err := deriveLoads(in)
	if err != nil {
		return Report{}, err
	}

	var stiffness *StiffnessSet
	if in.Method == MethodEFM {
		st := analyzeFrameStiffness(in)
		stiffness = &st
	}

	moments, err := distributeMoments(loads, in, geometry, stiffness)
	if err != nil {
		return Report{}, err
	}

	shear := analyzePunchingShear(loads, in, geometry)
	rebar := verifyReinforcement(in, geometry, moments)
	deflection := checkDeflection(loads, in)

	safe := shear.Safe && deflection.Safe
	for _, c := range rebar {
		safe = safe && c.Safe
	}

	status := "SAFE"
	if !safe {
		status = "UNSAFE"
	}

	return Report{
		Position:   in.Position,
		Method:     in.Method,
		Loads:      loads,
		Geometry:   geometry,
		Stiffness:  stiffness,
		Moments:    moments,
		Rebar:      rebar,
		Shear:      shear,
		Deflection: deflection,
		Safe:       safe,
		Status:     status,
		Notes:      "ACI 318 flat plate design check (punching shear, flexure, deflection).",
	}, nil
}

func validate(in Input) error {
	switch {
	case in.SpanXM <= 0 || in.SpanYM <= 0:
		return fmt.Errorf("%w: spans %.2f x %.2f m", ErrInvalidInput, in.SpanXM, in.SpanYM)
	case in.ThicknessMM <= 0:
		return fmt.Errorf("%w: thickness %.1f mm", ErrInvalidInput, in.ThicknessMM)
	case in.ColumnWidthMM <= 0 || in.ColumnDepthMM <= 0:
		return fmt.Errorf("%w: column section %.0f x %.0f mm", ErrInvalidInput, in.ColumnWidthMM, in.ColumnDepthMM)
	case in.CoverMM <= 0:
		return fmt.Errorf("%w: cover %.1f mm", ErrInvalidInput, in.CoverMM)
	case in.FcKsc <= 0 || in.FyKsc <= 0:
		return fmt.Errorf("%w: material strengths f'c=%.0f fy=%.0f ksc", ErrInvalidInput, in.FcKsc, in.FyKsc)
	case !in.Position.Valid():
		return fmt.Errorf("%w: unrecognized column position %q", ErrInvalidInput, in.Position)
	case !in.Method.Valid():
		return fmt.Errorf("%w: unrecognized design method %q", ErrInvalidInput, in.Method)
	case in.Method == MethodEFM && in.StoreyHeightM <= 0:
		return fmt.Errorf("%w: storey height %.2f m required for the equivalent frame method", ErrInvalidInput, in.StoreyHeightM)
	}
	return nil
}
