package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	flatslab "github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/calc/flatslab"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type PanelImportResult struct {
	Count   int               `json:"count"`
	Skipped int               `json:"skipped"`
	Results []flatslab.Report `json:"results"`
}

// Panels imports an xlsx sheet with one panel per row and runs the design
// check on each. Rows that do not parse or fail validation are skipped.
func (h *Handler) Panels(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var out PanelImportResult
	for i := 1; i < len(rows); i++ {
		input, err := parsePanelRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := flatslab.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// expected columns: span_x_m, span_y_m, thickness_mm, storey_m, c1_mm, c2_mm,
// cover_mm, sdl, ll, fc, fy, position, method, bar_mm, spacing_mm
func parsePanelRow(row []string) (flatslab.Input, error) {
	if len(row) < 15 {
		return flatslab.Input{}, fmt.Errorf("bad row")
	}
	vals := make([]float64, 11)
	for i := 0; i < 11; i++ {
		v, err := toFloat(row[i])
		if err != nil {
			return flatslab.Input{}, err
		}
		vals[i] = v
	}
	bar, err := toFloat(row[13])
	if err != nil {
		return flatslab.Input{}, err
	}
	spacing, err := toFloat(row[14])
	if err != nil {
		return flatslab.Input{}, err
	}

	// The same bar and spacing applied at all four locations keeps the
	// sheet flat; per-location choices go through the JSON API instead.
	choice := flatslab.RebarChoice{BarDiameterMM: bar, SpacingMM: spacing}
	return flatslab.Input{
		SpanXM:        vals[0],
		SpanYM:        vals[1],
		ThicknessMM:   vals[2],
		StoreyHeightM: vals[3],
		ColumnWidthMM: vals[4],
		ColumnDepthMM: vals[5],
		CoverMM:       vals[6],
		SDLKgM2:       vals[7],
		LiveKgM2:      vals[8],
		FcKsc:         vals[9],
		FyKsc:         vals[10],
		Position:      flatslab.Position(row[11]),
		Method:        flatslab.Method(row[12]),
		Rebar: flatslab.RebarPlan{
			ColumnStripTop:    choice,
			ColumnStripBottom: choice,
			MiddleStripTop:    choice,
			MiddleStripBottom: choice,
		},
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
