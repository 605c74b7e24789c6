package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	flatslab "github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/calc/flatslab"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string         `json:"project"`
	Author  string         `json:"author"`
	Title   string         `json:"title"`
	Panel   flatslab.Input `json:"panel"`
}

type Handler struct{}

// Generate runs the design check and renders a one-page PDF summary. The
// renderer only reads the report fields; all numbers come from the engine.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Flat Slab Design Check"
	}

	res, err := flatslab.Calculate(input.Panel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	line := func(format string, args ...interface{}) {
		pdf.Cell(0, 5, fmt.Sprintf(format, args...))
		pdf.Ln(5)
	}

	section("Loads")
	line("Self weight: %.0f kg/m2, Dead: %.0f kg/m2, Live: %.0f kg/m2",
		res.Loads.SelfWeightKgM2, res.Loads.DeadKgM2, res.Loads.LiveKgM2)
	line("Factored load (%s): %.0f kg/m2", res.Loads.Combination, res.Loads.FactoredKgM2)

	section("Punching shear")
	line("Demand: %.0f kg, Capacity: %.0f kg, Utilization: %.2f",
		res.Shear.DemandKg, res.Shear.CapacityKg, res.Shear.Utilization)

	section("Moments")
	line("Static moment Mo: %.0f kg-m (clear span %.2f m)", res.Moments.StaticKgM, res.Geometry.ClearSpanM)
	for _, lm := range res.Moments.Locations {
		line("%s: %.0f kg-m total, %.0f kg-m/m", lm.Location, lm.TotalKgM, lm.PerMeterKgM)
	}

	section("Reinforcement")
	for _, c := range res.Rebar {
		status := "SAFE"
		if !c.Safe {
			status = "FAIL"
		}
		line("%s: req %.2f, min %.2f, provided %.2f cm2/m @ %.0f mm - %s",
			c.Location, c.RequiredCM2, c.MinimumCM2, c.ProvidedCM2, c.SpacingMM, status)
	}

	section("Deflection")
	line("Deflection: %.2f mm, Limit: %.2f mm, Ratio: %.2f",
		res.Deflection.DeflectionMM, res.Deflection.LimitMM, res.Deflection.Ratio)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Overall status: %s", res.Status))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"flatslab-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
