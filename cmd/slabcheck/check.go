package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	flatslab "github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/calc/flatslab"
)

var (
	checkSpanX     float64
	checkSpanY     float64
	checkThickness float64
	checkStorey    float64
	checkC1        float64
	checkC2        float64
	checkCover     float64
	checkSDL       float64
	checkLive      float64
	checkFc        float64
	checkFy        float64
	checkPosition  string
	checkMethod    string
	checkCombo     string
	checkBar       float64
	checkSpacing   float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the design check for one panel",
	Long: `Run the full flat slab design check for one panel and print the
report. The same bar and spacing are applied at all four design locations;
use the HTTP API for per-location reinforcement.

Examples:
  # Interior panel, 6x6 m, 200 mm slab, DDM
  slabcheck check --span-x 6 --span-y 6 --thickness 200 --c1 400 --c2 400 \
    --cover 25 --sdl 100 --live 300 --fc 240 --fy 4000 \
    --position interior --method ddm --bar 12 --spacing 150

  # Edge panel by the equivalent frame method
  slabcheck check --span-x 6 --span-y 6 --thickness 200 --storey 3 \
    --c1 400 --c2 400 --cover 25 --sdl 100 --live 300 --fc 240 --fy 4000 \
    --position edge --method efm --bar 12 --spacing 150`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Float64Var(&checkSpanX, "span-x", 0, "Span in the direction of analysis L1 (m) [required]")
	checkCmd.Flags().Float64Var(&checkSpanY, "span-y", 0, "Transverse span L2 (m) [required]")
	checkCmd.Flags().Float64VarP(&checkThickness, "thickness", "t", 0, "Slab thickness (mm) [required]")
	checkCmd.Flags().Float64Var(&checkStorey, "storey", 3.0, "Storey height (m), used by EFM")
	checkCmd.Flags().Float64Var(&checkC1, "c1", 0, "Column width parallel to L1 (mm) [required]")
	checkCmd.Flags().Float64Var(&checkC2, "c2", 0, "Column depth parallel to L2 (mm) [required]")
	checkCmd.Flags().Float64VarP(&checkCover, "cover", "c", 25, "Concrete cover (mm)")
	checkCmd.Flags().Float64Var(&checkSDL, "sdl", 0, "Superimposed dead load (kg/m²)")
	checkCmd.Flags().Float64Var(&checkLive, "live", 0, "Live load (kg/m²) [required]")
	checkCmd.Flags().Float64Var(&checkFc, "fc", 240, "Concrete strength f'c (ksc)")
	checkCmd.Flags().Float64Var(&checkFy, "fy", 4000, "Steel yield strength fy (ksc)")
	checkCmd.Flags().StringVar(&checkPosition, "position", "interior", "Column position: interior, edge, corner")
	checkCmd.Flags().StringVar(&checkMethod, "method", "ddm", "Design method: ddm or efm")
	checkCmd.Flags().StringVar(&checkCombo, "combination", "", "Load factor pair: ACI318-99 (1.4/1.7) or ACI318-14 (1.2/1.6)")
	checkCmd.Flags().Float64Var(&checkBar, "bar", 12, "Bar diameter (mm)")
	checkCmd.Flags().Float64VarP(&checkSpacing, "spacing", "s", 0, "Bar spacing (mm) [required]")

	checkCmd.MarkFlagRequired("span-x")
	checkCmd.MarkFlagRequired("span-y")
	checkCmd.MarkFlagRequired("thickness")
	checkCmd.MarkFlagRequired("c1")
	checkCmd.MarkFlagRequired("c2")
	checkCmd.MarkFlagRequired("live")
	checkCmd.MarkFlagRequired("spacing")
}

func runCheck(cmd *cobra.Command, args []string) {
	choice := flatslab.RebarChoice{BarDiameterMM: checkBar, SpacingMM: checkSpacing}
	in := flatslab.Input{
		SpanXM:        checkSpanX,
		SpanYM:        checkSpanY,
		ThicknessMM:   checkThickness,
		StoreyHeightM: checkStorey,
		ColumnWidthMM: checkC1,
		ColumnDepthMM: checkC2,
		CoverMM:       checkCover,
		SDLKgM2:       checkSDL,
		LiveKgM2:      checkLive,
		FcKsc:         checkFc,
		FyKsc:         checkFy,
		Position:      flatslab.Position(checkPosition),
		Method:        flatslab.Method(checkMethod),
		Combination:   checkCombo,
		Rebar: flatslab.RebarPlan{
			ColumnStripTop:    choice,
			ColumnStripBottom: choice,
			MiddleStripTop:    choice,
			MiddleStripBottom: choice,
		},
	}

	res, err := flatslab.Calculate(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FLAT SLAB DESIGN CHECK - ACI 318")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Self weight:\t%.0f kg/m²\n", res.Loads.SelfWeightKgM2)
	fmt.Fprintf(w, "  Dead load:\t%.0f kg/m²\n", res.Loads.DeadKgM2)
	fmt.Fprintf(w, "  Live load:\t%.0f kg/m²\n", res.Loads.LiveKgM2)
	fmt.Fprintf(w, "  Factored load (%s):\t%.0f kg/m²\n", res.Loads.Combination, res.Loads.FactoredKgM2)
	w.Flush()
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Effective depth (d):\t%.1f mm\n", res.Geometry.EffectiveDepthMM)
	fmt.Fprintf(w, "  Critical perimeter (bo):\t%.1f cm\n", res.Geometry.PerimeterCM)
	fmt.Fprintf(w, "  Clear span (ln):\t%.2f m\n", res.Geometry.ClearSpanM)
	fmt.Fprintf(w, "  Minimum thickness (ln/%.0f):\t%.0f mm\n", res.Geometry.ThicknessDivisor, res.Geometry.MinThicknessMM)
	w.Flush()
	fmt.Println()

	fmt.Println("PUNCHING SHEAR:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Demand (Vu):\t%.0f kg\n", res.Shear.DemandKg)
	fmt.Fprintf(w, "  Governing stress:\t%.2f ksc\n", res.Shear.StressKsc)
	fmt.Fprintf(w, "  Capacity (φVc):\t%.0f kg\n", res.Shear.CapacityKg)
	fmt.Fprintf(w, "  Utilization:\t%.2f\n", res.Shear.Utilization)
	fmt.Fprintf(w, "  Status:\t%s\n", passFail(res.Shear.Safe))
	w.Flush()
	fmt.Println()

	if res.Stiffness != nil {
		fmt.Println("EQUIVALENT FRAME:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Slab stiffness (Ks):\t%.3e kg·cm\n", res.Stiffness.SlabStiffness)
		fmt.Fprintf(w, "  Column stiffness (ΣKc):\t%.3e kg·cm\n", res.Stiffness.ColumnStiffness)
		fmt.Fprintf(w, "  Torsional stiffness (ΣKt):\t%.3e kg·cm\n", res.Stiffness.TorsionalStiffness)
		fmt.Fprintf(w, "  Equivalent column (Kec):\t%.3e kg·cm\n", res.Stiffness.EquivalentColumn)
		fmt.Fprintf(w, "  Distribution factor:\t%.3f\n", res.Stiffness.DistributionFactor)
		w.Flush()
		fmt.Println()
	}

	fmt.Println("DESIGN MOMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Static moment (Mo):\t%.0f kg·m\n", res.Moments.StaticKgM)
	for _, lm := range res.Moments.Locations {
		fmt.Fprintf(w, "  %s:\t%.0f kg·m\t(%.0f kg·m/m)\n", lm.Location, lm.TotalKgM, lm.PerMeterKgM)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("REINFORCEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range res.Rebar {
		fmt.Fprintf(w, "  %s:\treq %.2f\tmin %.2f\tprov %.2f cm²/m\t%s\n",
			c.Location, c.RequiredCM2, c.MinimumCM2, c.ProvidedCM2, passFail(c.Safe))
	}
	w.Flush()
	fmt.Println()

	fmt.Println("DEFLECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Immediate deflection:\t%.2f mm\n", res.Deflection.DeflectionMM)
	fmt.Fprintf(w, "  Limit:\t%.2f mm\n", res.Deflection.LimitMM)
	fmt.Fprintf(w, "  Status:\t%s\n", passFail(res.Deflection.Safe))
	w.Flush()
	fmt.Println()

	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("  OVERALL: %s\n", res.Status)
	fmt.Println("═══════════════════════════════════════════════════════════════")
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
