package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "slabcheck",
	Short: "ACI 318 flat slab design check",
	Long: `slabcheck - flat slab (flat plate) design check per ACI 318

Checks one beamless slab panel supported on columns:
  - Factored loads (1.4D+1.7L or 1.2D+1.6L)
  - Punching shear at the column critical section
  - Moment distribution by Direct Design or Equivalent Frame Method
  - Reinforcement adequacy per design location
  - Immediate deflection against span/240

Units: spans and storey height in m, thickness/cover/bars/spacing in mm,
loads in kg/m², material strengths in ksc.`,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
