package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/materials"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the built-in material catalog",
	Long: `List every material the simulator knows with its allowable stress
and Young's modulus. Names are case-sensitive when passed to --material.

Examples:
  gobeam materials
  gobeam solve --material Aluminum`,
	Run: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     MATERIAL CATALOG")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Name\tσ_allow (MPa)\tE (GPa)\tDescription")
	fmt.Fprintln(w, "  ────\t─────────────\t───────\t───────────")
	for _, m := range materials.All() {
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%s\n",
			m.Name, m.AllowableStressPa/materials.MPa, m.YoungsModulusPa/materials.GPa, materials.Description(m.Name))
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Default: %s\n", materials.Default)
	fmt.Fprintln(out)
}
