package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Beam inputs
	solveLength   float64
	solveHeight   float64
	solveBase     float64
	solveLoad     float64
	solvePosition float64
	solveMaterial string
	solveSamples  int

	// Output options
	solveASCII bool
	solvePlot  string
	solvePDF   string
	solveXLSX  string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a simply supported beam under a point load",
	Long: `Compute the deflection of a simply supported rectangular beam under a
single point load, sampled at n stations x_i = i·L/n, and check the peak
bending stress σ_max = M·c/I against the allowable stress of the material.

Inputs not given as flags come from the configuration (--config, .env,
GOBEAM_* environment variables), which defaults to a 3 m steel beam of
50 x 200 mm carrying 1000 N at midspan.

Examples:
  # Solve the default beam
  gobeam solve

  # A 4 m aluminum beam with the load 1 m from the left support
  gobeam solve --length 4 --position 1 --material Aluminum --ascii

  # Export a plot, a PDF report and an XLSX workbook
  gobeam solve --load 25000 --plot out/beam.png --pdf out/beam.pdf --xlsx out/beam.xlsx`,
	Run: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	// Geometry flags
	solveCmd.Flags().Float64VarP(&solveLength, "length", "L", 0, "Span between supports (m)")
	solveCmd.Flags().Float64Var(&solveHeight, "height", 0, "Section height h (m)")
	solveCmd.Flags().Float64VarP(&solveBase, "base", "b", 0, "Section base b (m)")

	// Loading flags
	solveCmd.Flags().Float64VarP(&solveLoad, "load", "P", 0, "Point load P (N), positive downward")
	solveCmd.Flags().Float64Var(&solvePosition, "position", 0, "Load position Px from the left support (m), clamped to [0, L]")

	// Material and sampling
	solveCmd.Flags().StringVarP(&solveMaterial, "material", "m", "", "Material name (see 'gobeam materials')")
	solveCmd.Flags().IntVarP(&solveSamples, "samples", "n", 0, "Number of sample stations (n >= 2)")

	// Output flags
	solveCmd.Flags().BoolVar(&solveASCII, "ascii", false, "Draw the deflected shape as an ASCII chart")
	solveCmd.Flags().StringVar(&solvePlot, "plot", "", "Export the deflected shape to an image (.png, .svg, .pdf)")
	solveCmd.Flags().StringVar(&solvePDF, "pdf", "", "Write a PDF report")
	solveCmd.Flags().StringVar(&solveXLSX, "xlsx", "", "Write an XLSX workbook")
}

func runSolve(cmd *cobra.Command, args []string) {
	if err := solve(cmd, cmd.OutOrStdout()); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
	}
}

func solve(cmd *cobra.Command, out io.Writer) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	applySolveFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := cfg.NewBeam()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("position") {
		clamped, err := p.SetLoadPosition(solvePosition)
		if err != nil {
			return err
		}
		if clamped {
			fmt.Fprintf(out, "  ⚠ Load position %.3f m clamped to %.3f m\n", solvePosition, p.LoadPosition())
		}
	}

	prof, err := beam.Solve(p)
	if err != nil {
		return err
	}
	m := p.Material()
	verdict := beam.Evaluate(prof.PeakStressPa, m)
	logger.Debug("solved", "length", p.Length(), "load", p.Load(), "px", p.LoadPosition(),
		"material", m.Name, "sigma_max", prof.PeakStressPa, "verdict", verdict)

	printSolution(out, p, prof, verdict)

	data := diagram.ProfileDiagramData{
		Length:          p.Length(),
		Height:          p.Height(),
		Base:            p.Base(),
		Load:            p.Load(),
		LoadPosition:    p.LoadPosition(),
		Material:        m.Name,
		Stations:        prof.Stations(),
		Deflections:     prof.Deflections,
		LoadSampleIndex: prof.LoadSampleIndex,
		PeakStress:      prof.PeakStressPa,
		AllowableStress: m.AllowableStressPa,
		Overstressed:    verdict == beam.Overstressed,
	}
	if solveASCII {
		fmt.Fprint(out, diagram.DrawASCIIBeam(data, 50))
		fmt.Fprint(out, diagram.DrawASCIIProfile(data, 10, 60))
		fmt.Fprintln(out)
	}
	if solvePlot != "" {
		if err := diagram.ExportProfileDiagram(data, solvePlot); err != nil {
			return fmt.Errorf("exporting plot: %w", err)
		}
		fmt.Fprintf(out, "  Plot written to %s\n", solvePlot)
	}

	rep := report.FromSolution(p, prof)
	if solvePDF != "" {
		if err := writeFile(solvePDF, func(w io.Writer) error { return report.WritePDF(rep, w) }); err != nil {
			return fmt.Errorf("writing PDF report: %w", err)
		}
		fmt.Fprintf(out, "  PDF report written to %s\n", solvePDF)
	}
	if solveXLSX != "" {
		if err := writeFile(solveXLSX, func(w io.Writer) error { return report.WriteXLSX(rep, w) }); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		fmt.Fprintf(out, "  Workbook written to %s\n", solveXLSX)
	}
	return nil
}

// applySolveFlags copies explicitly set flags over the configured beam
func applySolveFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("length") {
		cfg.Beam.Length = solveLength
	}
	if f.Changed("height") {
		cfg.Beam.Height = solveHeight
	}
	if f.Changed("base") {
		cfg.Beam.Base = solveBase
	}
	if f.Changed("load") {
		cfg.Beam.Load = solveLoad
	}
	if f.Changed("material") {
		cfg.Beam.Material = solveMaterial
	}
	if f.Changed("samples") {
		cfg.Beam.Samples = solveSamples
	}
}

func printSolution(out io.Writer, p *beam.Parameters, prof *beam.Profile, verdict beam.Verdict) {
	m := p.Material()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     SIMPLY SUPPORTED BEAM - POINT LOAD")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.3f m\n", p.Length())
	fmt.Fprintf(w, "  Section (b x h):\t%.3f x %.3f m\n", p.Base(), p.Height())
	fmt.Fprintf(w, "  Point load (P):\t%.1f N\n", p.Load())
	fmt.Fprintf(w, "  Load position (Px):\t%.3f m  (%.1f %% of L)\n", p.LoadPosition(), p.LoadRatio()*100)
	fmt.Fprintf(w, "  Material:\t%s\n", m.Name)
	fmt.Fprintf(w, "  Samples (n):\t%d\n", p.Samples())
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SECTION PROPERTIES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.4e m⁴\n", p.Inertia())
	fmt.Fprintf(w, "  Extreme fiber distance (c):\t%.4f m\n", p.HalfHeight())
	fmt.Fprintf(w, "  Section modulus (S):\t%.4e m³\n", p.SectionModulus())
	fmt.Fprintf(w, "  Young's modulus (E):\t%.1f GPa\n", m.YoungsModulusPa/1e9)
	w.Flush()
	fmt.Fprintln(out)

	maxD, idx := prof.MaxDeflection()
	fmt.Fprintln(out, "RESULTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load station:\t%d of %d  (x = %.3f m)\n", prof.LoadSampleIndex, prof.Samples(), prof.Station(prof.LoadSampleIndex))
	fmt.Fprintf(w, "  Max sampled deflection:\t%.4f mm at x = %.3f m\n", maxD*1000, prof.Station(idx))
	fmt.Fprintf(w, "  Peak bending stress (σ_max):\t%.3f MPa\n", prof.PeakStressPa/1e6)
	fmt.Fprintf(w, "  Allowable stress:\t%.1f MPa\n", m.AllowableStressPa/1e6)
	fmt.Fprintf(w, "  Utilization:\t%.1f %%\n", beam.UtilizationRatio(prof.PeakStressPa, m)*100)
	w.Flush()
	fmt.Fprintln(out)

	status := "✓ Safe"
	if verdict == beam.Overstressed {
		status = "✗ Overstressed"
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("STRESS CHECK", []string{
		fmt.Sprintf("σ_max = %.3f MPa  (allow %.1f MPa)", prof.PeakStressPa/1e6, m.AllowableStressPa/1e6),
		status,
	}))
	fmt.Fprintln(out)
}

// writeFile creates path and streams fn's output into it
func writeFile(path string, fn func(w io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
