package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportProfileDiagram exports the undeformed and deflected beam to an image file.
// The format follows the extension (.png, .svg, .pdf); other names get ".png" appended.
func ExportProfileDiagram(data ProfileDiagramData, filename string) error {
	if len(data.Deflections) == 0 || len(data.Stations) != len(data.Deflections) {
		return fmt.Errorf("profile has %d stations and %d deflections", len(data.Stations), len(data.Deflections))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Deflection - %s beam, P = %.1f N", data.Material, data.Load)
	p.X.Label.Text = "Position x (m)"
	p.Y.Label.Text = "Deflection δ (mm)"

	// Undeformed axis between the supports
	axis, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Length, Y: 0},
	})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Gray{Y: 128}
	axis.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(axis)

	// Deflected shape, closed at the right support
	pts := make(plotter.XYs, len(data.Deflections)+1)
	for i, d := range data.Deflections {
		pts[i] = plotter.XY{X: data.Stations[i], Y: d * 1000}
	}
	pts[len(data.Deflections)] = plotter.XY{X: data.Length, Y: 0}

	curve, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	if data.Overstressed {
		curve.LineStyle.Color = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	}
	p.Add(curve)

	// Supports
	supports, err := plotter.NewScatter(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Length, Y: 0},
	})
	if err != nil {
		return err
	}
	supports.GlyphStyle.Color = color.Black
	supports.GlyphStyle.Radius = vg.Points(6)
	supports.GlyphStyle.Shape = draw.TriangleGlyph{}
	p.Add(supports)

	// Load marker at the load station
	idx := data.LoadSampleIndex
	if idx < 0 || idx >= len(data.Deflections) {
		idx = 0
	}
	loadPt := plotter.XYs{{X: data.Stations[idx], Y: data.Deflections[idx] * 1000}}
	load, err := plotter.NewScatter(loadPt)
	if err != nil {
		return err
	}
	load.GlyphStyle.Color = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	load.GlyphStyle.Radius = vg.Points(5)
	load.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(load)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{loadPt[0]},
		Labels: []string{fmt.Sprintf("P=%.0fN  σ=%.2fMPa",
			data.Load, data.PeakStress/1e6)},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	width := 8 * vg.Inch
	height := 4 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
