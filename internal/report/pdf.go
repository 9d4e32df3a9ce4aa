package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// WritePDF renders a one page A4 report with inputs, results and the deflected shape
func WritePDF(d Data, w io.Writer) error {
	if d.Title == "" {
		d.Title = "Beam Deflection Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, d.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if d.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", d.Project))
		pdf.Ln(6)
	}
	if d.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", d.Author))
		pdf.Ln(6)
	}
	if !d.Date.IsZero() {
		pdf.Cell(0, 6, fmt.Sprintf("Date: %s", d.Date.Format("2006-01-02")))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	section(pdf, "INPUT DATA")
	row(pdf, "Span (L)", fmt.Sprintf("%.3f m", d.Length))
	row(pdf, "Section height (h)", fmt.Sprintf("%.3f m", d.Height))
	row(pdf, "Section base (b)", fmt.Sprintf("%.3f m", d.Base))
	row(pdf, "Moment of inertia (I)", fmt.Sprintf("%.4e m^4", d.Inertia))
	row(pdf, "Point load (P)", fmt.Sprintf("%.1f N", d.Load))
	row(pdf, "Load position (Px)", fmt.Sprintf("%.3f m", d.LoadPosition))
	row(pdf, "Material", d.Material)
	row(pdf, "Young's modulus (E)", fmt.Sprintf("%.1f GPa", d.Modulus/1e9))
	row(pdf, "Allowable stress", fmt.Sprintf("%.1f MPa", d.Allowable/1e6))
	pdf.Ln(4)

	maxD, at := d.MaxDeflection()
	section(pdf, "RESULTS")
	row(pdf, "Peak bending stress", fmt.Sprintf("%.3f MPa", d.PeakStress/1e6))
	row(pdf, "Utilization", fmt.Sprintf("%.1f %%", d.Utilization()*100))
	row(pdf, "Max sampled deflection", fmt.Sprintf("%.4f mm at x = %.3f m", maxD*1000, at))
	row(pdf, "Verdict", d.Verdict.String())
	pdf.Ln(6)

	section(pdf, "DEFLECTED SHAPE")
	drawCurve(pdf, d)

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

// drawCurve plots the deflection as a polyline in a 170x50 mm box below the cursor
func drawCurve(pdf *gofpdf.Fpdf, d Data) {
	const (
		left   = 20.0
		width  = 170.0
		height = 50.0
	)
	top := pdf.GetY()
	mid := top + height/2

	maxD, _ := d.MaxDeflection()
	scale := 0.0
	if maxD != 0 {
		scale = (height / 2) / abs(maxD)
	}
	x := func(v float64) float64 { return left + v/d.Length*width }
	y := func(v float64) float64 { return mid - v*scale }

	pdf.SetDrawColor(160, 160, 160)
	pdf.SetDashPattern([]float64{1, 1}, 0)
	pdf.Line(left, mid, left+width, mid)
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetDrawColor(0, 0, 139)
	if d.Verdict == beam.Overstressed {
		pdf.SetDrawColor(200, 0, 0)
	}
	pdf.SetLineWidth(0.5)
	for i := 1; i < len(d.Deflections); i++ {
		pdf.Line(x(d.Stations[i-1]), y(d.Deflections[i-1]), x(d.Stations[i]), y(d.Deflections[i]))
	}
	if n := len(d.Deflections); n > 0 {
		pdf.Line(x(d.Stations[n-1]), y(d.Deflections[n-1]), x(d.Length), y(0))
	}

	if i := d.LoadSampleIndex; i >= 0 && i < len(d.Deflections) {
		pdf.SetFillColor(255, 140, 0)
		pdf.Circle(x(d.Stations[i]), y(d.Deflections[i]), 1.5, "F")
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.SetY(top + height + 4)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
