package report

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	ProfileSheet = "Profile"
)

// WriteXLSX writes a workbook with a Summary sheet of inputs and results
// and a Profile sheet of (station, x, deflection) rows
func WriteXLSX(d Data, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}

	maxD, at := d.MaxDeflection()
	summary := [][]interface{}{
		{"Quantity", "Value", "Unit"},
		{"Span (L)", d.Length, "m"},
		{"Section height (h)", d.Height, "m"},
		{"Section base (b)", d.Base, "m"},
		{"Moment of inertia (I)", d.Inertia, "m^4"},
		{"Point load (P)", d.Load, "N"},
		{"Load position (Px)", d.LoadPosition, "m"},
		{"Material", d.Material, ""},
		{"Young's modulus (E)", d.Modulus, "Pa"},
		{"Allowable stress", d.Allowable, "Pa"},
		{"Peak bending stress", d.PeakStress, "Pa"},
		{"Utilization", d.Utilization(), ""},
		{"Max sampled deflection", maxD, "m"},
		{"At x", at, "m"},
		{"Load station", d.LoadSampleIndex, ""},
		{"Verdict", d.Verdict.String(), ""},
	}
	for r, values := range summary {
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SummarySheet, cell, v); err != nil {
				return err
			}
		}
	}

	if _, err := f.NewSheet(ProfileSheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(ProfileSheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", []interface{}{"Station", "x (m)", "Deflection (m)"}); err != nil {
		return err
	}
	for i, v := range d.Deflections {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, []interface{}{i, d.Stations[i], v}); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	return f.Write(w)
}
