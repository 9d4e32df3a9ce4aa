package report

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

func solved(t *testing.T, n int) Data {
	t.Helper()
	p, err := beam.New(n)
	if err != nil {
		t.Fatal(err)
	}
	prof, err := beam.Solve(p)
	if err != nil {
		t.Fatal(err)
	}
	return FromSolution(p, prof)
}

func TestFromSolution(t *testing.T) {
	chk.PrintTitle("FromSolution")
	d := solved(t, 50)

	if d.Material != "Steel" || d.Verdict != beam.Safe {
		t.Errorf("unexpected material/verdict: %s %s", d.Material, d.Verdict)
	}
	if len(d.Stations) != 50 || len(d.Deflections) != 50 {
		t.Fatalf("expected 50 samples, got %d/%d", len(d.Stations), len(d.Deflections))
	}
	chk.Float64(t, "sigma", 1e-6, d.PeakStress, 2.25e6)
	chk.Float64(t, "utilization", 1e-12, d.Utilization(), 2.25e6/440e6)

	maxD, at := d.MaxDeflection()
	if maxD >= 0 {
		t.Errorf("expected downward max deflection, got %g", maxD)
	}
	chk.Float64(t, "at", 1e-12, at, 1.5)
}

func TestUtilizationWithoutAllowable(t *testing.T) {
	if u := (Data{PeakStress: 1}).Utilization(); u != 0 {
		t.Errorf("expected 0, got %g", u)
	}
}

func TestWritePDF(t *testing.T) {
	d := solved(t, 20)
	d.Project = "Test bench"
	d.Author = "QA"

	var buf bytes.Buffer
	if err := WritePDF(d, &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestWritePDFOverstressed(t *testing.T) {
	d := solved(t, 20)
	d.Verdict = beam.Overstressed
	d.Title = ""

	var buf bytes.Buffer
	if err := WritePDF(d, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("empty output")
	}
}

func TestWriteXLSX(t *testing.T) {
	d := solved(t, 20)

	var buf bytes.Buffer
	if err := WriteXLSX(d, &buf); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); got != SummarySheet {
		t.Errorf("first sheet = %q, expected %q", got, SummarySheet)
	}

	summary, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatal(err)
	}
	last := summary[len(summary)-1]
	if last[0] != "Verdict" || last[1] != "Safe" {
		t.Errorf("unexpected verdict row %v", last)
	}

	rows, err := f.GetRows(ProfileSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 21 {
		t.Fatalf("expected header + 20 rows, got %d", len(rows))
	}
	if rows[0][0] != "Station" || rows[1][0] != "0" || rows[20][0] != "19" {
		t.Errorf("unexpected station column: %v %v %v", rows[0], rows[1], rows[20])
	}
}
