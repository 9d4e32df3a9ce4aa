package beam

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestSolveReferenceBeam(t *testing.T) {
	chk.PrintTitle("SolveReferenceBeam")

	// P=1000 N at midspan of a 3 m steel beam, 50x200 mm section
	p := newBeam(t, 50)

	prof, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if prof.Samples() != 50 {
		t.Fatalf("expected 50 samples, got %d", prof.Samples())
	}

	// σ = (P·Px·(L-Px)/L)·c/I = 750 N·m · 0.1 m / 3.333e-5 m⁴
	I := 0.05 * 0.008 / 12
	chk.Float64(t, "I", 1e-18, p.Inertia(), I)
	chk.Float64(t, "σ_max", 1e-6, prof.PeakStressPa, 750*0.1/I)
	chk.Float64(t, "σ_max fixture", 1e-3, prof.PeakStressPa, 2.25e6)

	// station 25 sits exactly at midspan: δ = -P·L³/(48·E·I)
	if prof.LoadSampleIndex != 25 {
		t.Errorf("expected LoadSampleIndex 25, got %d", prof.LoadSampleIndex)
	}
	chk.Float64(t, "δ(L/2)", 1e-15, prof.Deflections[25], -1000*27/(48*200e9*I))

	d, idx := prof.MaxDeflection()
	if idx != 25 {
		t.Errorf("expected max deflection at station 25, got %d", idx)
	}
	chk.Float64(t, "δ_max", 1e-15, d, prof.Deflections[25])

	if v := Evaluate(prof.PeakStressPa, p.Material()); v != Safe {
		t.Errorf("expected Safe, got %v", v)
	}
}

func TestSolveIsIdempotent(t *testing.T) {
	p := newBeam(t, 37)
	if _, err := p.SetLoadRatio(0.31); err != nil {
		t.Fatal(err)
	}

	first, err := Solve(p)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Solve(p)
	if err != nil {
		t.Fatal(err)
	}

	if first.LoadSampleIndex != second.LoadSampleIndex {
		t.Errorf("load index differs: %d vs %d", first.LoadSampleIndex, second.LoadSampleIndex)
	}
	if first.PeakStressPa != second.PeakStressPa {
		t.Errorf("peak stress differs: %v vs %v", first.PeakStressPa, second.PeakStressPa)
	}
	for i := range first.Deflections {
		if first.Deflections[i] != second.Deflections[i] {
			t.Errorf("deflection %d differs: %v vs %v", i, first.Deflections[i], second.Deflections[i])
		}
	}

	// each solve returns its own slice
	first.Deflections[0] = 42
	if second.Deflections[0] == 42 {
		t.Error("profiles share their deflection buffer")
	}
}

func TestBranchesContinuousAtLoad(t *testing.T) {
	cases := []struct{ P, Px, L, EI float64 }{
		{1000, 1.5, 3, 200e9 * 3.333e-5},
		{-250, 0.3, 2, 69e9 * 1e-6},
		{5e4, 7.9, 8, 12e9 * 4e-4},
		{1, 0, 1, 1},
		{1, 1, 1, 1},
	}
	for _, c := range cases {
		left := leftDeflection(c.P, c.Px, c.L, c.EI, c.Px)
		right := rightDeflection(c.P, c.Px, c.L, c.EI, c.Px)
		tol := 1e-12 * math.Max(1, math.Abs(left))
		chk.Float64(t, "continuity", tol, left, right)
	}
}

func TestSupportsHaveZeroDeflection(t *testing.T) {
	cases := []struct{ P, Px, L, EI float64 }{
		{1000, 1.5, 3, 200e9 * 3.333e-5},
		{-250, 0.3, 2, 69e9 * 1e-6},
		{5e4, 7.9, 8, 12e9 * 4e-4},
	}
	for _, c := range cases {
		chk.Float64(t, "δ(0)", 1e-15, leftDeflection(c.P, c.Px, c.L, c.EI, 0), 0)
		chk.Float64(t, "δ(L)", 1e-15, rightDeflection(c.P, c.Px, c.L, c.EI, c.L), 0)
	}

	p := newBeam(t, 20)
	prof, err := Solve(p)
	if err != nil {
		t.Fatal(err)
	}
	chk.Float64(t, "station 0", 1e-15, prof.Deflections[0], 0)
}

func TestSolveLoadAtSupports(t *testing.T) {
	p := newBeam(t, 10)

	for _, ratio := range []float64{0, 1} {
		if _, err := p.SetLoadRatio(ratio); err != nil {
			t.Fatal(err)
		}
		prof, err := Solve(p)
		if err != nil {
			t.Fatalf("Solve with load at ratio %g failed: %v", ratio, err)
		}
		chk.Float64(t, "σ_max", 0, prof.PeakStressPa, 0)
		for i, d := range prof.Deflections {
			if math.IsNaN(d) || math.Abs(d) > 1e-15 {
				t.Errorf("ratio %g: station %d deflection %g, expected 0", ratio, i, d)
			}
		}
	}

	// load at x=0: only station 0 is on the left branch
	if _, err := p.SetLoadRatio(0); err != nil {
		t.Fatal(err)
	}
	prof, _ := Solve(p)
	if prof.LoadSampleIndex != 0 {
		t.Errorf("expected LoadSampleIndex 0, got %d", prof.LoadSampleIndex)
	}

	// load at x=L: every station is left of or at the load
	if _, err := p.SetLoadRatio(1); err != nil {
		t.Fatal(err)
	}
	prof, _ = Solve(p)
	if prof.LoadSampleIndex != 9 {
		t.Errorf("expected LoadSampleIndex 9, got %d", prof.LoadSampleIndex)
	}
}

func TestLoadSampleIndexIsLastStationBeforeLoad(t *testing.T) {
	p := newBeam(t, 10) // stations every 0.3 m

	tests := []struct {
		px   float64
		want int
	}{
		{0.29, 0},
		{0.3, 1},
		{0.61, 2},
		{1.5, 5},
		{2.99, 9},
	}
	for _, tt := range tests {
		if _, err := p.SetLoadPosition(tt.px); err != nil {
			t.Fatal(err)
		}
		prof, err := Solve(p)
		if err != nil {
			t.Fatal(err)
		}
		if prof.LoadSampleIndex != tt.want {
			t.Errorf("Px=%g: expected index %d, got %d", tt.px, tt.want, prof.LoadSampleIndex)
		}
		if got := LoadSampleIndex(p.Length(), tt.px, p.Samples()); got != tt.want {
			t.Errorf("LoadSampleIndex(Px=%g) = %d, expected %d", tt.px, got, tt.want)
		}
	}
}

func TestSolveRejectsInvalidBeam(t *testing.T) {
	if _, err := Solve(&Parameters{samples: 1, length: 1, height: 1, base: 1}); !errors.Is(err, ErrInvalidSampleCount) {
		t.Errorf("expected ErrInvalidSampleCount, got %v", err)
	}

	p := newBeam(t, 10)
	broken := p.Clone()
	broken.length = 0
	prof, err := Solve(broken)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
	if prof != nil {
		t.Error("expected no profile on failure")
	}
}

func TestProfileHelpers(t *testing.T) {
	p := newBeam(t, 4)
	prof, err := Solve(p)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 0.75, 1.5, 2.25}
	for i, x := range prof.Stations() {
		chk.Float64(t, "station", 1e-15, x, want[i])
	}

	scaled := prof.Scaled(10)
	for i := range scaled {
		chk.Float64(t, "scaled", 1e-18, scaled[i], prof.Deflections[i]*10)
	}
	if &scaled[0] == &prof.Deflections[0] {
		t.Error("Scaled must not alias the profile")
	}
}
