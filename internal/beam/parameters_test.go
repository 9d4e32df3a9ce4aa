package beam

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/materials"
	"github.com/cpmech/gosl/chk"
)

func newBeam(t *testing.T, n int) *Parameters {
	t.Helper()
	p, err := New(n)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", n, err)
	}
	return p
}

func TestNewDefaults(t *testing.T) {
	chk.PrintTitle("NewDefaults")

	p := newBeam(t, 50)

	chk.Float64(t, "L", 0, p.Length(), 3)
	chk.Float64(t, "h", 0, p.Height(), 0.2)
	chk.Float64(t, "b", 0, p.Base(), 0.05)
	chk.Float64(t, "P", 0, p.Load(), 1000)
	chk.Float64(t, "Px", 0, p.LoadPosition(), 1.5)
	chk.Float64(t, "I", 1e-18, p.Inertia(), 0.05*0.2*0.2*0.2/12)
	chk.Float64(t, "c", 0, p.HalfHeight(), 0.1)
	chk.Float64(t, "E", 0, p.YoungsModulus(), 200e9)

	if p.Material().Name != "Steel" {
		t.Errorf("expected Steel, got %q", p.Material().Name)
	}
	if p.Samples() != 50 {
		t.Errorf("expected 50 samples, got %d", p.Samples())
	}
}

func TestNewInvalidSampleCount(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		p, err := New(n)
		if !errors.Is(err, ErrInvalidSampleCount) {
			t.Errorf("New(%d): expected ErrInvalidSampleCount, got %v", n, err)
		}
		if p != nil {
			t.Errorf("New(%d): expected nil parameters", n)
		}
	}
	if _, err := New(2); err != nil {
		t.Errorf("New(2) should succeed, got %v", err)
	}
}

func TestSectionRecomputed(t *testing.T) {
	p := newBeam(t, 10)

	if err := p.SetHeight(0.3); err != nil {
		t.Fatalf("SetHeight failed: %v", err)
	}
	chk.Float64(t, "I after h", 1e-18, p.Inertia(), 0.05*0.027/12)
	chk.Float64(t, "c after h", 1e-17, p.HalfHeight(), 0.15)

	if err := p.SetBase(0.1); err != nil {
		t.Fatalf("SetBase failed: %v", err)
	}
	chk.Float64(t, "I after b", 1e-18, p.Inertia(), 0.1*0.027/12)
	chk.Float64(t, "S", 1e-18, p.SectionModulus(), p.Inertia()/0.15)
}

func TestSetGeometryRejectsNonPositive(t *testing.T) {
	p := newBeam(t, 10)

	setters := map[string]func(float64) error{
		"length": p.SetLength,
		"height": p.SetHeight,
		"base":   p.SetBase,
	}
	bad := []float64{0, -1, math.NaN(), math.Inf(1)}

	for name, set := range setters {
		for _, v := range bad {
			if err := set(v); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("%s(%g): expected ErrInvalidParameter, got %v", name, v, err)
			}
		}
	}

	// state unchanged
	chk.Float64(t, "L", 0, p.Length(), DefaultLength)
	chk.Float64(t, "h", 0, p.Height(), DefaultHeight)
	chk.Float64(t, "b", 0, p.Base(), DefaultBase)
}

func TestSetLoadAcceptsAnySign(t *testing.T) {
	p := newBeam(t, 10)

	for _, v := range []float64{-500, 0, 2500} {
		if err := p.SetLoad(v); err != nil {
			t.Errorf("SetLoad(%g) failed: %v", v, err)
		}
		chk.Float64(t, "P", 0, p.Load(), v)
	}
	if err := p.SetLoad(math.NaN()); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for NaN load, got %v", err)
	}
	chk.Float64(t, "P unchanged", 0, p.Load(), 2500)
}

func TestSetLoadPositionClamps(t *testing.T) {
	p := newBeam(t, 10)

	tests := []struct {
		px      float64
		want    float64
		clamped bool
	}{
		{1.0, 1.0, false},
		{0, 0, false},
		{3, 3, false},
		{-0.5, 0, true},
		{4.2, 3, true},
	}
	for _, tt := range tests {
		clamped, err := p.SetLoadPosition(tt.px)
		if err != nil {
			t.Fatalf("SetLoadPosition(%g) failed: %v", tt.px, err)
		}
		if clamped != tt.clamped {
			t.Errorf("SetLoadPosition(%g): expected clamped=%v, got %v", tt.px, tt.clamped, clamped)
		}
		chk.Float64(t, "Px", 0, p.LoadPosition(), tt.want)
	}

	if _, err := p.SetLoadPosition(math.NaN()); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for NaN position, got %v", err)
	}
}

func TestSetLoadRatioClamps(t *testing.T) {
	p := newBeam(t, 10)

	tests := []struct {
		ratio   float64
		want    float64
		clamped bool
	}{
		{0.25, 0.75, false},
		{-0.3, 0, true},
		{1.7, 3, true},
		{1, 3, false},
	}
	for _, tt := range tests {
		clamped, err := p.SetLoadRatio(tt.ratio)
		if err != nil {
			t.Fatalf("SetLoadRatio(%g) failed: %v", tt.ratio, err)
		}
		if clamped != tt.clamped {
			t.Errorf("SetLoadRatio(%g): expected clamped=%v, got %v", tt.ratio, tt.clamped, clamped)
		}
		chk.Float64(t, "Px", 1e-15, p.LoadPosition(), tt.want)
		if p.LoadPosition() < 0 || p.LoadPosition() > p.Length() {
			t.Errorf("Px=%g outside [0, %g]", p.LoadPosition(), p.Length())
		}
	}
}

func TestSetLengthKeepsLoadRatio(t *testing.T) {
	p := newBeam(t, 10)
	if _, err := p.SetLoadRatio(0.25); err != nil {
		t.Fatal(err)
	}
	if err := p.SetLength(4); err != nil {
		t.Fatalf("SetLength failed: %v", err)
	}
	chk.Float64(t, "Px", 1e-15, p.LoadPosition(), 1.0)
	chk.Float64(t, "ratio", 1e-15, p.LoadRatio(), 0.25)
}

func TestSetMaterial(t *testing.T) {
	p := newBeam(t, 10)

	if err := p.SetMaterial("Wood"); err != nil {
		t.Fatalf("SetMaterial(Wood) failed: %v", err)
	}
	chk.Float64(t, "E wood", 0, p.YoungsModulus(), 12e9)

	err := p.SetMaterial("Unknown")
	if !errors.Is(err, materials.ErrUnknownMaterial) {
		t.Errorf("expected ErrUnknownMaterial, got %v", err)
	}
	if p.Material().Name != "Wood" {
		t.Errorf("material changed after failed lookup: %q", p.Material().Name)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := newBeam(t, 10)
	c := p.Clone()

	if err := c.SetHeight(0.5); err != nil {
		t.Fatal(err)
	}
	if err := c.SetMaterial("Zinc"); err != nil {
		t.Fatal(err)
	}
	chk.Float64(t, "original h", 0, p.Height(), DefaultHeight)
	if p.Material().Name != "Steel" {
		t.Errorf("clone mutated original material: %q", p.Material().Name)
	}
}
