package beam

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/materials"
)

var (
	// ErrInvalidParameter is returned for non-positive geometry or non-finite values
	ErrInvalidParameter = errors.New("invalid beam parameter")

	// ErrInvalidSampleCount is returned when fewer than two sample points are requested
	ErrInvalidSampleCount = errors.New("invalid sample count")
)

// Default beam values
const (
	DefaultLength    = 3.0    // m
	DefaultHeight    = 0.2    // m
	DefaultBase      = 0.05   // m
	DefaultLoad      = 1000.0 // N
	DefaultLoadRatio = 0.5    // load at midspan
)

// Parameters represents a simply supported rectangular beam carrying one point load
type Parameters struct {
	// Geometry (m)
	length float64 // L - span between supports
	height float64 // h - section depth
	base   float64 // b - section width

	// Loading
	load         float64 // P - point load (N)
	loadPosition float64 // Px - distance from the left support (m)

	material materials.Properties

	// Derived section properties
	inertia    float64 // I = b·h³/12 (m⁴)
	halfHeight float64 // c = h/2 (m)

	samples int // n - number of sample stations, fixed at construction
}

// New creates a beam with default geometry, load and material sampled at n stations
func New(n int) (*Parameters, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d (need at least 2)", ErrInvalidSampleCount, n)
	}
	steel, err := materials.Lookup(materials.Default)
	if err != nil {
		return nil, err
	}
	p := &Parameters{
		length:       DefaultLength,
		height:       DefaultHeight,
		base:         DefaultBase,
		load:         DefaultLoad,
		loadPosition: DefaultLoadRatio * DefaultLength,
		material:     steel,
		samples:      n,
	}
	p.updateSection()
	return p, nil
}

// Clone returns an independent copy of the parameters
func (p *Parameters) Clone() *Parameters {
	c := *p
	return &c
}

func (p *Parameters) updateSection() {
	p.inertia = p.base * math.Pow(p.height, 3) / 12
	p.halfHeight = p.height / 2
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s=%g must be positive", ErrInvalidParameter, name, v)
	}
	return nil
}

// SetLength changes the span. The load keeps its fractional position along the beam.
func (p *Parameters) SetLength(v float64) error {
	if err := positive("length", v); err != nil {
		return err
	}
	ratio := p.LoadRatio()
	p.length = v
	p.loadPosition = ratio * v
	return nil
}

// SetHeight changes the section depth and recomputes I and c
func (p *Parameters) SetHeight(v float64) error {
	if err := positive("height", v); err != nil {
		return err
	}
	p.height = v
	p.updateSection()
	return nil
}

// SetBase changes the section width and recomputes I
func (p *Parameters) SetBase(v float64) error {
	if err := positive("base", v); err != nil {
		return err
	}
	p.base = v
	p.updateSection()
	return nil
}

// SetLoad changes the point load magnitude. Either sign is accepted.
func (p *Parameters) SetLoad(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: load=%g must be finite", ErrInvalidParameter, v)
	}
	p.load = v
	return nil
}

// SetLoadPosition moves the load to px, clamped to [0, L].
// It reports whether the requested position had to be clamped.
func (p *Parameters) SetLoadPosition(px float64) (clamped bool, err error) {
	if math.IsNaN(px) {
		return false, fmt.Errorf("%w: load position is NaN", ErrInvalidParameter)
	}
	c := clamp(px, 0, p.length)
	p.loadPosition = c
	return c != px, nil
}

// SetLoadRatio moves the load to ratio·L with the ratio clamped to [0, 1]
func (p *Parameters) SetLoadRatio(ratio float64) (clamped bool, err error) {
	if math.IsNaN(ratio) {
		return false, fmt.Errorf("%w: load ratio is NaN", ErrInvalidParameter)
	}
	r := clamp(ratio, 0, 1)
	p.loadPosition = r * p.length
	return r != ratio, nil
}

// SetMaterial swaps the beam material. The beam is unchanged on error.
func (p *Parameters) SetMaterial(name string) error {
	m, err := materials.Lookup(name)
	if err != nil {
		return err
	}
	p.material = m
	return nil
}

func (p *Parameters) Length() float64       { return p.length }
func (p *Parameters) Height() float64       { return p.height }
func (p *Parameters) Base() float64         { return p.base }
func (p *Parameters) Load() float64         { return p.load }
func (p *Parameters) LoadPosition() float64 { return p.loadPosition }
func (p *Parameters) Inertia() float64      { return p.inertia }
func (p *Parameters) HalfHeight() float64   { return p.halfHeight }
func (p *Parameters) Samples() int          { return p.samples }

// Material returns the current material properties
func (p *Parameters) Material() materials.Properties { return p.material }

// YoungsModulus returns E of the current material (Pa)
func (p *Parameters) YoungsModulus() float64 { return p.material.YoungsModulusPa }

// SectionModulus returns S = I/c (m³)
func (p *Parameters) SectionModulus() float64 { return p.inertia / p.halfHeight }

// LoadRatio returns Px/L
func (p *Parameters) LoadRatio() float64 {
	if p.length <= 0 {
		return 0
	}
	return p.loadPosition / p.length
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
