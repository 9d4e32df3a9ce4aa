package beam

import (
	"fmt"
	"math"
)

// Profile holds the deflected shape of a beam at its sample stations
type Profile struct {
	Deflections     []float64 // δ at x_i = i·L/n (m), downward negative for positive P
	LoadSampleIndex int       // last station with x_i <= Px
	PeakStressPa    float64   // σ_max at the load point (Pa)
	Length          float64   // L used for the solve (m)
}

// Solve computes the Euler-Bernoulli deflection of a simply supported beam
// under a single point load at n equally spaced stations x_i = i·L/n, i = 0..n-1.
//
//	x <= Px:  δ = -P·x·(L-Px)·(L² - (L-Px)² - x²) / (6·E·I·L)
//	x >  Px:  δ = -P·Px·(L-x)·(2·L·x - x² - Px²) / (6·E·I·L)
//
// LoadSampleIndex is the last station on the left branch. It places the
// load among the discrete stations and is deliberately not interpolated.
func Solve(p *Parameters) (*Profile, error) {
	n := p.samples
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d (need at least 2)", ErrInvalidSampleCount, n)
	}
	L := p.length
	if err := positive("length", L); err != nil {
		return nil, err
	}
	if err := positive("inertia", p.inertia); err != nil {
		return nil, err
	}
	E := p.YoungsModulus()
	if err := positive("youngs modulus", E); err != nil {
		return nil, err
	}

	P := p.load
	Px := p.loadPosition
	EI := E * p.inertia

	deflections := make([]float64, n)
	loadIndex := 0
	for i := 0; i < n; i++ {
		x := float64(i) * L / float64(n)
		if x <= Px {
			deflections[i] = leftDeflection(P, Px, L, EI, x)
			loadIndex = i
		} else {
			deflections[i] = rightDeflection(P, Px, L, EI, x)
		}
	}

	return &Profile{
		Deflections:     deflections,
		LoadSampleIndex: loadIndex,
		PeakStressPa:    PeakStress(p),
		Length:          L,
	}, nil
}

// leftDeflection is δ(x) between the left support and the load
func leftDeflection(P, Px, L, EI, x float64) float64 {
	a := L - Px
	return -(P * x * a * (L*L - a*a - x*x)) / (6 * EI * L)
}

// rightDeflection is δ(x) between the load and the right support
func rightDeflection(P, Px, L, EI, x float64) float64 {
	return -(P * Px * (L - x) * (2*L*x - x*x - Px*Px)) / (6 * EI * L)
}

// PeakStress returns the maximum bending stress σ = M·c/I with M = P·Px·(L-Px)/L
func PeakStress(p *Parameters) float64 {
	L := p.length
	moment := p.load * p.loadPosition * (L - p.loadPosition) / L
	return moment * p.halfHeight / p.inertia
}

// Samples returns the number of stations in the profile
func (pr *Profile) Samples() int {
	return len(pr.Deflections)
}

// Station returns the position of station i along the beam (m)
func (pr *Profile) Station(i int) float64 {
	return float64(i) * pr.Length / float64(len(pr.Deflections))
}

// Stations returns the positions of all stations (m)
func (pr *Profile) Stations() []float64 {
	xs := make([]float64, len(pr.Deflections))
	for i := range xs {
		xs[i] = pr.Station(i)
	}
	return xs
}

// MaxDeflection returns the sampled deflection of largest magnitude and its station index
func (pr *Profile) MaxDeflection() (float64, int) {
	idx := 0
	for i, d := range pr.Deflections {
		if math.Abs(d) > math.Abs(pr.Deflections[idx]) {
			idx = i
		}
	}
	if len(pr.Deflections) == 0 {
		return 0, 0
	}
	return pr.Deflections[idx], idx
}

// Scaled returns a new slice of deflections multiplied by factor.
// Used for display magnification; the profile itself is not modified.
func (pr *Profile) Scaled(factor float64) []float64 {
	out := make([]float64, len(pr.Deflections))
	for i, d := range pr.Deflections {
		out[i] = d * factor
	}
	return out
}

// LoadSampleIndex returns the station a load at px falls on for an n-station beam of length L
func LoadSampleIndex(length, px float64, n int) int {
	idx := 0
	for i := 0; i < n; i++ {
		if float64(i)*length/float64(n) <= px {
			idx = i
		}
	}
	return idx
}
