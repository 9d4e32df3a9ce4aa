// Package report writes beam solutions to PDF reports and XLSX workbooks.
package report

import (
	"time"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Data is everything a report shows about one solve
type Data struct {
	Title   string
	Project string
	Author  string
	Date    time.Time

	// Inputs
	Length       float64 // m
	Height       float64 // m
	Base         float64 // m
	Load         float64 // N
	LoadPosition float64 // m
	Material     string
	Allowable    float64 // Pa
	Modulus      float64 // Pa
	Inertia      float64 // m⁴

	// Results
	Stations        []float64 // m
	Deflections     []float64 // m
	LoadSampleIndex int
	PeakStress      float64 // Pa
	Verdict         beam.Verdict
}

// FromSolution collects report data from a beam and its solved profile
func FromSolution(p *beam.Parameters, prof *beam.Profile) Data {
	m := p.Material()
	return Data{
		Title:           "Beam Deflection Report",
		Date:            time.Now(),
		Length:          p.Length(),
		Height:          p.Height(),
		Base:            p.Base(),
		Load:            p.Load(),
		LoadPosition:    p.LoadPosition(),
		Material:        m.Name,
		Allowable:       m.AllowableStressPa,
		Modulus:         m.YoungsModulusPa,
		Inertia:         p.Inertia(),
		Stations:        prof.Stations(),
		Deflections:     prof.Deflections,
		LoadSampleIndex: prof.LoadSampleIndex,
		PeakStress:      prof.PeakStressPa,
		Verdict:         beam.Evaluate(prof.PeakStressPa, m),
	}
}

// MaxDeflection returns the sampled deflection of largest magnitude and its station
func (d Data) MaxDeflection() (float64, float64) {
	var maxD, at float64
	for i, v := range d.Deflections {
		if v*v > maxD*maxD {
			maxD, at = v, d.Stations[i]
		}
	}
	return maxD, at
}

// Utilization returns σ_max/σ_allow
func (d Data) Utilization() float64 {
	if d.Allowable == 0 {
		return 0
	}
	return d.PeakStress / d.Allowable
}
