package beam

import "github.com/alexiusacademia/gobeam/internal/materials"

// Verdict is the outcome of a stress check
type Verdict int

const (
	Safe Verdict = iota
	Overstressed
)

func (v Verdict) String() string {
	switch v {
	case Safe:
		return "Safe"
	case Overstressed:
		return "Overstressed"
	default:
		return "Unknown"
	}
}

// Evaluate compares the peak bending stress against the material's allowable stress
func Evaluate(sigma float64, m materials.Properties) Verdict {
	if sigma > m.AllowableStressPa {
		return Overstressed
	}
	return Safe
}

// UtilizationRatio returns σ/σ_allow
func UtilizationRatio(sigma float64, m materials.Properties) float64 {
	if m.AllowableStressPa == 0 {
		return 0
	}
	return sigma / m.AllowableStressPa
}
