// Package materials holds the fixed catalog of beam materials.
package materials

import (
	"errors"
	"fmt"
	"sort"
)

// Unit conversion factors from catalog units to SI
const (
	MPa = 1e6 // Pa per MPa
	GPa = 1e9 // Pa per GPa
)

// ErrUnknownMaterial is returned when a name is not in the catalog
var ErrUnknownMaterial = errors.New("unknown material")

// Properties holds the mechanical properties of a material in SI units
type Properties struct {
	Name              string  `json:"name" yaml:"name"`
	AllowableStressPa float64 `json:"allowable_stress_pa" yaml:"allowable_stress_pa"` // σ_allow (Pa)
	YoungsModulusPa   float64 `json:"youngs_modulus_pa" yaml:"youngs_modulus_pa"`     // E (Pa)
}

// entry is a catalog row in source units
type entry struct {
	allowableMPa float64 // Allowable stress (MPa)
	modulusGPa   float64 // Young's modulus (GPa)
	note         string
}

var catalog = map[string]entry{
	"Aluminum": {110, 69, "Aluminum 1050-H14"},
	"Copper":   {344, 110, "Copper, Cu; cold drawn"},
	"Steel":    {440, 200, "AISI 1018 steel, cold drawn"},
	"Wood":     {4, 12, "Bigleaf maple"},
	"Zinc":     {37, 96, "Pure zinc"},
	"Marble":   {20, 60, "Pure marble"},
	"Rusted":   {275, 125, "AISI 1018 steel reduced 37.5%"},
	"Cement":   {1, 11, "Portland cement"},
}

// Default is the material a new beam starts with
const Default = "Steel"

// Lookup returns the SI properties of the named material
func Lookup(name string) (Properties, error) {
	e, ok := catalog[name]
	if !ok {
		return Properties{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return Properties{
		Name:              name,
		AllowableStressPa: e.allowableMPa * MPa,
		YoungsModulusPa:   e.modulusGPa * GPa,
	}, nil
}

// Names returns the catalog names in alphabetical order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every catalog entry in SI units, sorted by name
func All() []Properties {
	names := Names()
	all := make([]Properties, 0, len(names))
	for _, name := range names {
		p, _ := Lookup(name)
		all = append(all, p)
	}
	return all
}

// Description returns the reference grade behind a catalog entry
func Description(name string) string {
	return catalog[name].note
}
