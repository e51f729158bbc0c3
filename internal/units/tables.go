package units

import (
	"fmt"
	"math"
	"strings"
)

// ConstantsTable is a named, immutable set of physical constants expressed in
// a fixed unit convention. Tables are built once at package init and never
// mutated afterwards.
type ConstantsTable struct {
	Name string

	MEarth     float64 // mass of Earth
	MSun       float64 // mass of Sun
	REarth     float64 // radius of Earth
	G          float64 // gravitational constant
	Year       float64 // s
	AU         float64 // astronomical unit
	Mu         float64 // mean molecular weight per atomic mass unit
	AtomicMass float64 // m_u
	Boltzmann  float64 // k_B
	Planck     float64 // h_P
	Charge     float64 // elementary charge
	LightSpeed float64 // c
	Stefan     float64 // Stefan-Boltzmann constant
	Parsec     float64
	Kiloyear   float64
	Megayear   float64
	KmPerSec   float64
	Angstrom   float64
	Micron     float64
}

// newTable fills in the quantities derived from the year and the
// astronomical unit.
func newTable(t ConstantsTable) *ConstantsTable {
	t.Parsec = 648000 / math.Pi * t.AU
	t.Kiloyear = 1e3 * t.Year
	t.Megayear = 1e6 * t.Year
	return &t
}

var (
	// CGS holds the constants in centimeter-gram-second units.
	CGS = newTable(ConstantsTable{
		Name:       "CGS",
		MEarth:     5.972e27,  // g
		MSun:       1.989e33,  // g
		REarth:     6.371e8,   // cm
		G:          6.67430e-8, // cm^3 g^-1 s^-2
		Year:       3.156e7,
		AU:         1.498e13, // cm
		Mu:         2.4,
		AtomicMass: 1.6726e-24, // g
		Boltzmann:  1.3807e-16, // erg per K
		Planck:     6.62606e-27, // erg per Hz
		Charge:     4.8032e-10, // statcoulomb
		LightSpeed: 2.9979e10,  // cm/s
		Stefan:     5.670374419e-5,
		KmPerSec:   1e5,
		Angstrom:   1e-8,
		Micron:     1e-4,
	})

	// MKS holds the constants in meter-kilogram-second units.
	MKS = newTable(ConstantsTable{
		Name:       "MKS",
		MEarth:     5.972e24,   // kg
		MSun:       1.989e30,   // kg
		REarth:     6.371e6,    // m
		G:          6.67430e-11, // m^3 kg^-1 s^-2
		Year:       3.156e7,
		AU:         1.498e11, // m
		Mu:         2.4,
		AtomicMass: 1.6726e-27, // kg
		Boltzmann:  1.3807e-23, // J per K
		Planck:     6.62606e-34, // J per Hz
		Charge:     1.6022e-19, // C
		LightSpeed: 2.9979e8,   // m/s
		Stefan:     5.670374419e-8,
		KmPerSec:   1e3,
		Angstrom:   1e-10,
		Micron:     1e-6,
	})

	// SI is MKS under its other name.
	SI = func() *ConstantsTable {
		t := *MKS
		t.Name = "SI"
		return &t
	}()
)

// Table resolves a case-insensitive system name ("cgs", "mks", "si") to its
// constants table.
func Table(name string) (*ConstantsTable, error) {
	switch strings.ToLower(name) {
	case "cgs":
		return CGS, nil
	case "mks":
		return MKS, nil
	case "si":
		return SI, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
}

// Names lists the recognized system names.
func Names() []string {
	return []string{"cgs", "mks", "si"}
}
