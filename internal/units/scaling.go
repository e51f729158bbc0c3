package units

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// DefaultMu is the mean molecular weight assumed when none is given.
const DefaultMu = 2.4

// Params are the inputs to a scaling derivation. Exactly three of the five
// base scales must be set; the other two are completed from the defining
// relations velocity = length/time and density = mass/length^3.
type Params struct {
	Length   Quantity
	Mass     Quantity
	Time     Quantity
	Density  Quantity
	Velocity Quantity

	// Mu overrides the mean molecular weight; zero means DefaultMu.
	Mu float64

	// Logger receives diagnostic output. Nil disables it; results never
	// depend on logging.
	Logger *log.Logger
}

// Scaling is a complete, self-consistent system of physical-to-code unit
// conversions. Immutable once derived.
type Scaling struct {
	System *ConstantsTable

	// Base scales.
	Length   float64
	Mass     float64
	Time     float64
	Density  float64
	Velocity float64

	// Derived scales.
	Pressure      float64
	Energy        float64
	EnergyDensity float64
	Temperature   float64 // P/rho expressed as temperature
	Mu            float64

	// Constants of nature rescaled into code units.
	G          float64
	Stefan     float64
	Planck     float64
	Boltzmann  float64
	LightSpeed float64
	AtomicMass float64
}

// DeriveSystem is Derive with the table given by name.
func DeriveSystem(system string, p Params) (*Scaling, error) {
	table, err := Table(system)
	if err != nil {
		return nil, err
	}
	return Derive(table, p)
}

// Derive builds the code-unit scaling for table from three base scales.
//
// The ten 3-subsets of {length, mass, time, density, velocity} are handled
// individually: eight determine the remaining two scales in closed form, and
// the two dimensionally dependent subsets ({length, mass, density} and
// {length, time, velocity}) are rejected with ErrDegenerateInputs.
func Derive(table *ConstantsTable, p Params) (*Scaling, error) {
	if p.Logger != nil {
		p.Logger.Debug("deriving scaling", "system", table.Name)
	}

	l, err := p.Length.resolve(table, slotLength)
	if err != nil {
		return nil, err
	}
	m, err := p.Mass.resolve(table, slotMass)
	if err != nil {
		return nil, err
	}
	t, err := p.Time.resolve(table, slotTime)
	if err != nil {
		return nil, err
	}
	d, err := p.Density.resolve(table, slotDensity)
	if err != nil {
		return nil, err
	}
	v, err := p.Velocity.resolve(table, slotVelocity)
	if err != nil {
		return nil, err
	}

	n := 0
	for _, x := range []float64{l, m, t, d, v} {
		if x > 0 {
			n++
		}
	}
	if n != 3 {
		return nil, fmt.Errorf("%w (got %d)", ErrInputCount, n)
	}

	lSet, mSet, tSet, dSet, vSet := l > 0, m > 0, t > 0, d > 0, v > 0
	switch {
	case lSet && mSet && tSet:
		v = l / t
		d = m / (l * l * l)
	case lSet && mSet && vSet:
		t = l / v
		d = m / (l * l * l)
	case lSet && tSet && dSet:
		v = l / t
		m = d * l * l * l
	case lSet && dSet && vSet:
		t = l / v
		m = d * l * l * l
	case mSet && tSet && dSet:
		l = math.Cbrt(m / d)
		v = l / t
	case mSet && tSet && vSet:
		l = v * t
		d = m / (l * l * l)
	case mSet && dSet && vSet:
		l = math.Cbrt(m / d)
		t = l / v
	case tSet && dSet && vSet:
		l = v * t
		m = d * l * l * l
	case lSet && mSet && dSet:
		return nil, fmt.Errorf("%w: length, mass and density", ErrDegenerateInputs)
	default: // length, time and velocity
		return nil, fmt.Errorf("%w: length, time and velocity", ErrDegenerateInputs)
	}

	// Density and length are the authoritative pair for mass.
	m = d * l * l * l

	mu := p.Mu
	if mu == 0 {
		mu = DefaultMu
	}

	s := &Scaling{
		System:        table,
		Length:        l,
		Mass:          m,
		Time:          t,
		Density:       d,
		Velocity:      v,
		Pressure:      d * v * v,
		Energy:        m * v * v,
		EnergyDensity: d * v * v,
		Temperature:   mu * table.AtomicMass / table.Boltzmann * v * v,
		Mu:            mu,
	}
	s.G = table.G * d * t * t
	s.Stefan = table.Stefan / (s.EnergyDensity * v)
	s.Planck = table.Planck / (t * s.Energy)
	s.Boltzmann = table.Boltzmann / s.Energy
	s.LightSpeed = table.LightSpeed / v
	s.AtomicMass = table.AtomicMass / m

	if p.Logger != nil {
		p.Logger.Debug("scaling derived",
			"length", s.Length,
			"mass", s.Mass,
			"time", s.Time,
			"density", s.Density,
			"velocity", s.Velocity,
			"temperature", s.Temperature,
			"G", s.G,
		)
	}

	return s, nil
}
