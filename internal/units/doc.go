// Package units derives self-consistent code-unit scalings from physical
// constants tables.
//
// The package provides:
//
//   - [ConstantsTable]: immutable physical constants in CGS, MKS or SI
//   - [Quantity]: a base-scale input, numeric or symbolic ("pc", "Myr", ...)
//   - [Derive]: completes three given base scales into the full scaling
//
// # Example
//
//	s, err := units.Derive(units.CGS, units.Params{
//	    Length: units.Symbol("pc"),
//	    Mass:   units.Symbol("m_Sun"),
//	    Time:   units.Symbol("Myr"),
//	})
//	if err != nil {
//	    // wrong input count, unknown symbol, ...
//	}
//	fmt.Println(s.Boltzmann) // k_B in code units
//
// Any three dimensionally independent base scales determine the other two
// through velocity = length/time and density = mass/length^3. The two
// dependent triples ({length, mass, density} and {length, time, velocity})
// are rejected.
package units
