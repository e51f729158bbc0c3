package units

import (
	"fmt"
	"strconv"
)

// Quantity is a base-scale input: either a positive numeric value or a named
// symbol resolved against a constants table ("pc" for a length, "Myr" for a
// time, and so on). The zero Quantity means the scale is unset.
type Quantity struct {
	value  float64
	symbol string
}

// Value returns a numeric quantity.
func Value(v float64) Quantity {
	return Quantity{value: v}
}

// Symbol returns a symbolic quantity such as "pc" or "m_Sun".
func Symbol(name string) Quantity {
	return Quantity{symbol: name}
}

// ParseQuantity interprets CLI input: numeric text becomes a value, empty
// text the unset quantity, anything else a symbol.
func ParseQuantity(s string) Quantity {
	if s == "" {
		return Quantity{}
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Value(v)
	}
	return Symbol(s)
}

// slot identifies which base scale a quantity is resolved for; each slot
// accepts a different set of symbols.
type slot int

const (
	slotLength slot = iota
	slotMass
	slotTime
	slotDensity
	slotVelocity
)

func (s slot) String() string {
	switch s {
	case slotLength:
		return "length"
	case slotMass:
		return "mass"
	case slotTime:
		return "time"
	case slotDensity:
		return "density"
	case slotVelocity:
		return "velocity"
	}
	return "unknown"
}

// resolve yields the numeric value of q for the given slot, looking symbols
// up in t.
func (q Quantity) resolve(t *ConstantsTable, s slot) (float64, error) {
	if q.symbol == "" {
		return q.value, nil
	}
	switch s {
	case slotLength:
		if q.symbol == "pc" {
			return t.Parsec, nil
		}
	case slotMass:
		switch q.symbol {
		case "Solar", "m_Sun":
			return t.MSun, nil
		}
	case slotTime:
		switch q.symbol {
		case "yr":
			return t.Year, nil
		case "kyr":
			return t.Kiloyear, nil
		case "Myr":
			return t.Megayear, nil
		}
	case slotVelocity:
		if q.symbol == "kms" {
			return t.KmPerSec, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a valid %s symbol", ErrUnknownSymbol, q.symbol, s)
}
