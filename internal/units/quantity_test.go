package units

import (
	"errors"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	q := ParseQuantity("3.086e18")
	v, err := q.resolve(CGS, slotLength)
	if err != nil || v != 3.086e18 {
		t.Errorf("numeric parse: got %g, %v", v, err)
	}

	q = ParseQuantity("pc")
	v, err = q.resolve(CGS, slotLength)
	if err != nil || v != CGS.Parsec {
		t.Errorf("symbol parse: got %g, %v", v, err)
	}

	q = ParseQuantity("")
	v, err = q.resolve(CGS, slotLength)
	if err != nil || v != 0 {
		t.Errorf("empty parse should be unset: got %g, %v", v, err)
	}
}

func TestSymbolResolution(t *testing.T) {
	tests := []struct {
		sym  string
		s    slot
		want float64
	}{
		{"pc", slotLength, CGS.Parsec},
		{"Solar", slotMass, CGS.MSun},
		{"m_Sun", slotMass, CGS.MSun},
		{"yr", slotTime, CGS.Year},
		{"kyr", slotTime, CGS.Kiloyear},
		{"Myr", slotTime, CGS.Megayear},
		{"kms", slotVelocity, CGS.KmPerSec},
	}

	for _, tt := range tests {
		v, err := Symbol(tt.sym).resolve(CGS, tt.s)
		if err != nil {
			t.Errorf("%s as %s: unexpected error %v", tt.sym, tt.s, err)
			continue
		}
		if v != tt.want {
			t.Errorf("%s as %s = %g, want %g", tt.sym, tt.s, v, tt.want)
		}
	}
}

func TestSymbolWrongSlot(t *testing.T) {
	// "pc" is a length, not a time; density has no symbols at all.
	cases := []struct {
		sym string
		s   slot
	}{
		{"pc", slotTime},
		{"Myr", slotLength},
		{"kms", slotMass},
		{"pc", slotDensity},
		{"furlong", slotLength},
	}

	for _, c := range cases {
		if _, err := Symbol(c.sym).resolve(CGS, c.s); !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("%s as %s: expected ErrUnknownSymbol, got %v", c.sym, c.s, err)
		}
	}
}
