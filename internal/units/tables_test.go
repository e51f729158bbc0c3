package units

import (
	"errors"
	"math"
	"testing"
)

func TestTableLookup(t *testing.T) {
	tests := []struct {
		name string
		want *ConstantsTable
	}{
		{"cgs", CGS},
		{"CGS", CGS},
		{"mks", MKS},
		{"Mks", MKS},
		{"si", SI},
		{"SI", SI},
	}

	for _, tt := range tests {
		got, err := Table(tt.name)
		if err != nil {
			t.Errorf("Table(%q): unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Table(%q) = %s, want %s", tt.name, got.Name, tt.want.Name)
		}
	}
}

func TestTableLookupUnknown(t *testing.T) {
	_, err := Table("imperial")
	if !errors.Is(err, ErrUnknownSystem) {
		t.Errorf("expected ErrUnknownSystem, got %v", err)
	}
}

func TestParsec(t *testing.T) {
	for _, table := range []*ConstantsTable{CGS, MKS} {
		want := 648000 / math.Pi * table.AU
		if table.Parsec != want {
			t.Errorf("%s: parsec = %g, want %g", table.Name, table.Parsec, want)
		}
	}
	// 1 pc is about 3.086e18 cm
	if math.Abs(CGS.Parsec-3.086e18)/3.086e18 > 2e-3 {
		t.Errorf("CGS parsec = %g, expected close to 3.086e18", CGS.Parsec)
	}
}

func TestDerivedYears(t *testing.T) {
	if CGS.Kiloyear != 1e3*CGS.Year {
		t.Errorf("kyr = %g, want %g", CGS.Kiloyear, 1e3*CGS.Year)
	}
	if CGS.Megayear != 1e6*CGS.Year {
		t.Errorf("Myr = %g, want %g", CGS.Megayear, 1e6*CGS.Year)
	}
}

func TestSIAliasesMKS(t *testing.T) {
	if SI.Name != "SI" {
		t.Errorf("SI name = %q", SI.Name)
	}
	want := *MKS
	want.Name = "SI"
	if *SI != want {
		t.Error("SI should hold MKS values under its own name")
	}
}

func TestTableValues(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"CGS m_Sun", CGS.MSun, 1.989e33},
		{"CGS G", CGS.G, 6.67430e-8},
		{"CGS k_B", CGS.Boltzmann, 1.3807e-16},
		{"CGS kms", CGS.KmPerSec, 1e5},
		{"MKS m_Sun", MKS.MSun, 1.989e30},
		{"MKS G", MKS.G, 6.67430e-11},
		{"MKS c", MKS.LightSpeed, 2.9979e8},
		{"MKS kms", MKS.KmPerSec, 1e3},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %g, want %g", tt.name, tt.got, tt.want)
		}
	}
}
