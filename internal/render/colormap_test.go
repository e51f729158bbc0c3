package render

import (
	"errors"
	"image/color"
	"testing"
)

func TestColormapByName(t *testing.T) {
	for _, name := range ColormapNames() {
		cm, err := ColormapByName(name)
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
			continue
		}
		if cm.Name != name {
			t.Errorf("colormap %q reports name %q", name, cm.Name)
		}
	}

	if _, err := ColormapByName("jet"); !errors.Is(err, ErrUnknownColormap) {
		t.Errorf("expected ErrUnknownColormap, got %v", err)
	}
}

func TestColormapEndpoints(t *testing.T) {
	cm, _ := ColormapByName("gray")

	if got := cm.At(0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("At(0) = %v", got)
	}
	if got := cm.At(1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("At(1) = %v", got)
	}

	// Out-of-range values clamp to the endpoints.
	if cm.At(-2) != cm.At(0) {
		t.Error("At(-2) should clamp to At(0)")
	}
	if cm.At(5) != cm.At(1) {
		t.Error("At(5) should clamp to At(1)")
	}
}

func TestColormapMidpoint(t *testing.T) {
	cm, _ := ColormapByName("gray")
	mid := cm.At(0.5)
	if mid.R < 120 || mid.R > 136 || mid.R != mid.G || mid.G != mid.B {
		t.Errorf("gray midpoint = %v, want neutral mid gray", mid)
	}
}
