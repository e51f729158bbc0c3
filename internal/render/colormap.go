package render

import (
	"fmt"
	"image/color"
	"sort"
)

// Colormap maps a normalized value in [0,1] to a color by linear
// interpolation between anchor colors.
type Colormap struct {
	Name    string
	anchors []color.RGBA
}

var colormaps = map[string]*Colormap{
	"gray": {Name: "gray", anchors: []color.RGBA{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
	}},
	"viridis": {Name: "viridis", anchors: []color.RGBA{
		{68, 1, 84, 255},
		{59, 82, 139, 255},
		{33, 145, 140, 255},
		{94, 201, 98, 255},
		{253, 231, 37, 255},
	}},
	"inferno": {Name: "inferno", anchors: []color.RGBA{
		{0, 0, 4, 255},
		{87, 16, 110, 255},
		{188, 55, 84, 255},
		{249, 142, 9, 255},
		{252, 255, 164, 255},
	}},
	"coolwarm": {Name: "coolwarm", anchors: []color.RGBA{
		{59, 76, 192, 255},
		{221, 221, 221, 255},
		{180, 4, 38, 255},
	}},
}

// ColormapByName resolves a colormap name.
func ColormapByName(name string) (*Colormap, error) {
	if cm, ok := colormaps[name]; ok {
		return cm, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
}

// ColormapNames lists the available colormaps, sorted.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// At returns the color for t, clamped to [0,1].
func (c *Colormap) At(t float64) color.RGBA {
	if t <= 0 {
		return c.anchors[0]
	}
	if t >= 1 {
		return c.anchors[len(c.anchors)-1]
	}

	pos := t * float64(len(c.anchors)-1)
	lo := int(pos)
	frac := pos - float64(lo)

	a, b := c.anchors[lo], c.anchors[lo+1]
	return color.RGBA{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
