package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/astroviz/internal/field"
	"github.com/san-kum/astroviz/internal/render"
)

// Heatmap renders f into a w x h block of colored cells for the terminal,
// first index along x, origin at the bottom. NaN bounds take the field's own
// extremes.
func Heatmap(f *field.Field, w, h int, cm *render.Colormap, vmin, vmax float64) string {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dataMin, dataMax := f.MinMax()
	if math.IsNaN(vmin) {
		vmin = dataMin
	}
	if math.IsNaN(vmax) {
		vmax = dataMax
	}
	span := vmax - vmin

	// Styles are cached per quantized level; terminals do not need more
	// than 64 shades.
	const levels = 64
	styles := make([]lipgloss.Style, levels)
	for k := range styles {
		c := cm.At(float64(k) / float64(levels-1))
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		styles[k] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	var b strings.Builder
	for row := 0; row < h; row++ {
		j := (h - 1 - row) * f.Ny / h
		for col := 0; col < w; col++ {
			i := col * f.Nx / w
			t := 0.5
			if span != 0 {
				t = (f.At(i, j) - vmin) / span
			}
			k := int(t * float64(levels-1))
			if k < 0 {
				k = 0
			}
			if k >= levels {
				k = levels - 1
			}
			b.WriteString(styles[k].Render("█"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
