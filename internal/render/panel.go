package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/san-kum/astroviz/internal/field"
)

// Panel geometry, in pixels. A panel is the original 5x4 figure at 100
// pixels per unit.
const (
	PanelWidth  = 500
	PanelHeight = 400

	titleHeight  = 24
	plotMargin   = 10
	colorbarWid  = 16
	colorbarGap  = 10
	labelReserve = 80
)

var (
	background = color.RGBA{255, 255, 255, 255}
	ink        = color.RGBA{20, 20, 20, 255}
)

// Options control how fields are displayed.
type Options struct {
	// Colormap names one of the built-in colormaps.
	Colormap string

	// VMin and VMax fix the value range; NaN means take it from the data.
	VMin, VMax float64
}

// DefaultOptions returns viridis with an automatic value range.
func DefaultOptions() Options {
	return Options{
		Colormap: "viridis",
		VMin:     math.NaN(),
		VMax:     math.NaN(),
	}
}

// Panel renders one field as a PanelWidth x PanelHeight image: the first
// array index runs along the horizontal axis with the origin at lower left,
// a colorbar sits on the right, and the title line reports the data extremes.
func Panel(f *field.Field, title string, opts Options) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, PanelWidth, PanelHeight))
	if err := drawPanel(img, img.Bounds(), f, title, opts); err != nil {
		return nil, err
	}
	return img, nil
}

// panelTitle formats the title line shown above a panel.
func panelTitle(title string, min, max float64) string {
	return fmt.Sprintf("%s  max:%.4f  min:%.4f", title, max, min)
}

// drawPanel renders one field into the cell rectangle of img.
func drawPanel(img *image.RGBA, cell image.Rectangle, f *field.Field, title string, opts Options) error {
	cm, err := ColormapByName(opts.Colormap)
	if err != nil {
		return err
	}

	draw.Draw(img, cell, image.NewUniform(background), image.Point{}, draw.Src)

	dataMin, dataMax := f.MinMax()
	vmin, vmax := opts.VMin, opts.VMax
	if math.IsNaN(vmin) {
		vmin = dataMin
	}
	if math.IsNaN(vmax) {
		vmax = dataMax
	}
	span := vmax - vmin

	plot := image.Rect(
		cell.Min.X+plotMargin,
		cell.Min.Y+titleHeight,
		cell.Max.X-colorbarWid-colorbarGap-labelReserve,
		cell.Max.Y-plotMargin,
	)

	// Image area: i along x, j along y with the origin at the bottom.
	for py := plot.Min.Y; py < plot.Max.Y; py++ {
		j := (plot.Max.Y - 1 - py) * f.Ny / plot.Dy()
		for px := plot.Min.X; px < plot.Max.X; px++ {
			i := (px - plot.Min.X) * f.Nx / plot.Dx()
			t := 0.5
			if span != 0 {
				t = (f.At(i, j) - vmin) / span
			}
			img.SetRGBA(px, py, cm.At(t))
		}
	}

	drawColorbar(img, plot, cm, vmin, vmax)

	label := panelTitle(title, dataMin, dataMax)
	tx := cell.Min.X + (cell.Dx()-labelWidth(label))/2
	if tx < cell.Min.X+2 {
		tx = cell.Min.X + 2
	}
	drawLabel(img, tx, cell.Min.Y+16, label, ink)

	return nil
}

// drawColorbar draws a vertical gradient bar right of the plot area with
// min/max annotations.
func drawColorbar(img *image.RGBA, plot image.Rectangle, cm *Colormap, vmin, vmax float64) {
	bar := image.Rect(plot.Max.X+colorbarGap, plot.Min.Y, plot.Max.X+colorbarGap+colorbarWid, plot.Max.Y)

	for py := bar.Min.Y; py < bar.Max.Y; py++ {
		t := float64(bar.Max.Y-1-py) / float64(bar.Dy()-1)
		c := cm.At(t)
		for px := bar.Min.X; px < bar.Max.X; px++ {
			img.SetRGBA(px, py, c)
		}
	}

	// Border.
	for px := bar.Min.X - 1; px <= bar.Max.X; px++ {
		img.SetRGBA(px, bar.Min.Y-1, ink)
		img.SetRGBA(px, bar.Max.Y, ink)
	}
	for py := bar.Min.Y - 1; py <= bar.Max.Y; py++ {
		img.SetRGBA(bar.Min.X-1, py, ink)
		img.SetRGBA(bar.Max.X, py, ink)
	}

	drawLabel(img, bar.Max.X+6, bar.Min.Y+10, fmt.Sprintf("%.3g", vmax), ink)
	drawLabel(img, bar.Max.X+6, bar.Max.Y-2, fmt.Sprintf("%.3g", vmin), ink)
}
