package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/san-kum/astroviz/internal/field"
)

// MaxColumns is the widest montage layout; further panels wrap to new rows.
const MaxColumns = 3

// Montage renders a stack of fields into a grid of panels: min(N,3) columns
// and as many rows as needed, filled in stack order. Cells past the last
// panel stay background. titles may be empty, a single shared title, or one
// title per panel.
func Montage(s field.Stack, titles []string, opts Options) (*image.RGBA, error) {
	if len(s) == 0 {
		return nil, ErrEmptyStack
	}
	if len(titles) > 1 && len(titles) != len(s) {
		return nil, fmt.Errorf("%w (%d titles for %d panels)", ErrTitleCount, len(titles), len(s))
	}

	titleFor := func(i int) string {
		switch len(titles) {
		case 0:
			return ""
		case 1:
			return titles[0]
		}
		return titles[i]
	}

	cols := len(s)
	if cols > MaxColumns {
		cols = MaxColumns
	}
	rows := 1 + (len(s)-1)/MaxColumns

	img := image.NewRGBA(image.Rect(0, 0, cols*PanelWidth, rows*PanelHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i, f := range s {
		col, row := i%MaxColumns, i/MaxColumns
		cell := image.Rect(
			col*PanelWidth,
			row*PanelHeight,
			(col+1)*PanelWidth,
			(row+1)*PanelHeight,
		)
		if err := drawPanel(img, cell, f, titleFor(i), opts); err != nil {
			return nil, err
		}
	}

	return img, nil
}
