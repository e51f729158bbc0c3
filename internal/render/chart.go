package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/san-kum/astroviz/internal/field"
)

// Axis selects the direction of a 1D profile through a field.
type Axis int

const (
	// AxisX profiles along the first index at fixed j.
	AxisX Axis = iota
	// AxisY profiles along the second index at fixed i.
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Profile extracts a 1D slice through f.
func Profile(f *field.Field, axis Axis, index int) ([]float64, error) {
	if axis == AxisY {
		return f.Column(index)
	}
	return f.Row(index)
}

// ProfileChart writes a PNG line chart of the profile through f to w.
func ProfileChart(w io.Writer, f *field.Field, axis Axis, index int, title string) error {
	values, err := Profile(f, axis, index)
	if err != nil {
		return err
	}

	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s  (%s profile at %d)", title, axis, index),
		Width:  PanelWidth,
		Height: PanelHeight,
		XAxis:  chart.XAxis{Name: axis.String()},
		YAxis:  chart.YAxis{Name: "value"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: values,
			},
		},
	}

	return graph.Render(chart.PNG, w)
}
