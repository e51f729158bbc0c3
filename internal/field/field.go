package field

import (
	"errors"
	"fmt"
)

// Errors for malformed field data.
var (
	// ErrBadRank indicates data that is neither a 2D array nor a stack of
	// 2D arrays.
	ErrBadRank = errors.New("field: data must be a 2D array or a stack of 2D arrays")

	// ErrRagged indicates rows of unequal length.
	ErrRagged = errors.New("field: rows must have equal length")

	// ErrEmpty indicates a field with no elements.
	ErrEmpty = errors.New("field: empty data")

	// ErrShapeMismatch indicates stack members with different shapes.
	ErrShapeMismatch = errors.New("field: stack members must share one shape")

	// ErrIndexRange indicates a row or column index outside the field.
	ErrIndexRange = errors.New("field: index out of range")
)

// Field is a dense 2D array of Nx by Ny values. The first index i runs along
// the x axis.
type Field struct {
	Nx, Ny int
	data   []float64
}

// New returns a zero-filled field of the given shape.
func New(nx, ny int) *Field {
	return &Field{Nx: nx, Ny: ny, data: make([]float64, nx*ny)}
}

// FromRows builds a field from rows[i][j], mapping the first index to x.
func FromRows(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	f := New(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != f.Ny {
			return nil, fmt.Errorf("%w (row %d has %d values, want %d)", ErrRagged, i, len(row), f.Ny)
		}
		for j, v := range row {
			f.Set(i, j, v)
		}
	}
	return f, nil
}

func (f *Field) At(i, j int) float64 {
	return f.data[j*f.Nx+i]
}

func (f *Field) Set(i, j int, v float64) {
	f.data[j*f.Nx+i] = v
}

// Fill sets every element to v.
func (f *Field) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

// Clone returns an independent copy.
func (f *Field) Clone() *Field {
	c := New(f.Nx, f.Ny)
	copy(c.data, f.data)
	return c
}

// MinMax returns the smallest and largest values in the field. A field
// with no elements reports (0, 0).
func (f *Field) MinMax() (min, max float64) {
	if len(f.data) == 0 {
		return 0, 0
	}
	min, max = f.data[0], f.data[0]
	for _, v := range f.data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Transpose returns a new field with the axes swapped.
func (f *Field) Transpose() *Field {
	t := New(f.Ny, f.Nx)
	for i := 0; i < f.Nx; i++ {
		for j := 0; j < f.Ny; j++ {
			t.Set(j, i, f.At(i, j))
		}
	}
	return t
}

// Row returns the values along x at height j.
func (f *Field) Row(j int) ([]float64, error) {
	if j < 0 || j >= f.Ny {
		return nil, fmt.Errorf("%w: row %d of %d", ErrIndexRange, j, f.Ny)
	}
	out := make([]float64, f.Nx)
	for i := range out {
		out[i] = f.At(i, j)
	}
	return out, nil
}

// Column returns the values along y at position i.
func (f *Field) Column(i int) ([]float64, error) {
	if i < 0 || i >= f.Nx {
		return nil, fmt.Errorf("%w: column %d of %d", ErrIndexRange, i, f.Nx)
	}
	out := make([]float64, f.Ny)
	for j := range out {
		out[j] = f.At(i, j)
	}
	return out, nil
}

// Stack is an ordered sequence of fields sharing one shape.
type Stack []*Field

// FromSlices builds a stack from panels[k][i][j].
func FromSlices(panels [][][]float64) (Stack, error) {
	if len(panels) == 0 {
		return nil, ErrEmpty
	}
	s := make(Stack, 0, len(panels))
	for k, p := range panels {
		f, err := FromRows(p)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", k, err)
		}
		if k > 0 && (f.Nx != s[0].Nx || f.Ny != s[0].Ny) {
			return nil, fmt.Errorf("%w (panel %d is %dx%d, want %dx%d)",
				ErrShapeMismatch, k, f.Nx, f.Ny, s[0].Nx, s[0].Ny)
		}
		s = append(s, f)
	}
	return s, nil
}

// FromAny accepts a 2D array, a stack of 2D arrays, or their Field
// equivalents, and rejects every other rank with ErrBadRank.
func FromAny(v any) (Stack, error) {
	switch a := v.(type) {
	case *Field:
		return Stack{a}, nil
	case Stack:
		if len(a) == 0 {
			return nil, ErrEmpty
		}
		return a, nil
	case [][]float64:
		f, err := FromRows(a)
		if err != nil {
			return nil, err
		}
		return Stack{f}, nil
	case [][][]float64:
		return FromSlices(a)
	}
	return nil, fmt.Errorf("%w (got %T)", ErrBadRank, v)
}
