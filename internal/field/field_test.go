package field

import (
	"errors"
	"testing"
)

func TestFromRows(t *testing.T) {
	f, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Nx != 2 || f.Ny != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", f.Nx, f.Ny)
	}
	if f.At(0, 0) != 1 || f.At(0, 2) != 3 || f.At(1, 1) != 5 {
		t.Error("values not mapped with first index along x")
	}
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, ErrRagged) {
		t.Errorf("expected ErrRagged, got %v", err)
	}
}

func TestFromRowsEmpty(t *testing.T) {
	if _, err := FromRows(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if _, err := FromRows([][]float64{{}}); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty for empty rows, got %v", err)
	}
}

func TestMinMax(t *testing.T) {
	f, _ := FromRows([][]float64{{3, -1}, {7, 0}})
	min, max := f.MinMax()
	if min != -1 || max != 7 {
		t.Errorf("minmax = %g, %g, want -1, 7", min, max)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	min, max := New(0, 0).MinMax()
	if min != 0 || max != 0 {
		t.Errorf("empty minmax = %g, %g, want 0, 0", min, max)
	}
}

func TestTranspose(t *testing.T) {
	f, _ := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := f.Transpose()
	if tr.Nx != 3 || tr.Ny != 2 {
		t.Fatalf("transposed shape = %dx%d, want 3x2", tr.Nx, tr.Ny)
	}
	for i := 0; i < f.Nx; i++ {
		for j := 0; j < f.Ny; j++ {
			if tr.At(j, i) != f.At(i, j) {
				t.Fatalf("transpose mismatch at (%d,%d)", i, j)
			}
		}
	}
}

func TestRowColumn(t *testing.T) {
	f, _ := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})

	row, err := f.Row(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row[0] != 2 || row[1] != 4 || row[2] != 6 {
		t.Errorf("row(1) = %v", row)
	}

	col, err := f.Column(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col[0] != 5 || col[1] != 6 {
		t.Errorf("column(2) = %v", col)
	}

	if _, err := f.Row(5); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
	if _, err := f.Column(-1); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
}

func TestFromAny(t *testing.T) {
	s, err := FromAny([][]float64{{1, 2}, {3, 4}})
	if err != nil || len(s) != 1 {
		t.Fatalf("2D: got %d panels, %v", len(s), err)
	}

	s, err = FromAny([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	})
	if err != nil || len(s) != 2 {
		t.Fatalf("3D: got %d panels, %v", len(s), err)
	}
}

func TestFromAnyBadRank(t *testing.T) {
	cases := []any{
		[]float64{1, 2, 3},
		"not an array",
		42,
		[][][][]float64{},
	}
	for _, c := range cases {
		if _, err := FromAny(c); !errors.Is(err, ErrBadRank) {
			t.Errorf("%T: expected ErrBadRank, got %v", c, err)
		}
	}
}

func TestFromSlicesShapeMismatch(t *testing.T) {
	_, err := FromSlices([][][]float64{
		{{1, 2}, {3, 4}},
		{{1, 2, 3}, {4, 5, 6}},
	})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestCloneIndependent(t *testing.T) {
	f, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	c := f.Clone()
	c.Set(0, 0, 99)
	if f.At(0, 0) != 1 {
		t.Error("clone should not share storage")
	}
}
