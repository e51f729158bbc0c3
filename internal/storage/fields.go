package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/astroviz/internal/field"
)

// LoadFields reads field data by extension: .csv for a single 2D field,
// .json for a 2D field or a stack of them.
func LoadFields(path string) (field.Stack, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := loadCSV(path)
		if err != nil {
			return nil, err
		}
		return field.Stack{f}, nil
	case ".json":
		return loadJSON(path)
	}
	return nil, fmt.Errorf("storage: unsupported input format %q", filepath.Ext(path))
}

// loadCSV reads one 2D field, one row per record.
func loadCSV(path string) (*field.Field, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, 0, len(records))
	for i, record := range records {
		row := make([]float64, 0, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("storage: %s row %d col %d: %w", path, i+1, j+1, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return field.FromRows(rows)
}

// loadJSON reads a nested-array file: rank 3 is a stack, rank 2 a single
// field, anything else is rejected through field.FromAny.
func loadJSON(path string) (field.Stack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var stack [][][]float64
	if err := json.Unmarshal(data, &stack); err == nil {
		return field.FromAny(stack)
	}

	var single [][]float64
	if err := json.Unmarshal(data, &single); err == nil {
		return field.FromAny(single)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("storage: %s: %w", path, err)
	}
	return nil, fmt.Errorf("storage: %s: %w", path, field.ErrBadRank)
}

// SavePNG writes img to path, creating parent directories as needed.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
