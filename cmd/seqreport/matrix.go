package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyMatrix is returned when a counts CSV contains no numeric rows.
var ErrEmptyMatrix = errors.New("counts matrix is empty")

// loadMatrixCSV reads a cells x genes counts matrix from CSV. An optional
// header row and an optional leading label column are detected and skipped.
// The label column is detected first (a first column that never parses as a
// number), then the first row is treated as a header if its remaining cells
// do not all parse as numbers.
func loadMatrixCSV(path string) (*mat.Dense, error) {
	f, err := os.Open(path) // #nosec G304 -- matrix path comes from the manifest
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading counts matrix: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyMatrix, path)
	}

	skipLabel := hasLabelColumn(records)

	first := records[0]
	if skipLabel {
		first = first[1:]
	}
	if !isNumericRow(first) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyMatrix, path)
	}

	var rows [][]float64
	width := 0
	for i, rec := range records {
		if skipLabel {
			rec = rec[1:]
		}
		vals := make([]float64, 0, len(rec))
		for _, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("counts matrix row %d: %w", i+1, err)
			}
			vals = append(vals, v)
		}
		if width == 0 {
			width = len(vals)
		} else if len(vals) != width {
			return nil, fmt.Errorf("counts matrix row %d: got %d columns, want %d", i+1, len(vals), width)
		}
		rows = append(rows, vals)
	}
	if width == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyMatrix, path)
	}

	data := make([]float64, 0, len(rows)*width)
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), width, data), nil
}

// isNumericRow reports whether every non-empty field parses as a float.
func isNumericRow(rec []string) bool {
	for _, field := range rec {
		s := strings.TrimSpace(field)
		if s == "" {
			continue
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return false
		}
	}
	return true
}

// hasLabelColumn reports whether the first column holds row labels rather
// than counts. One numeric value anywhere in the column means it is data.
func hasLabelColumn(records [][]string) bool {
	sawField := false
	for _, rec := range records {
		if len(rec) < 2 {
			return false
		}
		s := strings.TrimSpace(rec[0])
		if s == "" {
			continue
		}
		sawField = true
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return false
		}
	}
	return sawField
}
