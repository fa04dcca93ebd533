package diagplot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCellSizeHistogram(t *testing.T) {
	t.Parallel()

	sizes := []float64{100, 250, 250, 900, 1200, 450, 300, 310}
	path := filepath.Join(t.TempDir(), "sizes.png")

	if err := CellSizeHistogram(sizes, path); err != nil {
		t.Fatalf("CellSizeHistogram failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("figure not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("figure file is empty")
	}
}

func TestCellSizeHistogramSVG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sizes.svg")
	if err := CellSizeHistogram([]float64{1, 2, 3}, path); err != nil {
		t.Fatalf("CellSizeHistogram failed for svg: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("svg figure not written: %v", err)
	}
}

func TestCellSizeHistogramNoData(t *testing.T) {
	t.Parallel()

	err := CellSizeHistogram(nil, filepath.Join(t.TempDir(), "empty.png"))
	if !errors.Is(err, ErrNoData) {
		t.Errorf("CellSizeHistogram(nil) = %v, want %v", err, ErrNoData)
	}
}

func TestCellSizeHistogramBadPath(t *testing.T) {
	t.Parallel()

	err := CellSizeHistogram([]float64{1, 2}, filepath.Join(t.TempDir(), "no", "dir", "out.png"))
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}
