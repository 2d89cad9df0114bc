package catalogs

import (
	"testing"
	"testing/fstest"

	"github.com/igmhub/lyafits/pkg/errors"
)

func TestParseScanRow(t *testing.T) {
	t.Run("perp first", func(t *testing.T) {
		p, err := parseScanRow("0.95 1.05 14.25", ColumnsPerpFirst)
		if err != nil {
			t.Fatalf("parseScanRow() error = %v", err)
		}
		if p.AlphaPerp != 0.95 || p.AlphaParallel != 1.05 || p.ChiSquared != 14.25 {
			t.Errorf("point = %+v, want at=0.95 ap=1.05 chi2=14.25", p)
		}
	})

	t.Run("parallel first", func(t *testing.T) {
		p, err := parseScanRow("0.95 1.05 14.25", ColumnsParallelFirst)
		if err != nil {
			t.Fatalf("parseScanRow() error = %v", err)
		}
		if p.AlphaParallel != 0.95 || p.AlphaPerp != 1.05 || p.ChiSquared != 14.25 {
			t.Errorf("point = %+v, want ap=0.95 at=1.05 chi2=14.25", p)
		}
	})

	t.Run("bad rows", func(t *testing.T) {
		rows := []string{
			"0.95 1.05",         // too few columns
			"0.95 1.05 14.25 7", // too many columns
			"0.95 oops 14.25",   // non-numeric
		}
		for _, row := range rows {
			if _, err := parseScanRow(row, ColumnsPerpFirst); err == nil {
				t.Errorf("parseScanRow(%q) error = nil, want failure", row)
			}
		}
	})

	t.Run("unknown column order", func(t *testing.T) {
		if _, err := parseScanRow("1 1 1", ColumnOrder("sideways")); err == nil {
			t.Error("parseScanRow() error = nil, want failure")
		}
	})
}

func TestScanReader(t *testing.T) {
	cat := newTestCatalog(t)

	sr, err := cat.Scan("beta2021", "cross")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	defer sr.Close()

	if sr.Columns() != ColumnsParallelFirst {
		t.Errorf("Columns() = %q, want %q", sr.Columns(), ColumnsParallelFirst)
	}

	var points []ScanPoint
	for sr.Next() {
		points = append(points, sr.Point())
	}
	if err := sr.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	// The fixture has a comment line that must be skipped.
	if len(points) != 2 {
		t.Fatalf("read %d points, want 2", len(points))
	}
	if points[1].ChiSquared != 5.25 {
		t.Errorf("points[1].ChiSquared = %g, want 5.25", points[1].ChiSquared)
	}
}

func TestScanReaderRestartable(t *testing.T) {
	cat := newTestCatalog(t)

	read := func() []ScanPoint {
		sr, err := cat.Scan("alpha2020", "physical")
		if err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		defer sr.Close()
		var points []ScanPoint
		for sr.Next() {
			points = append(points, sr.Point())
		}
		if err := sr.Err(); err != nil {
			t.Fatalf("Err() = %v", err)
		}
		return points
	}

	first := read()
	second := read()
	if len(first) != len(second) {
		t.Fatalf("first read %d points, second %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs between reads: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestScanReaderMalformedRow(t *testing.T) {
	fsys := testCatalogFS()
	fsys["publications/alpha2020/physical..at.ap.scan.dat"] = &fstest.MapFile{
		Data: []byte("0.95 1.00 14.0\n1.00 oops 12.5\n"),
	}

	cat, err := New(WithFS(fsys))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sr, err := cat.Scan("alpha2020", "physical")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	defer sr.Close()

	if !sr.Next() {
		t.Fatal("Next() = false on the valid first row")
	}
	if sr.Next() {
		t.Fatal("Next() = true on the malformed row")
	}

	err = sr.Err()
	if !errors.IsMalformedData(err) {
		t.Fatalf("Err() = %v, want malformed data", err)
	}
	var parseErr *errors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Err() = %v, want *errors.ParseError", err)
	}
	if parseErr.Line != 2 {
		t.Errorf("Line = %d, want 2", parseErr.Line)
	}

	// After an error Next stays false.
	if sr.Next() {
		t.Error("Next() = true after an error")
	}
}

func TestScanMissingFile(t *testing.T) {
	cat := newTestCatalog(t)

	// alpha2020/combined has a chisq file but no scan grid.
	_, err := cat.Scan("alpha2020", "combined")
	if !errors.IsNotFound(err) {
		t.Errorf("Scan() error = %v, want not found", err)
	}
}

func TestScanUnknownPair(t *testing.T) {
	cat := newTestCatalog(t)

	if _, err := cat.Scan("nosuch1999", "physical"); !errors.IsNotFound(err) {
		t.Errorf("unknown publication: error = %v, want not found", err)
	}
	if _, err := cat.Scan("alpha2020", "nosuch"); !errors.IsNotFound(err) {
		t.Errorf("unknown variant: error = %v, want not found", err)
	}
}
