package catalogs

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/igmhub/lyafits/pkg/errors"
)

// scanColumnCount is the documented column count of a scan row:
// two scale-distortion parameters and the chi-squared.
const scanColumnCount = 3

// ScanReader iterates over a fit's 2D scan grid lazily, in file order,
// in the bufio.Scanner idiom:
//
//	sr, err := cat.Scan("bautista2017", "physical")
//	if err != nil { ... }
//	defer sr.Close()
//	for sr.Next() {
//	    p := sr.Point()
//	    ...
//	}
//	if err := sr.Err(); err != nil { ... }
//
// Readers are independent; every Scan call reopens the file from the
// beginning.
type ScanReader struct {
	file    fs.File
	scanner *bufio.Scanner
	columns ColumnOrder
	path    string
	line    int
	point   ScanPoint
	err     error
}

// newScanReader opens the scan file at path and prepares iteration.
func newScanReader(fsys fs.FS, path string, columns ColumnOrder) (*ScanReader, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError("scan file", path)
		}
		return nil, errors.WrapIO("open", path, err)
	}

	return &ScanReader{
		file:    f,
		scanner: bufio.NewScanner(f),
		columns: columns,
		path:    path,
	}, nil
}

// Next advances to the next grid point. It returns false at end of file
// or on the first malformed row; Err distinguishes the two.
func (r *ScanReader) Next() bool {
	if r.err != nil {
		return false
	}

	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		point, err := parseScanRow(text, r.columns)
		if err != nil {
			r.err = &errors.ParseError{
				Format:  "scan",
				File:    r.path,
				Line:    r.line,
				Message: err.Error(),
				Err:     err,
			}
			return false
		}

		r.point = point
		return true
	}

	if err := r.scanner.Err(); err != nil {
		r.err = errors.WrapIO("read", r.path, err)
	}
	return false
}

// Point returns the grid point read by the last successful Next.
func (r *ScanReader) Point() ScanPoint {
	return r.point
}

// Err returns the first error encountered during iteration, if any.
func (r *ScanReader) Err() error {
	return r.err
}

// Columns returns the column order the reader parses rows with.
func (r *ScanReader) Columns() ColumnOrder {
	return r.columns
}

// Close releases the underlying file handle.
func (r *ScanReader) Close() error {
	return r.file.Close()
}

// parseScanRow parses one whitespace-separated scan row according to the
// publication's column order. The chi-squared is always the third column.
func parseScanRow(text string, columns ColumnOrder) (ScanPoint, error) {
	fields := strings.Fields(text)
	if len(fields) != scanColumnCount {
		return ScanPoint{}, fmt.Errorf("expected %d columns, got %d", scanColumnCount, len(fields))
	}

	values := make([]float64, scanColumnCount)
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return ScanPoint{}, fmt.Errorf("invalid value %q in column %d", field, i+1)
		}
		values[i] = v
	}

	point := ScanPoint{ChiSquared: values[2]}
	switch columns {
	case ColumnsParallelFirst:
		point.AlphaParallel = values[0]
		point.AlphaPerp = values[1]
	case ColumnsPerpFirst:
		point.AlphaPerp = values[0]
		point.AlphaParallel = values[1]
	default:
		return ScanPoint{}, fmt.Errorf("unknown scan column order %q", columns)
	}
	return point, nil
}

// readScan reads a whole scan file into memory in file order.
func readScan(fsys fs.FS, path string, columns ColumnOrder) ([]ScanPoint, error) {
	r, err := newScanReader(fsys, path, columns)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var points []ScanPoint
	for r.Next() {
		points = append(points, r.Point())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
