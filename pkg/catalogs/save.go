package catalogs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/igmhub/lyafits/pkg/errors"
	"github.com/igmhub/lyafits/pkg/logging"
)

// File and directory permissions used when exporting a catalog to disk.
const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Persistence provides the ability to export catalog data to disk.
type Persistence interface {
	// SaveTo writes the catalog metadata and all fit artifacts to a
	// directory in the published text layout.
	SaveTo(path string) error
}

// WriteChisq serializes a fit's scalar best-fit line in the published
// .chisq layout.
func WriteChisq(w io.Writer, fit FitResult) error {
	var err error
	if fit.DegreesOfFreedom > 0 {
		_, err = fmt.Fprintf(w, "%g %d\n", fit.ChiSquared, fit.DegreesOfFreedom)
	} else {
		_, err = fmt.Fprintf(w, "%g\n", fit.ChiSquared)
	}
	return err
}

// WriteScan serializes a fit's scan grid back to the published text
// layout: one row per grid point, in the fit's original order, with the
// given column order. Re-parsing the output yields an identical grid.
func WriteScan(w io.Writer, fit FitResult, columns ColumnOrder) error {
	if !columns.Valid() {
		return errors.NewValidationError("scan_columns", columns,
			fmt.Sprintf("unknown scan column order %q", columns))
	}

	for _, p := range fit.Scan {
		var err error
		switch columns {
		case ColumnsParallelFirst:
			_, err = fmt.Fprintf(w, "%g %g %g\n", p.AlphaParallel, p.AlphaPerp, p.ChiSquared)
		case ColumnsPerpFirst:
			_, err = fmt.Fprintf(w, "%g %g %g\n", p.AlphaPerp, p.AlphaParallel, p.ChiSquared)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SaveTo writes the catalog to the specified directory: publications.yaml
// plus one .chisq and one scan file per published pair.
func (cat *catalog) SaveTo(basePath string) error {
	if basePath == "" {
		return &errors.ConfigError{
			Component: "catalog",
			Message:   "no path given for saving",
		}
	}

	// Publication metadata, sorted for a stable file.
	pubs := cat.publications.List()
	sort.Slice(pubs, func(i, j int) bool { return pubs[i].ID < pubs[j].ID })

	out := make([]Publication, len(pubs))
	for i, p := range pubs {
		out[i] = *p
	}

	yamlData, err := yaml.Marshal(out)
	if err != nil {
		return errors.WrapParse("yaml", publicationsFile, err)
	}
	if err := writeFile(basePath, publicationsFile, yamlData); err != nil {
		return err
	}

	// Fit artifacts.
	for _, key := range cat.Keys() {
		fit, err := cat.Lookup(key.Publication, key.Variant)
		if err != nil {
			return errors.WrapResource("save", "fit", key.String(), err)
		}

		pub, _ := cat.publications.Get(key.Publication)

		var chisqBuf, scanBuf bytes.Buffer
		if err := WriteChisq(&chisqBuf, fit); err != nil {
			return errors.WrapIO("write", chisqPath(key.Publication, key.Variant), err)
		}
		if err := writeFile(basePath, chisqPath(key.Publication, key.Variant), chisqBuf.Bytes()); err != nil {
			return err
		}

		if !fit.HasScan() {
			continue
		}
		if err := WriteScan(&scanBuf, fit, pub.ScanColumns); err != nil {
			return errors.WrapIO("write", scanPath(key.Publication, key.Variant), err)
		}
		if err := writeFile(basePath, scanPath(key.Publication, key.Variant), scanBuf.Bytes()); err != nil {
			return err
		}
	}

	logging.Debug().
		Str("path", basePath).
		Int("publications", cat.publications.Len()).
		Msg("Saved catalog")

	return nil
}

// writeFile writes data under basePath, creating parent directories.
func writeFile(basePath, relPath string, data []byte) error {
	fullPath := filepath.Join(basePath, filepath.FromSlash(relPath))
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	if err := os.WriteFile(fullPath, data, filePermissions); err != nil {
		return errors.WrapIO("write", fullPath, err)
	}
	return nil
}
