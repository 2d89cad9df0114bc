// Package lyafits provides programmatic access to published Lyman-alpha
// forest correlation-function fit results: best-fit chi-squared values and
// 2D (alpha_parallel, alpha_perp) scan grids from the BOSS DR12 and eBOSS
// DR14 papers.
//
// The default archive is backed by the data files embedded in the binary:
//
//	archive, err := lyafits.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fit, err := archive.Lookup("bautista2017", "physical")
package lyafits

import (
	"fmt"
	"sync"

	"github.com/igmhub/lyafits/pkg/catalogs"
)

// Archive is read-only access to a catalog of published fit results.
type Archive interface {
	// Catalog returns a copy of the underlying catalog.
	Catalog() (catalogs.Catalog, error)

	// Lookup resolves a (publication, variant) pair to its fit result.
	Lookup(id catalogs.PublicationID, variant string) (catalogs.FitResult, error)

	// Scan returns a lazy, restartable reader over a fit's 2D scan grid.
	Scan(id catalogs.PublicationID, variant string) (*catalogs.ScanReader, error)

	// Verify cross-checks every published scan grid against its
	// reported best-fit chi-squared.
	Verify() error
}

// archive is the internal implementation of the Archive interface
type archive struct {
	mu      sync.RWMutex
	catalog catalogs.Catalog
	config  *config
}

// New creates a new Archive instance with the given options. Without
// options it serves the embedded copy of the published data.
func New(opts ...Option) (Archive, error) {
	a := &archive{
		config: defaultConfig(),
	}

	if err := a.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	// Use provided catalog or create one from the configured source
	switch {
	case a.config.initialCatalog != nil:
		a.catalog = *a.config.initialCatalog
	case a.config.localPath != "":
		cat, err := catalogs.NewFromPath(a.config.localPath)
		if err != nil {
			return nil, fmt.Errorf("loading catalog from %s: %w", a.config.localPath, err)
		}
		a.catalog = cat
	default:
		cat, err := catalogs.NewEmbedded()
		if err != nil {
			return nil, fmt.Errorf("loading embedded catalog: %w", err)
		}
		a.catalog = cat
	}

	return a, nil
}

// Catalog returns a copy of the current catalog.
func (a *archive) Catalog() (catalogs.Catalog, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.catalog.Copy()
}

// Lookup resolves a (publication, variant) pair to its fit result.
func (a *archive) Lookup(id catalogs.PublicationID, variant string) (catalogs.FitResult, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.catalog.Lookup(id, variant)
}

// Scan returns a lazy reader over a fit's 2D scan grid.
func (a *archive) Scan(id catalogs.PublicationID, variant string) (*catalogs.ScanReader, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.catalog.Scan(id, variant)
}

// Verify cross-checks every published pair in the catalog.
func (a *archive) Verify() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.catalog.Verify()
}
