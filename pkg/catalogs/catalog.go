// Package catalogs provides read-only access to published Lyman-alpha
// forest fit results: best-fit chi-squared values and 2D (alpha_parallel,
// alpha_perp) scan grids from correlation-function papers.
//
// A catalog resolves a (publication, variant) pair to its on-disk
// artifacts and parses them into typed structures. The data is immutable:
// entities are created once at data-publication time and only read
// thereafter, so catalogs are safe for concurrent use.
//
// Example usage:
//
//	// Open the embedded catalog (production use)
//	cat, err := catalogs.New(catalogs.WithEmbedded())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Look up a published fit
//	fit, err := cat.Lookup("bautista2017", "physical")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("chi2 = %g\n", fit.ChiSquared)
//
//	// Open a catalog from files on disk (development use)
//	cat, err = catalogs.NewFromPath("./internal/embedded/catalog")
package catalogs

import (
	"io/fs"
	"os"
	"sort"

	"github.com/igmhub/lyafits/pkg/errors"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Catalog     = (*catalog)(nil)
	_ Reader      = (*catalog)(nil)
	_ Verifier    = (*catalog)(nil)
	_ Copier      = (*catalog)(nil)
	_ Persistence = (*catalog)(nil)
)

// catalog is the single concrete implementation of the Catalog interface
// It can work as:
// - Empty catalog (readFS == nil)
// - Embedded catalog (readFS is embed.FS)
// - Files catalog (readFS is os.DirFS)
// - Custom catalog (readFS is any fs.FS implementation).
type catalog struct {
	options      *catalogOptions
	publications *Publications
}

// New creates a new catalog with the given options
// WithEmbedded() = embedded catalog with auto-load
// WithPath(path) = files catalog with auto-load.
func New(opts ...Option) (Catalog, error) {
	cat := &catalog{
		publications: NewPublications(),
		options:      catalogDefaults().apply(opts...),
	}

	// Auto-load if configured with a filesystem
	if cat.options.readFS != nil {
		if err := cat.Load(); err != nil {
			return nil, errors.WrapResource("load", "catalog", "", err)
		}
	}

	return cat, nil
}

// NewEmbedded creates a catalog backed by embedded files.
// This is the recommended catalog for production use as it includes
// all published fit data compiled into the binary.
func NewEmbedded() (Catalog, error) {
	return New(WithEmbedded())
}

// NewFromPath creates a catalog backed by files on disk.
// This is useful when working against a checkout of the published data
// rather than the embedded copy.
func NewFromPath(path string) (Catalog, error) {
	// Verify path exists
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}
	return New(WithPath(path))
}

// NewFromFS creates a catalog from a custom filesystem implementation.
//
// Example:
//
//	var myFS embed.FS
//	cat, err := catalogs.NewFromFS(myFS, "catalog")
func NewFromFS(fsys fs.FS, root string) (Catalog, error) {
	subFS, err := fs.Sub(fsys, root)
	if err != nil {
		return nil, errors.WrapResource("create", "sub filesystem", root, err)
	}
	return New(WithFS(subFS))
}

// NewEmpty creates an in-memory empty catalog with no backing filesystem.
// Lookups against it fail with NotFound; useful for tests.
func NewEmpty() Catalog {
	return &catalog{
		publications: NewPublications(),
		options:      catalogDefaults(),
	}
}

// Publications returns the publications collection.
func (cat *catalog) Publications() *Publications {
	return cat.publications
}

// Publication returns a publication by ID.
func (cat *catalog) Publication(id PublicationID) (Publication, error) {
	pub, ok := cat.publications.Get(id)
	if !ok {
		return Publication{}, &errors.NotFoundError{
			Resource: "publication",
			ID:       string(id),
		}
	}
	return *pub, nil
}

// Lookup resolves a (publication, variant) pair to its parsed fit result.
// The scalar chi-squared file is mandatory for every published pair; the
// scan grid is attached when the paper published one.
func (cat *catalog) Lookup(id PublicationID, variant string) (FitResult, error) {
	pub, err := cat.Publication(id)
	if err != nil {
		return FitResult{}, err
	}

	if !pub.HasVariant(variant) || cat.options.readFS == nil {
		return FitResult{}, &errors.NotFoundError{
			Resource: "fit",
			ID:       FitKey{Publication: id, Variant: variant}.String(),
		}
	}

	fit := FitResult{Publication: id, Variant: variant}

	chi2, ndof, err := readChisq(cat.options.readFS, chisqPath(id, variant))
	if err != nil {
		return FitResult{}, err
	}
	fit.ChiSquared = chi2
	fit.DegreesOfFreedom = ndof

	scan, err := readScan(cat.options.readFS, scanPath(id, variant), pub.ScanColumns)
	if err != nil {
		// A missing scan file just means the paper published no grid
		// for this variant.
		if !errors.IsNotFound(err) {
			return FitResult{}, err
		}
	}
	fit.Scan = scan

	return fit, nil
}

// Scan returns a lazy reader over the fit's 2D scan grid in file order.
// Each call reopens and re-reads the file, so readers are restartable.
func (cat *catalog) Scan(id PublicationID, variant string) (*ScanReader, error) {
	pub, err := cat.Publication(id)
	if err != nil {
		return nil, err
	}

	if !pub.HasVariant(variant) || cat.options.readFS == nil {
		return nil, &errors.NotFoundError{
			Resource: "fit",
			ID:       FitKey{Publication: id, Variant: variant}.String(),
		}
	}

	return newScanReader(cat.options.readFS, scanPath(id, variant), pub.ScanColumns)
}

// Keys enumerates every (publication, variant) pair in the catalog,
// sorted for stable output.
func (cat *catalog) Keys() []FitKey {
	var keys []FitKey
	cat.publications.ForEach(func(id PublicationID, pub *Publication) bool {
		for _, v := range pub.Variants {
			keys = append(keys, FitKey{Publication: id, Variant: v})
		}
		return true
	})

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Publication != keys[j].Publication {
			return keys[i].Publication < keys[j].Publication
		}
		return keys[i].Variant < keys[j].Variant
	})
	return keys
}
