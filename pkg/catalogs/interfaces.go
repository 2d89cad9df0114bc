package catalogs

// Reader provides read-only access to catalog data.
type Reader interface {
	// Publications lists all publications in the catalog.
	Publications() *Publications

	// Publication returns a publication by id.
	Publication(id PublicationID) (Publication, error)

	// Lookup resolves a (publication, variant) pair to its parsed fit
	// result, including the scalar best-fit chi-squared and the full
	// 2D scan grid when one is published.
	Lookup(id PublicationID, variant string) (FitResult, error)

	// Scan returns a lazy reader over the 2D scan grid in file order.
	// Each call reopens and re-reads the underlying file.
	Scan(id PublicationID, variant string) (*ScanReader, error)

	// Keys enumerates every (publication, variant) pair in the catalog.
	Keys() []FitKey
}

// Verifier checks the published data against its own summary values.
type Verifier interface {
	// VerifyFit checks that a fit's scan grid minimum matches its
	// reported best-fit chi-squared within tolerance.
	VerifyFit(id PublicationID, variant string) error

	// Verify runs VerifyFit over every pair in the catalog.
	Verify() error
}

// Copier provides catalog copying capabilities.
type Copier interface {
	// Return a copy of the catalog
	Copy() (Catalog, error)
}

// Catalog is the complete read-only interface over published fit results.
// The published data is immutable; there is no write surface.
type Catalog interface {
	Reader
	Verifier
	Copier
}
