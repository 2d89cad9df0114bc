package lyafits

import "github.com/igmhub/lyafits/pkg/catalogs"

// config holds the archive configuration assembled from options.
type config struct {
	localPath      string
	initialCatalog *catalogs.Catalog
}

// defaultConfig returns the default archive configuration.
func defaultConfig() *config {
	return &config{}
}

// Option configures an Archive.
type Option func(*config) error

// options applies the given options to the archive configuration.
func (a *archive) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(a.config); err != nil {
			return err
		}
	}
	return nil
}

// WithLocalPath serves the catalog from a directory on disk instead of
// the embedded copy.
func WithLocalPath(path string) Option {
	return func(c *config) error {
		c.localPath = path
		return nil
	}
}

// WithCatalog uses an already-constructed catalog (useful for testing).
func WithCatalog(cat catalogs.Catalog) Option {
	return func(c *config) error {
		c.initialCatalog = &cat
		return nil
	}
}
