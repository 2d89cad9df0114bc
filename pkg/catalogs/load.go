package catalogs

import (
	"io/fs"
	"path"

	"github.com/goccy/go-yaml"

	"github.com/igmhub/lyafits/pkg/errors"
)

// File naming conventions of the published data, as documented in the
// source repository's README.
const (
	publicationsFile = "publications.yaml"
	publicationsDir  = "publications"
	chisqExt         = ".chisq"
	scanExt          = "..at.ap.scan.dat"
)

// chisqPath returns the catalog path of a fit's scalar chi-squared file.
func chisqPath(id PublicationID, variant string) string {
	return path.Join(publicationsDir, string(id), variant+chisqExt)
}

// scanPath returns the catalog path of a fit's 2D scan file.
func scanPath(id PublicationID, variant string) string {
	return path.Join(publicationsDir, string(id), variant+scanExt)
}

// Load loads the publication metadata from the configured filesystem.
// Fit artifacts are not read here; they are parsed on Lookup/Scan so
// that malformed files surface to the caller that asked for them.
func (cat *catalog) Load() error {
	if cat.options.readFS == nil {
		return nil // Empty catalog - nothing to load
	}

	data, err := fs.ReadFile(cat.options.readFS, publicationsFile)
	if err != nil {
		return errors.WrapIO("read", publicationsFile, err)
	}

	var pubs []Publication
	if err := yaml.Unmarshal(data, &pubs); err != nil {
		return errors.WrapParse("yaml", publicationsFile, err)
	}

	for i := range pubs {
		if err := pubs[i].Validate(); err != nil {
			return errors.WrapValidation(publicationsFile, err)
		}
		if err := cat.publications.Set(pubs[i].ID, &pubs[i]); err != nil {
			return errors.WrapResource("load", "publication", string(pubs[i].ID), err)
		}
	}
	return nil
}
