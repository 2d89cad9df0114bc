package catalogs

import (
	"fmt"
	"strings"
)

// PublicationID is the unique identifier of a publication, conventionally
// first-author surname plus year (e.g. "bautista2017").
type PublicationID string

// String returns the string representation of a PublicationID.
func (id PublicationID) String() string {
	return string(id)
}

// Release identifies the survey data release a publication's fits were
// produced from.
type Release string

// Known survey data releases.
const (
	ReleaseDR12 Release = "DR12" // BOSS data release 12
	ReleaseDR14 Release = "DR14" // eBOSS data release 14
)

// ColumnOrder describes the column layout of a publication's 2D scan files.
// The order differs between publications and is read from the catalog
// metadata, never assumed from the file itself.
type ColumnOrder string

const (
	// ColumnsPerpFirst means scan rows are (alpha_perp, alpha_parallel, chi2).
	ColumnsPerpFirst ColumnOrder = "at_ap"
	// ColumnsParallelFirst means scan rows are (alpha_parallel, alpha_perp, chi2).
	ColumnsParallelFirst ColumnOrder = "ap_at"
)

// Valid reports whether the column order is one of the documented layouts.
func (c ColumnOrder) Valid() bool {
	return c == ColumnsPerpFirst || c == ColumnsParallelFirst
}

// Publication represents one published paper and the fit artifacts that
// accompany it. All fields are sourced from static metadata at load time
// and are read-only thereafter.
type Publication struct {
	ID          PublicationID `json:"id" yaml:"id"`
	Title       string        `json:"title,omitempty" yaml:"title,omitempty"`
	ArXiv       string        `json:"arxiv,omitempty" yaml:"arxiv,omitempty"`     // arXiv identifier, e.g. "1702.00176"
	DOI         string        `json:"doi,omitempty" yaml:"doi,omitempty"`         // journal DOI when published
	Authors     []string      `json:"authors,omitempty" yaml:"authors,omitempty"` // leading authors as listed on the paper
	Release     Release       `json:"release" yaml:"release"`                     // survey data release (DR12, DR14)
	ScanColumns ColumnOrder   `json:"scan_columns" yaml:"scan_columns"`           // column layout of this paper's scan files
	Variants    []string      `json:"variants" yaml:"variants"`                   // fit variants published with the paper
}

// HasVariant reports whether the publication lists the given fit variant.
func (p *Publication) HasVariant(variant string) bool {
	for _, v := range p.Variants {
		if v == variant {
			return true
		}
	}
	return false
}

// Validate checks the publication metadata for internal consistency.
func (p *Publication) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return fmt.Errorf("publication id must not be empty")
	}
	if !p.ScanColumns.Valid() {
		return fmt.Errorf("publication %s: unknown scan column order %q", p.ID, p.ScanColumns)
	}
	if len(p.Variants) == 0 {
		return fmt.Errorf("publication %s: no fit variants listed", p.ID)
	}
	return nil
}
