package catalogs

import "fmt"

// ScanPoint is one node of a 2D chi-squared scan grid over the two
// scale-distortion parameters of a correlation-function fit.
type ScanPoint struct {
	AlphaParallel float64 `json:"alpha_parallel" yaml:"alpha_parallel"` // scale distortion along the line of sight
	AlphaPerp     float64 `json:"alpha_perp" yaml:"alpha_perp"`         // scale distortion across the line of sight
	ChiSquared    float64 `json:"chi2" yaml:"chi2"`
}

// FitResult is one published fit: the scalar best-fit chi-squared and,
// when the paper published one, the full 2D scan grid in file order.
type FitResult struct {
	Publication PublicationID `json:"publication" yaml:"publication"`
	Variant     string        `json:"variant" yaml:"variant"`
	ChiSquared  float64       `json:"chi2" yaml:"chi2"`
	// DegreesOfFreedom is the second field of the .chisq file when the
	// paper reports one; zero otherwise.
	DegreesOfFreedom int         `json:"ndof,omitempty" yaml:"ndof,omitempty"`
	Scan             []ScanPoint `json:"scan,omitempty" yaml:"scan,omitempty"`
}

// HasScan reports whether the fit has an associated 2D scan grid.
func (f *FitResult) HasScan() bool {
	return len(f.Scan) > 0
}

// ScanMinimum returns the grid point with the smallest chi-squared.
// The second return is false when the fit has no scan.
func (f *FitResult) ScanMinimum() (ScanPoint, bool) {
	if len(f.Scan) == 0 {
		return ScanPoint{}, false
	}
	min := f.Scan[0]
	for _, p := range f.Scan[1:] {
		if p.ChiSquared < min.ChiSquared {
			min = p
		}
	}
	return min, true
}

// FitKey identifies one (publication, variant) pair in the catalog.
type FitKey struct {
	Publication PublicationID `json:"publication" yaml:"publication"`
	Variant     string        `json:"variant" yaml:"variant"`
}

// String returns the conventional "publication/variant" form.
func (k FitKey) String() string {
	return fmt.Sprintf("%s/%s", k.Publication, k.Variant)
}
