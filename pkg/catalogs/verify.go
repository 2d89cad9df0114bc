package catalogs

import (
	stderrors "errors"
	"fmt"
	"math"

	"github.com/igmhub/lyafits/pkg/errors"
	"github.com/igmhub/lyafits/pkg/logging"
)

// VerifyTolerance is the relative tolerance used when comparing a scan
// grid's minimum chi-squared to the reported best-fit value. Published
// files round the two independently, so exact equality is not required.
const VerifyTolerance = 1e-6

// VerifyFit checks that the fit's scan grid, when present, is consistent
// with its own scalar best-fit chi-squared: the grid minimum must match
// the reported value within VerifyTolerance.
func (cat *catalog) VerifyFit(id PublicationID, variant string) error {
	fit, err := cat.Lookup(id, variant)
	if err != nil {
		return err
	}

	min, ok := fit.ScanMinimum()
	if !ok {
		return nil // No grid published, nothing to cross-check
	}

	if !withinTolerance(min.ChiSquared, fit.ChiSquared) {
		key := FitKey{Publication: id, Variant: variant}
		return errors.NewValidationError(key.String(), min.ChiSquared,
			fmt.Sprintf("scan grid minimum %g does not match best-fit chi2 %g",
				min.ChiSquared, fit.ChiSquared))
	}
	return nil
}

// Verify runs VerifyFit over every (publication, variant) pair in the
// catalog and joins all failures.
func (cat *catalog) Verify() error {
	var errs []error
	for _, key := range cat.Keys() {
		if err := cat.VerifyFit(key.Publication, key.Variant); err != nil {
			logging.Warn().
				Str("fit", key.String()).
				Err(err).
				Msg("Fit failed verification")
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// withinTolerance reports whether a and b agree within VerifyTolerance,
// relative to their magnitude.
func withinTolerance(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= VerifyTolerance*math.Max(scale, 1)
}
