package lyafits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igmhub/lyafits/pkg/catalogs"
	"github.com/igmhub/lyafits/pkg/errors"
)

func TestNew(t *testing.T) {
	archive, err := New()
	require.NoError(t, err)
	require.NotNil(t, archive)

	cat, err := archive.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 4, cat.Publications().Len())
}

func TestNewWithCatalog(t *testing.T) {
	archive, err := New(WithCatalog(catalogs.NewEmpty()))
	require.NoError(t, err)

	_, err = archive.Lookup("bautista2017", "physical")
	assert.True(t, errors.IsNotFound(err))
}

func TestNewWithLocalPathMissing(t *testing.T) {
	_, err := New(WithLocalPath("/nonexistent/lyafits-catalog"))
	require.Error(t, err)
}

func TestLookup(t *testing.T) {
	archive, err := New()
	require.NoError(t, err)

	tests := []struct {
		id       catalogs.PublicationID
		variant  string
		wantChi2 float64
		wantNdof int
		hasScan  bool
	}{
		{"bautista2017", "physical", 1556.499, 1590, true},
		{"bautista2017", "combined_fit", 2462.262, 2504, true},
		{"dumasdesbourboux2017", "cross_alone_stdFit", 2576.312, 2504, true},
		{"dumasdesbourboux2017", "combined_stdFit", 3833.157, 3756, false},
		{"desainteagathe2019", "physical", 1833.309, 1869, true},
		{"desainteagathe2019", "combined_stdFit", 3231.593, 0, true},
		{"blomqvist2019", "cross_alone_stdFit", 1768.292, 1734, true},
		{"blomqvist2019", "combined_stdFit", 3601.759, 3599, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.id)+"/"+tt.variant, func(t *testing.T) {
			fit, err := archive.Lookup(tt.id, tt.variant)
			require.NoError(t, err)
			assert.Equal(t, tt.wantChi2, fit.ChiSquared)
			assert.Equal(t, tt.wantNdof, fit.DegreesOfFreedom)
			assert.Equal(t, tt.hasScan, fit.HasScan())
		})
	}
}

func TestLookupNotFound(t *testing.T) {
	archive, err := New()
	require.NoError(t, err)

	_, err = archive.Lookup("nosuch1999", "physical")
	assert.True(t, errors.IsNotFound(err), "unknown publication")

	_, err = archive.Lookup("bautista2017", "nosuch")
	assert.True(t, errors.IsNotFound(err), "unknown variant")
}

func TestScan(t *testing.T) {
	archive, err := New()
	require.NoError(t, err)

	sr, err := archive.Scan("bautista2017", "physical")
	require.NoError(t, err)
	defer sr.Close()

	n := 0
	for sr.Next() {
		n++
	}
	require.NoError(t, sr.Err())
	assert.Equal(t, 81, n)
}

func TestVerify(t *testing.T) {
	archive, err := New()
	require.NoError(t, err)

	assert.NoError(t, archive.Verify())
}

func TestCatalogIsACopy(t *testing.T) {
	archive, err := New()
	require.NoError(t, err)

	cat, err := archive.Catalog()
	require.NoError(t, err)

	// Mutating the returned catalog must not affect the archive.
	cat.Publications().Clear()

	again, err := archive.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 4, again.Publications().Len())
}
