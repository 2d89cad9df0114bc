package catalogs

import (
	stderrors "errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/igmhub/lyafits/pkg/errors"
)

// readChisq reads and parses a scalar chi-squared file. It returns the
// best-fit chi-squared and, when the file carries a second field, the
// number of degrees of freedom.
func readChisq(fsys fs.FS, path string) (float64, int, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return 0, 0, errors.NewNotFoundError("chisq file", path)
		}
		return 0, 0, errors.WrapIO("read", path, err)
	}
	return parseChisq(path, data)
}

// parseChisq parses the contents of a .chisq file: the first non-blank,
// non-comment line holds the chi-squared value, optionally followed by
// the number of degrees of freedom.
func parseChisq(path string, data []byte) (float64, int, error) {
	for i, line := range strings.Split(string(data), "\n") {
		text := strings.TrimSpace(line)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) > 2 {
			return 0, 0, &errors.ParseError{
				Format:  "chisq",
				File:    path,
				Line:    i + 1,
				Message: "expected chi2 with optional ndof, got " + strconv.Itoa(len(fields)) + " fields",
			}
		}

		chi2, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, 0, &errors.ParseError{
				Format:  "chisq",
				File:    path,
				Line:    i + 1,
				Message: "invalid chi-squared value " + strconv.Quote(fields[0]),
				Err:     err,
			}
		}

		ndof := 0
		if len(fields) == 2 {
			ndof, err = strconv.Atoi(fields[1])
			if err != nil || ndof < 0 {
				return 0, 0, &errors.ParseError{
					Format:  "chisq",
					File:    path,
					Line:    i + 1,
					Message: "invalid degrees of freedom " + strconv.Quote(fields[1]),
					Err:     err,
				}
			}
		}

		return chi2, ndof, nil
	}

	return 0, 0, &errors.ParseError{
		Format:  "chisq",
		File:    path,
		Message: "no chi-squared value found",
	}
}
