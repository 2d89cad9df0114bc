package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("publication", "nosuch1999")

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError does not match ErrNotFound")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false, want true")
	}
	if IsMalformedData(err) {
		t.Error("IsMalformedData() = true for a not-found error")
	}

	want := "publication with ID nosuch1999 not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseError(t *testing.T) {
	inner := errors.New("bad float")
	err := &ParseError{
		Format:  "scan",
		File:    "publications/alpha2020/physical..at.ap.scan.dat",
		Line:    7,
		Message: "invalid value",
		Err:     inner,
	}

	if !errors.Is(err, ErrMalformedData) {
		t.Error("ParseError does not match ErrMalformedData")
	}
	if !IsMalformedData(err) {
		t.Error("IsMalformedData() = false, want true")
	}
	if !errors.Is(err, inner) {
		t.Error("ParseError does not unwrap to its cause")
	}

	t.Run("message forms", func(t *testing.T) {
		withLine := err.Error()
		if withLine != "parse error in scan file publications/alpha2020/physical..at.ap.scan.dat line 7: invalid value" {
			t.Errorf("unexpected message: %q", withLine)
		}

		noLine := (&ParseError{Format: "yaml", File: "publications.yaml", Message: "bad"}).Error()
		if noLine != "parse error in yaml file publications.yaml: bad" {
			t.Errorf("unexpected message: %q", noLine)
		}

		noFile := (&ParseError{Format: "chisq", Message: "bad"}).Error()
		if noFile != "chisq parse error: bad" {
			t.Errorf("unexpected message: %q", noFile)
		}
	})
}

func TestParseErrorThroughWrapping(t *testing.T) {
	// The malformed-data classification must survive fmt.Errorf wrapping.
	err := fmt.Errorf("looking up fit: %w", NewParseError("chisq", "x.chisq", "bad value", nil))
	if !IsMalformedData(err) {
		t.Error("IsMalformedData() = false through a wrap, want true")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatal("errors.As failed to recover *ParseError")
	}
	if parseErr.File != "x.chisq" {
		t.Errorf("File = %q, want x.chisq", parseErr.File)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("alpha2020/physical", 12.5, "grid minimum mismatch")

	if !IsValidationError(err) {
		t.Error("IsValidationError() = false, want true")
	}
	if IsNotFound(err) || IsMalformedData(err) {
		t.Error("validation error matched an unrelated sentinel")
	}
}

func TestIOError(t *testing.T) {
	inner := errors.New("permission denied")
	err := NewIOError("read", "publications.yaml", inner)

	if !errors.Is(err, inner) {
		t.Error("IOError does not unwrap to its cause")
	}
	want := "IO error during read of publications.yaml: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapHelpers(t *testing.T) {
	if WrapIO("read", "x", nil) != nil {
		t.Error("WrapIO(nil) != nil")
	}
	if WrapParse("yaml", "x", nil) != nil {
		t.Error("WrapParse(nil) != nil")
	}
	if WrapResource("load", "catalog", "", nil) != nil {
		t.Error("WrapResource(nil) != nil")
	}
	if WrapValidation("x", nil) != nil {
		t.Error("WrapValidation(nil) != nil")
	}

	cause := errors.New("boom")
	if !errors.Is(WrapIO("read", "x", cause), cause) {
		t.Error("WrapIO does not preserve the cause")
	}
	if !IsMalformedData(WrapParse("yaml", "x", cause)) {
		t.Error("WrapParse result is not malformed data")
	}
	if !IsValidationError(WrapValidation("x", cause)) {
		t.Error("WrapValidation result is not a validation error")
	}
}

func TestResourceError(t *testing.T) {
	cause := NewNotFoundError("fit", "alpha2020/physical")
	err := NewResourceError("save", "fit", "alpha2020/physical", cause)

	// Classification of the cause survives the resource wrapper.
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false through ResourceError, want true")
	}
}
