package checksum

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat    = errors.New("unsupported manifest format")
	ErrUnsupportedAlgorithm = errors.New("unsupported checksum algorithm")
	ErrMalformedLine        = errors.New("malformed manifest line")
	ErrEmptyManifest        = errors.New("manifest has no entries")
	ErrFileNotInManifest    = errors.New("file not in manifest")
	ErrDigestMismatch       = errors.New("digest mismatch")
)

// FormatError reports a manifest name or tag that maps to no known format.
type FormatError struct {
	Name string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported manifest format %q (expected sha256.txt, sha256sums.txt, bsd or gnu)", e.Name)
}

func (e *FormatError) Unwrap() error { return ErrUnsupportedFormat }

// AlgorithmError reports an algorithm other than SHA-256. Line is zero when the
// algorithm was requested by the caller rather than read from a manifest.
type AlgorithmError struct {
	Line      int
	Algorithm string
}

func (e *AlgorithmError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("unsupported checksum algorithm %q", e.Algorithm)
	}
	return fmt.Sprintf("line %d: unsupported checksum algorithm %q (only SHA256 is accepted)", e.Line, e.Algorithm)
}

func (e *AlgorithmError) Unwrap() error { return ErrUnsupportedAlgorithm }

// LineError reports a line that does not follow the layout of its format.
type LineError struct {
	Line   int
	Raw    string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Raw)
}

func (e *LineError) Unwrap() error { return ErrMalformedLine }

// NotFoundError reports a lookup key with no manifest entry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s is not listed in the checksum manifest", e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrFileNotInManifest }

type MismatchError struct {
	Name     string
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s: expected %s, got %s", e.Name, e.Expected, e.Actual)
}

func (e *MismatchError) Unwrap() error { return ErrDigestMismatch }
