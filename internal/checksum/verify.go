package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ChunkSize is the read size used while hashing.
const ChunkSize = 8192

// SHA256 is the only algorithm Verify accepts.
const SHA256 = "sha256"

// Result is the outcome of a verification.
type Result int

const (
	Valid Result = iota + 1
	Invalid
	FileNotInManifest
)

func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case FileNotInManifest:
		return "not in manifest"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// ProgressFunc observes hashing progress. total is the file size at open time.
type ProgressFunc func(done, total int64)

// VerifyOptions tunes Verify. The zero value hashes with SHA-256 and looks the
// archive up by its base name.
type VerifyOptions struct {
	// Name is the manifest key; defaults to filepath.Base(archivePath).
	Name      string
	Algorithm string
	Progress  ProgressFunc
}

// Verification describes a completed check.
type Verification struct {
	Result   Result
	Name     string
	Expected string
	Actual   string
	Bytes    int64
}

// Err returns nil for Valid and a descriptive error otherwise.
func (v *Verification) Err() error {
	switch v.Result {
	case Valid:
		return nil
	case FileNotInManifest:
		return &NotFoundError{Name: v.Name}
	default:
		return &MismatchError{Name: v.Name, Expected: v.Expected, Actual: v.Actual}
	}
}

// Verify hashes archivePath and compares it to its manifest entry. The file is
// opened read-only and consumed in full; a missing manifest entry is reported
// before the file is read.
var Verify = func(archivePath string, m *Manifest, opts VerifyOptions) (*Verification, error) {
	if m == nil {
		return nil, errors.New("verify: nil manifest")
	}
	h, err := newHasher(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(archivePath)
	}
	v := &Verification{Name: name}

	expected, ok := m.Lookup(name)
	if !ok {
		v.Result = FileNotInManifest
		return v, nil
	}
	v.Expected = expected

	actual, n, err := hashFile(archivePath, h, opts.Progress)
	if err != nil {
		return nil, err
	}
	v.Actual = actual
	v.Bytes = n

	if strings.EqualFold(actual, expected) {
		v.Result = Valid
	} else {
		v.Result = Invalid
	}
	return v, nil
}

// Sum returns the lowercase hex SHA-256 of the file at path.
func Sum(path string) (string, error) {
	sum, _, err := hashFile(path, sha256.New(), nil)
	return sum, err
}

func newHasher(algorithm string) (hash.Hash, error) {
	switch strings.ToLower(algorithm) {
	case "", SHA256:
		return sha256.New(), nil
	default:
		return nil, &AlgorithmError{Algorithm: algorithm}
	}
}

func hashFile(path string, h hash.Hash, progress ProgressFunc) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	total := info.Size()

	buf := make([]byte, ChunkSize)
	var done int64
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			done += int64(n)
			if progress != nil {
				progress(done, total)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", done, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), done, nil
}
