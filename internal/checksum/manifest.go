package checksum

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Format identifies one of the supported checksum manifest layouts.
type Format int

const (
	// BSD lines look like "SHA256 (file) = digest", as written by BSD sha256 and `sha256sum --tag`.
	BSD Format = iota + 1
	// GNU lines look like "digest  file", as written by coreutils sha256sum.
	GNU
)

const (
	// BSDManifestName is the manifest filename Void publishes in BSD format.
	BSDManifestName = "sha256.txt"
	// GNUManifestName is the manifest filename Void publishes in GNU format.
	GNUManifestName = "sha256sums.txt"

	bsdAlgorithm = "SHA256"
	digestLen    = 64
)

func (f Format) String() string {
	switch f {
	case BSD:
		return "bsd"
	case GNU:
		return "gnu"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor maps a declared manifest filename, or an explicit "bsd"/"gnu" tag,
// to its format.
func FormatFor(name string) (Format, error) {
	switch base := filepath.Base(strings.TrimSpace(name)); {
	case base == BSDManifestName, strings.EqualFold(base, "bsd"):
		return BSD, nil
	case base == GNUManifestName, strings.EqualFold(base, "gnu"):
		return GNU, nil
	}
	return 0, &FormatError{Name: name}
}

// Entry is one filename/digest pair. Digest is lowercase hex.
type Entry struct {
	Filename string
	Digest   string
	Line     int
}

// Manifest maps filenames to expected SHA-256 digests. It is not modified after
// Parse returns.
type Manifest struct {
	format   Format
	entries  []Entry
	index    map[string]int
	warnings []string
}

func (m *Manifest) Format() Format { return m.format }

func (m *Manifest) Len() int { return len(m.entries) }

// Lookup returns the expected digest for an exact filename.
func (m *Manifest) Lookup(name string) (string, bool) {
	i, ok := m.index[name]
	if !ok {
		return "", false
	}
	return m.entries[i].Digest, true
}

// Entries returns the effective entries in manifest order.
func (m *Manifest) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Warnings returns non-fatal findings, such as duplicate filenames.
func (m *Manifest) Warnings() []string {
	out := make([]string, len(m.warnings))
	copy(out, m.warnings)
	return out
}

// ParseFile reads the manifest at path using the format implied by declaredFormatName.
var ParseFile = func(path, declaredFormatName string) (*Manifest, error) {
	format, err := FormatFor(declaredFormatName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	return Parse(f, format)
}

// Parse reads one record per line. Blank lines are skipped; any other line that
// does not follow the format fails the whole parse.
func Parse(r io.Reader, format Format) (*Manifest, error) {
	var parseLine func(n int, line string) (Entry, error)
	switch format {
	case BSD:
		parseLine = parseBSDLine
	case GNU:
		parseLine = parseGNULine
	default:
		return nil, &FormatError{Name: format.String()}
	}

	m := &Manifest{format: format, index: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := parseLine(n, line)
		if err != nil {
			return nil, err
		}
		m.add(entry)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &LineError{Line: n + 1, Reason: fmt.Sprintf("line longer than %d bytes", bufio.MaxScanTokenSize)}
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	if len(m.entries) == 0 {
		return nil, ErrEmptyManifest
	}
	return m, nil
}

// add keeps the last entry for a repeated filename and records a warning.
func (m *Manifest) add(e Entry) {
	if i, ok := m.index[e.Filename]; ok {
		prev := m.entries[i]
		m.warnings = append(m.warnings, fmt.Sprintf("duplicate entry for %s on line %d overrides line %d", e.Filename, e.Line, prev.Line))
		m.entries[i] = e
		return
	}
	m.index[e.Filename] = len(m.entries)
	m.entries = append(m.entries, e)
}

func parseBSDLine(n int, line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) > 0 && fields[0] != bsdAlgorithm {
		return Entry{}, &AlgorithmError{Line: n, Algorithm: fields[0]}
	}
	if len(fields) != 4 {
		return Entry{}, &LineError{Line: n, Raw: line, Reason: fmt.Sprintf("expected 4 fields, got %d", len(fields))}
	}
	if fields[2] != "=" {
		return Entry{}, &LineError{Line: n, Raw: line, Reason: "missing '=' separator"}
	}

	name := strings.TrimSuffix(strings.TrimPrefix(fields[1], "("), ")")
	if name == "" {
		return Entry{}, &LineError{Line: n, Raw: line, Reason: "empty filename"}
	}
	digest, err := normalizeDigest(fields[3])
	if err != nil {
		return Entry{}, &LineError{Line: n, Raw: line, Reason: err.Error()}
	}
	return Entry{Filename: name, Digest: digest, Line: n}, nil
}

func parseGNULine(n int, line string) (Entry, error) {
	sep := strings.IndexAny(line, " \t")
	if sep <= 0 {
		return Entry{}, &LineError{Line: n, Raw: line, Reason: "expected '<digest>  <filename>'"}
	}
	digest, err := normalizeDigest(line[:sep])
	if err != nil {
		return Entry{}, &LineError{Line: n, Raw: line, Reason: err.Error()}
	}

	// One separator, then an optional second space (text mode) or '*' (binary mode).
	rest := line[sep+1:]
	if strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, "*") {
		rest = rest[1:]
	}
	name := strings.TrimRightFunc(rest, unicode.IsSpace)
	if name == "" {
		return Entry{}, &LineError{Line: n, Raw: line, Reason: "empty filename"}
	}
	if unicode.IsSpace(rune(name[0])) {
		return Entry{}, &LineError{Line: n, Raw: line, Reason: "unexpected whitespace before filename"}
	}
	return Entry{Filename: name, Digest: digest, Line: n}, nil
}

func normalizeDigest(s string) (string, error) {
	if len(s) != digestLen {
		return "", fmt.Errorf("digest must be %d hex characters, got %d", digestLen, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("digest is not valid hex")
	}
	return strings.ToLower(s), nil
}
