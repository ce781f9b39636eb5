package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/url"
	"strings"

	"voidstrap/internal/checksum"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Libc is a C library flavor and the suffix it adds to archive names.
type Libc struct {
	Name   string `yaml:"name"`
	Suffix string `yaml:"suffix"`
}

// Mirror is a download site serving the live/ tree.
type Mirror struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Catalog is the table of recognized installer options.
type Catalog struct {
	architectures []string
	libcs         []Libc
	mirrors       []Mirror
	versions      []string
	manifests     []string
}

type catalogFile struct {
	Architectures []string `yaml:"architectures"`
	Libcs         []Libc   `yaml:"libcs"`
	Mirrors       []Mirror `yaml:"mirrors"`
	Versions      []string `yaml:"versions"`
	Manifests     []string `yaml:"manifests"`
}

// DefaultCatalog returns the catalog embedded in the binary.
var DefaultCatalog = func() (*Catalog, error) {
	return LoadCatalog(catalogYAML)
}

// LoadCatalog decodes and validates a catalog document. Unknown keys are rejected.
func LoadCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	mirrors := make([]Mirror, len(f.Mirrors))
	for i, m := range f.Mirrors {
		mirrors[i] = Mirror{Name: m.Name, URL: NormalizeMirror(m.URL)}
	}

	return &Catalog{
		architectures: f.Architectures,
		libcs:         f.Libcs,
		mirrors:       mirrors,
		versions:      f.Versions,
		manifests:     f.Manifests,
	}, nil
}

func (f *catalogFile) validate() error {
	if err := uniqueNonEmpty("architectures", f.Architectures); err != nil {
		return err
	}
	if err := uniqueNonEmpty("versions", f.Versions); err != nil {
		return err
	}
	if err := uniqueNonEmpty("manifests", f.Manifests); err != nil {
		return err
	}

	libcNames := make([]string, len(f.Libcs))
	for i, l := range f.Libcs {
		libcNames[i] = l.Name
	}
	if err := uniqueNonEmpty("libcs", libcNames); err != nil {
		return err
	}

	mirrorNames := make([]string, len(f.Mirrors))
	for i, m := range f.Mirrors {
		mirrorNames[i] = m.Name
		if err := ValidateMirror(m.URL); err != nil {
			return fmt.Errorf("mirror %q: %w", m.Name, err)
		}
	}
	if err := uniqueNonEmpty("mirrors", mirrorNames); err != nil {
		return err
	}

	for _, name := range f.Manifests {
		if _, err := checksum.FormatFor(name); err != nil {
			return err
		}
	}
	return nil
}

func uniqueNonEmpty(field string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%s: at least one entry is required", field)
	}
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s: empty entry", field)
		}
		if seen[v] {
			return fmt.Errorf("%s: duplicate entry %q", field, v)
		}
		seen[v] = true
	}
	return nil
}

// ValidateMirror checks that raw is an absolute http(s) URL.
func ValidateMirror(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid mirror URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("mirror URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("mirror URL %q has no host", raw)
	}
	return nil
}

// NormalizeMirror appends the trailing slash URL templates rely on.
func NormalizeMirror(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return raw
}

func (c *Catalog) Architectures() []string { return append([]string(nil), c.architectures...) }

func (c *Catalog) Libcs() []Libc { return append([]Libc(nil), c.libcs...) }

func (c *Catalog) Mirrors() []Mirror { return append([]Mirror(nil), c.mirrors...) }

func (c *Catalog) Versions() []string { return append([]string(nil), c.versions...) }

func (c *Catalog) Manifests() []string { return append([]string(nil), c.manifests...) }

// Libc looks up a flavor by name.
func (c *Catalog) Libc(name string) (Libc, bool) {
	for _, l := range c.libcs {
		if l.Name == name {
			return l, true
		}
	}
	return Libc{}, false
}

// SupportsArch reports whether Void publishes rootfs archives for arch.
func (c *Catalog) SupportsArch(arch string) bool {
	for _, a := range c.architectures {
		if a == arch {
			return true
		}
	}
	return false
}
