package config

import (
	"fmt"
	"strings"

	"voidstrap/internal/checksum"
)

// Selection is the set of choices that identifies one rootfs variant.
type Selection struct {
	Arch         string
	Libc         Libc
	Mirror       string
	Version      string
	ManifestName string
}

// Validate checks that every field is set and usable. Values outside the
// catalog are allowed where the installer offers "other".
func (s Selection) Validate() error {
	if s.Arch == "" {
		return fmt.Errorf("architecture is required")
	}
	if s.Libc.Name == "" {
		return fmt.Errorf("libc is required")
	}
	if s.Mirror == "" {
		return fmt.Errorf("mirror is required")
	}
	if err := ValidateMirror(s.Mirror); err != nil {
		return err
	}
	if s.Version == "" {
		return fmt.Errorf("version is required")
	}
	if !isPathSegment(s.Version) {
		return fmt.Errorf("version %q must be a single path segment", s.Version)
	}
	if s.ManifestName == "" {
		return fmt.Errorf("checksum manifest filename is required")
	}
	if !isPathSegment(s.ManifestName) {
		return fmt.Errorf("checksum manifest %q must be a plain filename", s.ManifestName)
	}
	if strings.EqualFold(s.ManifestName, "bsd") || strings.EqualFold(s.ManifestName, "gnu") {
		return fmt.Errorf("checksum manifest %q is a format name; use %s or %s", s.ManifestName, checksum.BSDManifestName, checksum.GNUManifestName)
	}
	if _, err := checksum.FormatFor(s.ManifestName); err != nil {
		return err
	}
	return nil
}

// isPathSegment reports whether v can be joined onto a URL or directory
// without escaping it.
func isPathSegment(v string) bool {
	return v != "." && v != ".." && !strings.ContainsAny(v, `/\`)
}
