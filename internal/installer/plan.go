package installer

import (
	"fmt"

	"voidstrap/internal/config"
)

// Plan is a validated selection together with the URLs it resolves to.
type Plan struct {
	Selection   config.Selection
	ArchiveName string
	ArchiveURL  string
	ManifestURL string
}

// NewPlan resolves a selection to download URLs:
//
//	<mirror><version>/void-<arch><libc suffix>-ROOTFS-<version>.tar.xz
//	<mirror><version>/<manifest>
func NewPlan(sel config.Selection) (*Plan, error) {
	sel.Mirror = config.NormalizeMirror(sel.Mirror)
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	archiveName := fmt.Sprintf("void-%s%s-ROOTFS-%s.tar.xz", sel.Arch, sel.Libc.Suffix, sel.Version)
	base := sel.Mirror + sel.Version + "/"

	return &Plan{
		Selection:   sel,
		ArchiveName: archiveName,
		ArchiveURL:  base + archiveName,
		ManifestURL: base + sel.ManifestName,
	}, nil
}
