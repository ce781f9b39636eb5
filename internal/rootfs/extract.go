package rootfs

import (
	"context"
	"fmt"
	"strings"
)

// Extractor unpacks a rootfs archive into a directory that must not exist yet.
type Extractor interface {
	Extract(ctx context.Context, archivePath, targetDir string) error
}

// NewExtractor is a factory function that returns the extractor for an archive name.
func NewExtractor(archiveName string) (Extractor, error) {
	name := strings.ToLower(archiveName)
	switch {
	case strings.HasSuffix(name, ".tar.xz"), strings.HasSuffix(name, ".txz"):
		return &TarExtractor{Flags: "-xJf"}, nil
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return &TarExtractor{Flags: "-xzf"}, nil
	case strings.HasSuffix(name, ".tar"):
		return &TarExtractor{Flags: "-xf"}, nil
	default:
		return nil, fmt.Errorf("no extractor available for archive: %s", archiveName)
	}
}
