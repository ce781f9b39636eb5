package installer

import (
	"testing"

	"voidstrap/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSelection() config.Selection {
	return config.Selection{
		Arch:         "x86_64",
		Libc:         config.Libc{Name: "musl", Suffix: "-musl"},
		Mirror:       "https://alpha.de.repo.voidlinux.org/live/",
		Version:      "20191109",
		ManifestName: "sha256.txt",
	}
}

func TestNewPlan(t *testing.T) {
	plan, err := NewPlan(testSelection())
	require.NoError(t, err)

	assert.Equal(t, "void-x86_64-musl-ROOTFS-20191109.tar.xz", plan.ArchiveName)
	assert.Equal(t, "https://alpha.de.repo.voidlinux.org/live/20191109/void-x86_64-musl-ROOTFS-20191109.tar.xz", plan.ArchiveURL)
	assert.Equal(t, "https://alpha.de.repo.voidlinux.org/live/20191109/sha256.txt", plan.ManifestURL)
}

func TestNewPlan_GlibcAndMirrorWithoutSlash(t *testing.T) {
	sel := testSelection()
	sel.Libc = config.Libc{Name: "glibc"}
	sel.Mirror = "https://repo-default.voidlinux.org/live"
	sel.ManifestName = "sha256sums.txt"

	plan, err := NewPlan(sel)
	require.NoError(t, err)

	assert.Equal(t, "void-x86_64-ROOTFS-20191109.tar.xz", plan.ArchiveName)
	assert.Equal(t, "https://repo-default.voidlinux.org/live/20191109/void-x86_64-ROOTFS-20191109.tar.xz", plan.ArchiveURL)
	assert.Equal(t, "https://repo-default.voidlinux.org/live/20191109/sha256sums.txt", plan.ManifestURL)
	assert.Equal(t, "https://repo-default.voidlinux.org/live/", plan.Selection.Mirror)
}

func TestNewPlan_UnknownManifest(t *testing.T) {
	sel := testSelection()
	sel.ManifestName = "unknown.txt"

	_, err := NewPlan(sel)
	assert.Error(t, err)
}

func TestNewPlan_RejectsUnsafeNames(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Selection)
	}{
		{name: "version escapes download dir", mutate: func(s *config.Selection) { s.Version = "../../../tmp/evil" }},
		{name: "version parent", mutate: func(s *config.Selection) { s.Version = "../x" }},
		{name: "manifest path", mutate: func(s *config.Selection) { s.ManifestName = "live/sha256sums.txt" }},
		{name: "manifest format tag", mutate: func(s *config.Selection) { s.ManifestName = "gnu" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := testSelection()
			tt.mutate(&sel)
			plan, err := NewPlan(sel)
			assert.Error(t, err)
			assert.Nil(t, plan)
		})
	}
}
