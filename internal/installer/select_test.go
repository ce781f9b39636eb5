package installer

import (
	"bytes"
	"strings"
	"testing"

	"voidstrap/internal/config"
	"voidstrap/internal/prompt"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *config.Catalog {
	t.Helper()
	cat, err := config.LoadCatalog([]byte(`
architectures: [x86_64, aarch64]
libcs:
  - {name: musl, suffix: "-musl"}
  - {name: glibc, suffix: ""}
mirrors:
  - {name: alpha, url: "https://alpha.de.repo.voidlinux.org/live/"}
versions: ["20191109"]
manifests: [sha256.txt, sha256sums.txt]
`))
	require.NoError(t, err)
	return cat
}

func TestCollect_Interactive(t *testing.T) {
	var out bytes.Buffer
	// libc=glibc, mirror=alpha, version=other 20210930, manifest=sha256sums.txt
	p := prompt.New(strings.NewReader("2\n1\n2\n20210930\n2\n"), &out)

	sel, err := Collect(p, testCatalog(t), Preset{Arch: "aarch64"})
	require.NoError(t, err)

	assert.Equal(t, config.Selection{
		Arch:         "aarch64",
		Libc:         config.Libc{Name: "glibc", Suffix: ""},
		Mirror:       "https://alpha.de.repo.voidlinux.org/live/",
		Version:      "20210930",
		ManifestName: "sha256sums.txt",
	}, sel)
	assert.Contains(t, out.String(), "Which libc do you want to use?")
	assert.Contains(t, out.String(), "What filename does the checksum have?")
}

func TestCollect_Preset(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(""), &out)

	sel, err := Collect(p, testCatalog(t), Preset{
		Arch:         "x86_64",
		Libc:         "musl",
		Mirror:       "https://mirror.example/void/live",
		Version:      "20191109",
		ManifestName: "sha256.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example/void/live/", sel.Mirror)
	assert.Equal(t, "-musl", sel.Libc.Suffix)
	assert.Empty(t, out.String(), "no prompts for preset values")
}

func TestCollect_UnknownLibc(t *testing.T) {
	p := prompt.New(strings.NewReader(""), &bytes.Buffer{})
	_, err := Collect(p, testCatalog(t), Preset{Arch: "x86_64", Libc: "uclibc"})
	assert.ErrorContains(t, err, "uclibc")
}

func TestCollect_OtherManifestRejected(t *testing.T) {
	p := prompt.New(strings.NewReader("3\nunknown.txt\n"), &bytes.Buffer{})
	_, err := Collect(p, testCatalog(t), Preset{Arch: "x86_64", Libc: "musl", Mirror: "https://a.example/live/", Version: "1"})
	assert.ErrorContains(t, err, "unknown.txt")
}

func TestCollect_UnsupportedArchWarns(t *testing.T) {
	var colorOut bytes.Buffer
	original := color.Output
	color.Output = &colorOut
	t.Cleanup(func() { color.Output = original })

	p := prompt.New(strings.NewReader(""), &bytes.Buffer{})
	_, err := Collect(p, testCatalog(t), Preset{
		Arch: "riscv64", Libc: "musl", Mirror: "https://a.example/live/", Version: "1", ManifestName: "sha256.txt",
	})
	require.NoError(t, err)
	assert.Contains(t, colorOut.String(), "riscv64")
}

func TestCollect_EOF(t *testing.T) {
	p := prompt.New(strings.NewReader(""), &bytes.Buffer{})
	_, err := Collect(p, testCatalog(t), Preset{Arch: "x86_64"})
	assert.ErrorIs(t, err, prompt.ErrNoInput)
}

func TestPreset_Complete(t *testing.T) {
	assert.False(t, Preset{}.Complete())
	assert.True(t, Preset{Libc: "musl", Mirror: "m", Version: "v", ManifestName: "sha256.txt"}.Complete())
}
