package installer

import (
	"fmt"

	"voidstrap/internal/config"
	"voidstrap/internal/prompt"

	"github.com/fatih/color"
)

// Preset holds values supplied up front; empty fields are prompted for.
type Preset struct {
	Arch         string
	Libc         string
	Mirror       string
	Version      string
	ManifestName string
}

// Complete reports whether every field is preset, so no prompt is needed.
func (p Preset) Complete() bool {
	return p.Libc != "" && p.Mirror != "" && p.Version != "" && p.ManifestName != ""
}

// Collect builds a Selection from preset values and answers to the prompts for
// everything else. The architecture is detected, never prompted.
func Collect(p *prompt.Prompter, cat *config.Catalog, preset Preset) (config.Selection, error) {
	var sel config.Selection

	sel.Arch = preset.Arch
	if sel.Arch == "" {
		sel.Arch = config.DetectArch()
	}
	if !cat.SupportsArch(sel.Arch) {
		color.Yellow("! Warning: Void does not publish rootfs archives for %s in the default catalog", sel.Arch)
	}

	if preset.Libc != "" {
		libc, ok := cat.Libc(preset.Libc)
		if !ok {
			return sel, fmt.Errorf("unknown libc %q", preset.Libc)
		}
		sel.Libc = libc
	} else {
		libcs := cat.Libcs()
		names := make([]string, len(libcs))
		for i, l := range libcs {
			names[i] = l.Name
		}
		i, err := p.Choose("Which libc do you want to use?", names)
		if err != nil {
			return sel, err
		}
		sel.Libc = libcs[i]
	}

	var err error
	if sel.Mirror, err = presetOr(preset.Mirror, func() (string, error) {
		mirrors := cat.Mirrors()
		urls := make([]string, len(mirrors))
		for i, m := range mirrors {
			urls[i] = m.URL
		}
		return p.ChooseOrOther("Which mirror do you want to use?", urls)
	}); err != nil {
		return sel, err
	}
	sel.Mirror = config.NormalizeMirror(sel.Mirror)

	if sel.Version, err = presetOr(preset.Version, func() (string, error) {
		return p.ChooseOrOther("Which version of void linux do you want?", cat.Versions())
	}); err != nil {
		return sel, err
	}

	if sel.ManifestName, err = presetOr(preset.ManifestName, func() (string, error) {
		return p.ChooseOrOther("What filename does the checksum have?", cat.Manifests())
	}); err != nil {
		return sel, err
	}

	return sel, sel.Validate()
}

func presetOr(value string, ask func() (string, error)) (string, error) {
	if value != "" {
		return value, nil
	}
	return ask()
}
