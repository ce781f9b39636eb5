package launcher

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Mode is the permission set of the generated script.
const Mode os.FileMode = 0700

const scriptTemplate = `#!/bin/sh
# Generated by voidstrap. Starts a login shell inside the Void Linux rootfs.
unset LD_PRELOAD
exec proot \
	--link2symlink \
	-0 \
	-r {{ quote .RootfsDir }} \
	-b /dev \
	-b /proc \
	-b /sys \
	-w /root \
	/usr/bin/env -i \
	HOME=/root \
	TERM={{ quote .Term }} \
	LANG={{ quote .Lang }} \
	PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin \
	/bin/sh --login "$@"
`

var script = template.Must(template.New("launcher").Funcs(template.FuncMap{"quote": shellQuote}).Parse(scriptTemplate))

// Params are the values baked into the launcher.
type Params struct {
	RootfsDir string
	Term      string
	Lang      string
}

// Render returns the launcher script for p.
func Render(p Params) ([]byte, error) {
	if p.RootfsDir == "" {
		return nil, fmt.Errorf("launcher needs a rootfs directory")
	}
	var buf bytes.Buffer
	if err := script.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("failed to render launcher: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders the launcher to path with mode 0700, creating parent directories.
var Write = func(path string, p Params) error {
	data, err := Render(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create launcher directory: %w", err)
	}
	if err := os.WriteFile(path, data, Mode); err != nil {
		return fmt.Errorf("failed to write launcher: %w", err)
	}
	// WriteFile applies the umask; the mode is part of the contract.
	if err := os.Chmod(path, Mode); err != nil {
		return fmt.Errorf("failed to set permissions on launcher: %w", err)
	}
	return nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
