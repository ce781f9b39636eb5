package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "zero", n: 0, want: "0 B"},
		{name: "bytes", n: 1023, want: "1023 B"},
		{name: "one kibibyte", n: 1024, want: "1.0 KiB"},
		{name: "fractional kibibytes", n: 1536, want: "1.5 KiB"},
		{name: "mebibytes", n: 42 * 1024 * 1024, want: "42.0 MiB"},
		{name: "gibibytes", n: 3 * 1024 * 1024 * 1024, want: "3.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.n); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sha256.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "file exists", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing", path: filepath.Join(dir, "missing"), want: false},
		{name: "empty path", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "nowhere"), link); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	if !PathExists(dir) {
		t.Errorf("PathExists(%q) = false, want true", dir)
	}
	if !PathExists(link) {
		t.Errorf("PathExists should report a dangling symlink")
	}
	if PathExists(filepath.Join(dir, "missing")) {
		t.Errorf("PathExists should be false for a missing path")
	}
}
