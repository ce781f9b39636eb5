package receipt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"voidstrap/internal/config"
)

// Receipt records what was installed into a rootfs directory.
type Receipt struct {
	Arch         string    `json:"arch"`
	Libc         string    `json:"libc"`
	Mirror       string    `json:"mirror"`
	Version      string    `json:"version"`
	ManifestName string    `json:"manifest_name"`
	ArchiveURL   string    `json:"archive_url"`
	ArchiveName  string    `json:"archive_name"`
	SHA256       string    `json:"sha256"`
	ArchiveSize  int64     `json:"archive_size,omitempty"`
	Launcher     string    `json:"launcher,omitempty"`
	InstalledAt  time.Time `json:"installed_at"`
}

// FromSelection fills the selection fields of a receipt.
func FromSelection(sel config.Selection) Receipt {
	return Receipt{
		Arch:         sel.Arch,
		Libc:         sel.Libc.Name,
		Mirror:       sel.Mirror,
		Version:      sel.Version,
		ManifestName: sel.ManifestName,
	}
}

// Save writes the receipt into the configured rootfs directory.
var Save = func(cfg *config.Config, r Receipt) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal receipt: %w", err)
	}

	path := cfg.ReceiptPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create rootfs directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads the receipt for the configured rootfs directory. The error wraps
// os.ErrNotExist when nothing has been installed.
var Load = func(cfg *config.Config) (*Receipt, error) {
	data, err := os.ReadFile(cfg.ReceiptPath())
	if err != nil {
		return nil, err
	}

	var r Receipt
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal receipt: %w", err)
	}
	return &r, nil
}
