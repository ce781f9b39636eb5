package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the application
	AppName = "voidstrap"
	// RootfsDirName is the fixed directory the root filesystem is extracted into
	RootfsDirName = "void-rootfs"
	// LauncherName is the filename of the generated login script
	LauncherName = "startvoid"
	// ReceiptName is the install record kept inside the rootfs directory
	ReceiptName = ".voidstrap.json"

	defaultTerm = "xterm-256color"
	defaultLang = "C.UTF-8"
)

// Config holds the environment-derived paths and settings for an installation.
type Config struct {
	homeDir   string
	prefixDir string
	term      string
	lang      string
}

// New creates a new Config instance.
var New = func() (*Config, error) {
	var home string
	var err error

	// VOIDSTRAP_HOME overrides the home directory, mostly for tests.
	if homeOverride := os.Getenv("VOIDSTRAP_HOME"); homeOverride != "" {
		home = homeOverride
	} else {
		home, err = userHomeDir()
		if err != nil {
			return nil, err
		}
	}

	// Termux exports PREFIX=/data/data/com.termux/files/usr.
	prefix := os.Getenv("VOIDSTRAP_PREFIX")
	if prefix == "" {
		prefix = os.Getenv("PREFIX")
	}
	if prefix == "" {
		prefix = filepath.Join(home, ".local")
	}

	return &Config{
		homeDir:   home,
		prefixDir: prefix,
		term:      envOr("TERM", defaultTerm),
		lang:      envOr("LANG", defaultLang),
	}, nil
}

var userHomeDir = os.UserHomeDir

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SetHomeDir sets the directory the rootfs is installed under.
func (c *Config) SetHomeDir(dir string) {
	c.homeDir = dir
}

// SetPrefixDir sets the installation prefix the launcher is written under.
func (c *Config) SetPrefixDir(dir string) {
	c.prefixDir = dir
}

func (c *Config) HomeDir() string { return c.homeDir }

func (c *Config) PrefixDir() string { return c.prefixDir }

// Term returns the TERM value baked into the launcher.
func (c *Config) Term() string {
	if c.term == "" {
		return defaultTerm
	}
	return c.term
}

// Lang returns the LANG value baked into the launcher.
func (c *Config) Lang() string {
	if c.lang == "" {
		return defaultLang
	}
	return c.lang
}

// RootfsDir returns the path the root filesystem is extracted into.
func (c *Config) RootfsDir() string {
	return filepath.Join(c.homeDir, RootfsDirName)
}

// LauncherPath returns the path of the generated login script.
func (c *Config) LauncherPath() string {
	return filepath.Join(c.prefixDir, "bin", LauncherName)
}

// ReceiptPath returns the path of the install record.
func (c *Config) ReceiptPath() string {
	return filepath.Join(c.RootfsDir(), ReceiptName)
}
