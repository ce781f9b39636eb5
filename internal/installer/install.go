package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"voidstrap/internal/checksum"
	"voidstrap/internal/config"
	"voidstrap/internal/downloader"
	"voidstrap/internal/launcher"
	"voidstrap/internal/progress"
	"voidstrap/internal/receipt"
	"voidstrap/internal/rootfs"
	"voidstrap/internal/util"

	"github.com/fatih/color"
)

var (
	fetchManifest = downloader.FetchWithSpinner
	fetchArchive  = downloader.FetchWithProgress
	newExtractor  = rootfs.NewExtractor
	now           = time.Now
)

// Result summarizes a completed installation.
type Result struct {
	RootfsDir    string
	LauncherPath string
	Verification *checksum.Verification
}

// Install downloads, verifies and unpacks the rootfs described by plan, then
// writes the launcher. Nothing is extracted or written unless the archive
// verifies against its manifest.
func Install(ctx context.Context, cfg *config.Config, plan *Plan) (*Result, error) {
	rootfsDir := cfg.RootfsDir()
	if util.PathExists(rootfsDir) {
		return nil, fmt.Errorf("%s already exists; remove it before installing again", rootfsDir)
	}

	extractor, err := newExtractor(plan.ArchiveName)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.HomeDir(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", cfg.HomeDir(), err)
	}
	workDir, err := os.MkdirTemp(cfg.HomeDir(), ".voidstrap-download-")
	if err != nil {
		return nil, fmt.Errorf("failed to create download directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	manifestPath := filepath.Join(workDir, filepath.Base(plan.Selection.ManifestName))
	if err := fetchManifest(ctx, manifestPath, plan.ManifestURL, plan.Selection.ManifestName); err != nil {
		return nil, fmt.Errorf("failed to download checksum manifest: %w", err)
	}

	archivePath := filepath.Join(workDir, plan.ArchiveName)
	if err := fetchArchive(ctx, archivePath, plan.ArchiveURL, plan.ArchiveName); err != nil {
		return nil, fmt.Errorf("failed to download rootfs archive: %w", err)
	}

	v, err := verifyArchive(archivePath, manifestPath, plan)
	if err != nil {
		return nil, err
	}

	if err := extractor.Extract(ctx, archivePath, rootfsDir); err != nil {
		return nil, err
	}

	launcherPath := cfg.LauncherPath()
	params := launcher.Params{RootfsDir: rootfsDir, Term: cfg.Term(), Lang: cfg.Lang()}
	if err := launcher.Write(launcherPath, params); err != nil {
		return nil, err
	}
	fmt.Fprintf(color.Output, "%s Wrote launcher %s\n", color.GreenString("✔"), launcherPath)

	r := receipt.FromSelection(plan.Selection)
	r.ArchiveURL = plan.ArchiveURL
	r.ArchiveName = plan.ArchiveName
	r.SHA256 = v.Actual
	r.ArchiveSize = v.Bytes
	r.Launcher = launcherPath
	r.InstalledAt = now().UTC()
	if err := receipt.Save(cfg, r); err != nil {
		color.Yellow("! Warning: failed to write install receipt: %v", err)
	}

	return &Result{RootfsDir: rootfsDir, LauncherPath: launcherPath, Verification: v}, nil
}

// verifyArchive parses the manifest and checks the archive against it. Any
// result other than Valid is returned as an error.
func verifyArchive(archivePath, manifestPath string, plan *Plan) (*checksum.Verification, error) {
	m, err := checksum.ParseFile(manifestPath, plan.Selection.ManifestName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse checksum manifest %s: %w", plan.Selection.ManifestName, err)
	}
	for _, w := range m.Warnings() {
		color.Yellow("! Warning: %s: %s", plan.Selection.ManifestName, w)
	}

	bar := progress.NewBar("Verifying " + plan.ArchiveName)
	v, err := checksum.Verify(archivePath, m, checksum.VerifyOptions{
		Name:     plan.ArchiveName,
		Progress: checksum.ProgressFunc(bar.Func()),
	})
	bar.Finish()
	if err != nil {
		return nil, fmt.Errorf("failed to verify %s: %w", plan.ArchiveName, err)
	}

	if err := v.Err(); err != nil {
		color.Red("✖ Checksum verification failed (%s).", v.Result)
		return nil, err
	}
	fmt.Fprintf(color.Output, "%s SHA256 %s matches %s\n", color.GreenString("✔"), v.Actual, plan.Selection.ManifestName)
	return v, nil
}
