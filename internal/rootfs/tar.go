package rootfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"voidstrap/internal/runner"
	"voidstrap/internal/util"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Output is where the extraction spinner is drawn.
var Output io.Writer = os.Stdout

// TarExtractor shells out to tar. Archives are unpacked into a staging
// directory beside the target and renamed into place only on success.
type TarExtractor struct {
	Flags string
}

func (e *TarExtractor) Extract(ctx context.Context, archivePath, targetDir string) error {
	if _, err := exec.LookPath("tar"); err != nil {
		return fmt.Errorf("tar is not installed. Please install it to extract the root filesystem")
	}
	if util.PathExists(targetDir) {
		return fmt.Errorf("%s already exists; remove it or choose another home directory", targetDir)
	}

	parent := filepath.Dir(targetDir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", parent, err)
	}

	stagingDir := filepath.Join(parent, fmt.Sprintf(".%s-%s", filepath.Base(targetDir), uuid.NewString()))
	if err := os.Mkdir(stagingDir, 0755); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(Output))
	s.Suffix = color.CyanString(" Extracting %s...", filepath.Base(archivePath))
	s.Start()

	if err := runner.Run(ctx, "tar", e.Flags, archivePath, "-C", stagingDir); err != nil {
		s.Stop()
		fmt.Fprintln(Output, color.RedString("✖ Extraction failed."))
		removeStaging(stagingDir)
		return fmt.Errorf("failed to extract %s: %w", archivePath, err)
	}

	if err := os.Rename(stagingDir, targetDir); err != nil {
		s.Stop()
		removeStaging(stagingDir)
		return fmt.Errorf("failed to move extracted rootfs into place: %w", err)
	}

	s.Stop()
	fmt.Fprintf(Output, "%s Extracted root filesystem to %s\n", color.GreenString("✔"), targetDir)
	return nil
}

func removeStaging(dir string) {
	// Extracted trees can contain read-only directories.
	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err == nil && d.IsDir() {
			os.Chmod(path, 0755)
		}
		return nil
	})
	if err := os.RemoveAll(dir); err != nil {
		color.Yellow("! Warning: failed to clean up staging directory %s: %v", dir, err)
	}
}
