package cmd

import (
	"fmt"
	"path/filepath"

	"voidstrap/internal/checksum"
	"voidstrap/internal/errors"
	"voidstrap/internal/progress"
	"voidstrap/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	verifyManifest string
	verifyFormat   string
	verifyName     string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <archive>",
	Short: "Verify a local file against a checksum manifest",
	Long: `Parses a BSD (sha256.txt) or GNU (sha256sums.txt) checksum manifest and checks
the SHA-256 digest of the given file against its entry. The manifest format is
taken from the manifest's filename unless --format is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archivePath := args[0]
		if !util.FileExists(archivePath) {
			return errors.E("verify", fmt.Errorf("%s does not exist or is a directory", archivePath))
		}

		format := verifyFormat
		if format == "" {
			format = filepath.Base(verifyManifest)
		}
		m, err := checksum.ParseFile(verifyManifest, format)
		if err != nil {
			return errors.E("verify", err)
		}
		for _, w := range m.Warnings() {
			color.Yellow("! Warning: %s: %s", filepath.Base(verifyManifest), w)
		}

		name := verifyName
		if name == "" {
			name = filepath.Base(archivePath)
		}

		bar := progress.NewBar("Verifying " + name)
		v, err := checksum.Verify(archivePath, m, checksum.VerifyOptions{
			Name:     name,
			Progress: checksum.ProgressFunc(bar.Func()),
		})
		bar.Finish()
		if err != nil {
			return errors.E("verify", err)
		}

		switch v.Result {
		case checksum.Valid:
			fmt.Fprintf(color.Output, "%s %s: %s (%s, %s manifest)\n", color.GreenString("✔"), name, v.Result, util.FormatSize(v.Bytes), m.Format())
			return nil
		case checksum.FileNotInManifest:
			color.Red("✖ %s: %s", name, v.Result)
		default:
			color.Red("✖ %s: %s", name, v.Result)
			color.Red("  expected %s", v.Expected)
			color.Red("  actual   %s", v.Actual)
		}
		return errors.E("verify", v.Err())
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVarP(&verifyManifest, "manifest", "m", "", "Path to the checksum manifest")
	verifyCmd.Flags().StringVar(&verifyFormat, "format", "", "Manifest format: 'bsd', 'gnu' or a manifest filename (default: the manifest's filename)")
	verifyCmd.Flags().StringVar(&verifyName, "name", "", "Manifest entry to check (default: the file's base name)")
	verifyCmd.MarkFlagRequired("manifest")
}
