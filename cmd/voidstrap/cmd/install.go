package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"voidstrap/internal/config"
	"voidstrap/internal/errors"
	"voidstrap/internal/installer"
	"voidstrap/internal/prompt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	installArch      string
	installLibc      string
	installMirror    string
	installVersion   string
	installManifest  string
	installAssumeYes bool
)

// runInstall is swapped in tests to avoid network access.
var runInstall = installer.Install

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Download, verify and install a Void Linux rootfs",
	Long: `Prompts for the libc flavor, mirror, release version and checksum manifest,
then downloads the rootfs archive, verifies it against the manifest, extracts it
and writes a launcher script. Flags preset answers and skip their prompts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		preset := installer.Preset{
			Arch:         installArch,
			Libc:         installLibc,
			Mirror:       installMirror,
			Version:      installVersion,
			ManifestName: installManifest,
		}
		if !prompt.IsInteractive() && !(preset.Complete() && installAssumeYes) {
			return errors.E("install", fmt.Errorf("stdin is not a terminal; pass --libc, --mirror, --version, --manifest and --yes"))
		}

		cat, err := config.DefaultCatalog()
		if err != nil {
			return errors.E("install", err)
		}
		cfg, err := config.New()
		if err != nil {
			return errors.E("install", err)
		}

		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		sel, err := installer.Collect(p, cat, preset)
		if err != nil {
			return errors.E("install", err)
		}
		plan, err := installer.NewPlan(sel)
		if err != nil {
			return errors.E("install", err)
		}

		printPlan(cmd.OutOrStdout(), cfg, plan)

		if !installAssumeYes {
			ok, err := p.Confirm("Continue with the installation?")
			if err != nil {
				return errors.E("install", err)
			}
			if !ok {
				color.Yellow("Installation aborted.")
				return nil
			}
		}

		// Create a context that is cancelled on a SIGINT or SIGTERM.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		res, err := runInstall(ctx, cfg, plan)
		if err != nil {
			if ctx.Err() == context.Canceled {
				color.Yellow("\nOperation cancelled by user.")
			}
			return errors.E("install", err)
		}

		color.Green("✔ Void Linux installed to %s. Run %s to start a shell.", res.RootfsDir, res.LauncherPath)
		return nil
	},
}

func printPlan(w io.Writer, cfg *config.Config, plan *installer.Plan) {
	sel := plan.Selection
	table := tablewriter.NewWriter(w)
	table.Header([]string{"SETTING", "VALUE"})
	table.Append([]string{"Architecture", sel.Arch})
	table.Append([]string{"Libc", sel.Libc.Name})
	table.Append([]string{"Mirror", sel.Mirror})
	table.Append([]string{"Version", sel.Version})
	table.Append([]string{"Manifest", plan.ManifestURL})
	table.Append([]string{"Archive", plan.ArchiveURL})
	table.Append([]string{"Rootfs", cfg.RootfsDir()})
	table.Append([]string{"Launcher", cfg.LauncherPath()})
	table.Render()
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().StringVar(&installArch, "arch", "", "Architecture to install (default: detected with uname -m)")
	installCmd.Flags().StringVar(&installLibc, "libc", "", "C library flavor ('musl' or 'glibc')")
	installCmd.Flags().StringVar(&installMirror, "mirror", "", "Mirror URL serving the live/ tree")
	installCmd.Flags().StringVar(&installVersion, "version", "", "Release version (e.g. 20191109)")
	installCmd.Flags().StringVar(&installManifest, "manifest", "", "Checksum manifest filename ('sha256.txt' or 'sha256sums.txt')")
	installCmd.Flags().BoolVarP(&installAssumeYes, "yes", "y", false, "Do not ask for confirmation")
}
