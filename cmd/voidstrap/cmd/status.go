package cmd

import (
	stderrors "errors"
	"os"
	"time"

	"voidstrap/internal/config"
	"voidstrap/internal/errors"
	"voidstrap/internal/receipt"
	"voidstrap/internal/util"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what is installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return errors.E("status", err)
		}

		r, err := receipt.Load(cfg)
		if err != nil {
			if !stderrors.Is(err, os.ErrNotExist) {
				return errors.E("status", err)
			}
			if util.PathExists(cfg.RootfsDir()) {
				color.Yellow("! Warning: %s exists but has no install receipt.", cfg.RootfsDir())
				return nil
			}
			color.Yellow("Void Linux is not installed in %s.", cfg.HomeDir())
			return nil
		}

		launcher := r.Launcher
		if launcher == "" {
			launcher = cfg.LauncherPath()
		}
		if !util.FileExists(launcher) {
			launcher += " (missing)"
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header([]string{"FIELD", "VALUE"})
		table.Append([]string{"Rootfs", cfg.RootfsDir()})
		table.Append([]string{"Launcher", launcher})
		table.Append([]string{"Architecture", r.Arch})
		table.Append([]string{"Libc", r.Libc})
		table.Append([]string{"Version", r.Version})
		table.Append([]string{"Mirror", r.Mirror})
		table.Append([]string{"Archive", r.ArchiveName})
		table.Append([]string{"Size", util.FormatSize(r.ArchiveSize)})
		table.Append([]string{"SHA256", r.SHA256})
		table.Append([]string{"Installed", r.InstalledAt.Local().Format(time.RFC1123)})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
