package cmd

import (
	"voidstrap/internal/checksum"
	"voidstrap/internal/config"
	"voidstrap/internal/errors"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in architectures, libcs, mirrors, versions and manifests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := config.DefaultCatalog()
		if err != nil {
			return errors.E("catalog", err)
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header([]string{"KIND", "NAME", "VALUE"})
		for _, arch := range cat.Architectures() {
			table.Append([]string{"arch", arch, ""})
		}
		for _, l := range cat.Libcs() {
			suffix := l.Suffix
			if suffix == "" {
				suffix = "(none)"
			}
			table.Append([]string{"libc", l.Name, suffix})
		}
		for _, m := range cat.Mirrors() {
			table.Append([]string{"mirror", m.Name, m.URL})
		}
		for _, v := range cat.Versions() {
			table.Append([]string{"version", v, ""})
		}
		for _, name := range cat.Manifests() {
			table.Append([]string{"manifest", name, manifestFormat(name)})
		}
		table.Render()
		return nil
	},
}

func manifestFormat(name string) string {
	f, err := checksum.FormatFor(name)
	if err != nil {
		return "unknown"
	}
	return f.String()
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
