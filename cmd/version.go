package cmd

import (
	"fmt"

	"github.com/alexiusacademia/aci318/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of aci318",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Reinforced Concrete Section Analysis and Sizing")
		fmt.Fprintln(out, "Based on ACI 318-19 (Building Code Requirements for Structural Concrete)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
