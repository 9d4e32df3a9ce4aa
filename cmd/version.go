package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobeam",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gobeam v%s\n", version.Version)
		fmt.Fprintf(out, "Built %s from commit %s\n", version.BuildTime, version.GitCommit)
		fmt.Fprintln(out, "Simply Supported Beam Deflection Simulator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
