package cmd

import (
	"github.com/spf13/cobra"
)

// set at build time via -ldflags
var (
	Version   string
	GitCommit string
	BuildDate string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the uvm version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := Version
		if v == "" {
			v = "dev"
		}
		infoLogger.Println("uvm " + v)
		if GitCommit != "" {
			infoLogger.Println("commit: " + GitCommit)
		}
		if BuildDate != "" {
			infoLogger.Println("built:  " + BuildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
