package cmd

import (
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active version",
	Long: `Prints the version the current pointer references, falling back to
the default version when no pointer is set.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := mustStore()
		tag, ok, err := s.Current()
		if err != nil {
			wrapFatalln("read current version", err)
			return
		}
		if !ok {
			warnLogger.Println("no active version")
			return
		}
		infoLogger.Println(tag)
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
