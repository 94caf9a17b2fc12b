package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <version>",
	Short: "Remove an installed version",
	Long: `Removes the version directory and any current pointer or default
record referencing it. Removing the active version is allowed: running
processes keep their own file handles.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustStore()
		tag, err := mustResolver(s).Resolve(args[0])
		if err != nil {
			wrapFatalln("resolve version", err)
			return
		}
		wasActive, err := s.Uninstall(tag)
		if err != nil {
			wrapFatalln("uninstall "+string(tag), err)
			return
		}
		if wasActive {
			warnLogger.Println(color.YellowString("warning: %s was active, no version is active now", tag))
		}
		infoLogger.Printf("%s removed", tag)
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
