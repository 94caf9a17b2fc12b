package cmd

import (
	"github.com/spf13/cobra"
	"github.com/uvm-dev/uvm/pkg/status"
)

var whichCmd = &cobra.Command{
	Use:   "which <version>",
	Short: "Print the runtime executable path of an installed version",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustStore()
		tag, err := mustResolver(s).Resolve(args[0])
		if err != nil {
			wrapFatalln("resolve version", err)
			return
		}
		installed, err := s.IsInstalled(tag)
		if err != nil {
			wrapFatalln("check installed state", err)
			return
		}
		if !installed {
			wrapFatalln("which "+string(tag), status.ErrNotInstalled)
			return
		}
		infoLogger.Println(s.BinaryPath(tag))
	},
}

func init() {
	rootCmd.AddCommand(whichCmd)
}
