package cmd

import (
	"github.com/spf13/cobra"
	"github.com/uvm-dev/uvm/pkg/status"
)

var runCmd = &cobra.Command{
	Use:   "run <version> [args...]",
	Short: "Run a specific runtime version",
	Long: `Resolves the version and replaces this process with its runtime
executable, forwarding the remaining arguments. The current pointer is
not consulted and not changed.`,
	Example: `% uvm run 3.4 my-pier`,
	Args:    cobra.MinimumNArgs(1),
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
			wrapFatalln("run "+string(tag)+" (run 'uvm install "+string(tag)+"' first)", status.ErrNotInstalled)
			return
		}
		// on unix this does not return on success
		if err := execRuntime(s.BinaryPath(tag), args[1:]); err != nil {
			wrapFatalln("exec "+string(tag)+" runtime", err)
			return
		}
	},
}

func init() {
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)
}
