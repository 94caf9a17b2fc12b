package cmd

import (
	"github.com/spf13/cobra"
	"github.com/uvm-dev/uvm/pkg/errors"
	"github.com/uvm-dev/uvm/pkg/status"
)

var useCmd = &cobra.Command{
	Use:   "use [version]",
	Short: "Activate an installed version",
	Long: `Atomically switches the current version pointer to the given
installed version (or the project pin when omitted). The switch is the
only durable effect: it is shared by all later invocations.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustStore()
		tag, err := mustResolver(s).ResolveArgOrPin(firstArg(args), workingDir())
		if err != nil {
			wrapFatalln("resolve version", err)
			return
		}
		if err := s.SetCurrent(tag); err != nil {
			if errors.Is(err, status.ErrNotInstalled) {
				wrapFatalln("use "+string(tag)+" (run 'uvm install "+string(tag)+"' first)", err)
				return
			}
			wrapFatalln("use "+string(tag), err)
			return
		}
		infoLogger.Printf("now using %s", tag)
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
