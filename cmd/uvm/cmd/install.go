package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [version]",
	Short: "Download and install a runtime version",
	Long: `Resolves the version argument (or the project pin when omitted),
queries the release index for a build matching this platform, then
downloads, verifies and atomically publishes it into the version store.

Installing an already installed version is a no-op success.`,
	Example: `% uvm install 3.4
% uvm install            # version taken from .vere-version`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustStore()
		tag, err := mustResolver(s).ResolveArgOrPin(firstArg(args), workingDir())
		if err != nil {
			wrapFatalln("resolve version", err)
			return
		}
		inst := mustInstaller(s)
		if err := inst.Install(context.Background(), tag); err != nil {
			wrapFatalln("install "+string(tag), err)
			return
		}
		infoLogger.Printf("%s installed at %s", tag, s.Path(tag))
		infoLogger.Printf("run 'uvm use %s' to activate it", tag)
	},
}

func init() {
	addNoSmokeFlag(installCmd)
	rootCmd.AddCommand(installCmd)
}
