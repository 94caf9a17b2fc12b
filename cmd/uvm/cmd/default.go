package cmd

import (
	"github.com/spf13/cobra"
)

var defaultCmd = &cobra.Command{
	Use:   "default [version]",
	Short: "Show or set the default version",
	Long: `The default version is the fallback reported as active when no
current pointer is set. With no argument the persisted default is
printed; with an argument it is replaced.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustStore()
		if len(args) == 0 {
			tag, ok, err := s.Default()
			if err != nil {
				wrapFatalln("read default version", err)
				return
			}
			if !ok {
				warnLogger.Println("no default version")
				return
			}
			infoLogger.Println(tag)
			return
		}
		tag, err := mustResolver(s).Resolve(args[0])
		if err != nil {
			wrapFatalln("resolve version", err)
			return
		}
		if err := s.SetDefault(tag); err != nil {
			wrapFatalln("set default to "+string(tag), err)
			return
		}
		infoLogger.Printf("default version is now %s", tag)
	},
}

func init() {
	rootCmd.AddCommand(defaultCmd)
}
