package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var aliasCmd = &cobra.Command{
	Use:   "alias [name] [version]",
	Short: "Define or inspect version aliases",
	Long: `An alias is a user-defined name resolving to a version tag, possibly
through another alias. With no arguments all aliases are listed; with a
name its target is printed; with a name and a version the alias is
created or replaced. The target must be installed when the alias is
written, but later uninstalls leave aliases dangling on purpose.`,
	Example: `% uvm alias latest 3.4
% uvm alias latest
% uvm alias`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustStore()
		switch len(args) {
		case 0:
			entries, err := s.Aliases()
			if err != nil {
				wrapFatalln("list aliases", err)
				return
			}
			for _, e := range entries {
				fmt.Printf("%s\t%s\n", e.Name, color.HiBlackString(string(e.Target)))
			}
		case 1:
			tag, err := mustResolver(s).Resolve(args[0])
			if err != nil {
				wrapFatalln("resolve alias "+args[0], err)
				return
			}
			infoLogger.Println(tag)
		default:
			tag, err := mustResolver(s).Resolve(args[1])
			if err != nil {
				wrapFatalln("resolve version", err)
				return
			}
			if err := s.SetAlias(args[0], tag); err != nil {
				wrapFatalln("alias "+args[0], err)
				return
			}
			infoLogger.Printf("%s -> %s", args[0], tag)
		}
	},
}

var unaliasCmd = &cobra.Command{
	Use:   "unalias <name>",
	Short: "Remove a version alias",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustStore()
		if err := s.RemoveAlias(args[0]); err != nil {
			wrapFatalln("unalias "+args[0], err)
			return
		}
		infoLogger.Printf("alias %s removed", args[0])
	},
}

func init() {
	rootCmd.AddCommand(aliasCmd)
	rootCmd.AddCommand(unaliasCmd)
}
