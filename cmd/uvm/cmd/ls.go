package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List installed versions",
	Long: `Lists installed versions in ascending order, the active one marked
with an arrow. Ordering is semantic: vere-v3.10 sorts after vere-v3.9.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := mustStore()
		tags, err := s.List()
		if err != nil {
			wrapFatalln("list installed versions", err)
			return
		}
		current, hasCurrent, err := s.Current()
		if err != nil {
			wrapFatalln("read current version", err)
			return
		}
		for _, tag := range tags {
			if hasCurrent && tag == current {
				fmt.Println(color.GreenString("-> %s", tag))
				continue
			}
			fmt.Printf("   %s\n", tag)
		}
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
