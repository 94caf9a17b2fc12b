package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/release"
)

var lsRemoteCmd = &cobra.Command{
	Use:   "ls-remote",
	Short: "List versions available from the release index",
	Long:  `Lists published versions newest first, marking installed ones.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := mustStore()
		releases, err := newIndex().FetchReleases(context.Background(), uvmFlags.root.repo)
		if err != nil {
			wrapFatalln("fetch release index", err)
			return
		}
		release.SortDescending(releases)

		table := uitable.New()
		table.AddRow("VERSION", "STATUS")
		for _, rel := range releases {
			if !model.IsCanonical(rel.Tag) {
				continue
			}
			installed, err := s.IsInstalled(model.VersionTag(rel.Tag))
			if err != nil {
				wrapFatalln("check installed state", err)
				return
			}
			if installed {
				table.AddRow(rel.Tag, color.GreenString("installed"))
				continue
			}
			table.AddRow(rel.Tag, "")
		}
		fmt.Println(table)
	},
}

func init() {
	rootCmd.AddCommand(lsRemoteCmd)
}
