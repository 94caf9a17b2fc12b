package cmd

import (
	"github.com/spf13/cobra"
)

type flagsT struct {
	root struct {
		home     string
		logLevel string
		repo     string
		token    string
	}
	install struct {
		noSmoke bool
	}
}

var uvmFlags flagsT

func addHomeFlag(cmd *cobra.Command) string {
	const home = "home"
	cmd.PersistentFlags().StringVar(&uvmFlags.root.home, home, "",
		"Version store home directory (default $UVM_HOME or ~/.uvm)")
	return home
}

func addLogLevelFlag(cmd *cobra.Command) string {
	const loglevel = "loglevel"
	cmd.PersistentFlags().StringVar(&uvmFlags.root.logLevel, loglevel, "",
		"Log level (debug, info, none)")
	return loglevel
}

func addRepoFlag(cmd *cobra.Command) string {
	const repo = "repo"
	cmd.PersistentFlags().StringVar(&uvmFlags.root.repo, repo, "",
		"GitHub repository publishing runtime releases, as owner/name")
	return repo
}

func addNoSmokeFlag(cmd *cobra.Command) string {
	const noSmoke = "no-smoke-check"
	cmd.Flags().BoolVar(&uvmFlags.install.noSmoke, noSmoke, false,
		"Skip the advisory post-install executable check")
	return noSmoke
}
