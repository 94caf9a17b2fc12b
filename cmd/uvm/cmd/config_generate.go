package cmd

import (
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage the uvm config file",
}

var configGen = &cobra.Command{
	Use:   "generate",
	Short: "Generate a uvm config file from the current settings",
	Long: `Writes the active configuration (home, repository, log level, token)
to <home>/uvm.yaml so it no longer has to be passed as flags or
environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := CLIConfig{
			Home:     uvmFlags.root.home,
			Repo:     uvmFlags.root.repo,
			LogLevel: uvmFlags.root.logLevel,
			Token:    uvmFlags.root.token,
		}
		data, err := yaml.Marshal(out)
		if err != nil {
			wrapFatalln("serialize config", err)
			return
		}
		fs := afero.NewOsFs()
		if err := fs.MkdirAll(uvmFlags.root.home, 0755); err != nil {
			wrapFatalln("create config directory", err)
			return
		}
		target := filepath.Join(uvmFlags.root.home, "uvm.yaml")
		if err := afero.WriteFile(fs, target, data, 0600); err != nil {
			wrapFatalln("write config file", err)
			return
		}
		infoLogger.Println("wrote " + target)
	},
}

func init() {
	configCmd.AddCommand(configGen)
	rootCmd.AddCommand(configCmd)
}
