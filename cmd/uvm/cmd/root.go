package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uvm-dev/uvm/pkg/dlogger"
	"github.com/uvm-dev/uvm/pkg/install"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uvm",
	Short: "uvm manages installed versions of the urbit runtime",
	Long: `uvm installs, switches between, aliases and removes versions of the
urbit runtime ("vere").

Installed versions live under a single home directory (default ~/.uvm).
Exactly one of them may be active at a time; the active version is a
persistent pointer shared by every uvm invocation, with the default
version as fallback. A project may pin the version to use through a
` + "`.vere-version`" + ` file in its working directory.
`,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	addHomeFlag(rootCmd)
	addLogLevelFlag(rootCmd)
	addRepoFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("repo", install.DefaultRepo)
	viper.SetDefault("loglevel", dlogger.LogLevelInfo)
	if os.Getenv("UVM_CONFIG") != "" {
		// Use config file from the flag.
		viper.SetConfigFile(os.Getenv("UVM_CONFIG"))
	} else {
		// a config generated into a custom --home must be found again
		if uvmFlags.root.home != "" {
			viper.AddConfigPath(uvmFlags.root.home)
		}
		viper.AddConfigPath("$HOME/.uvm")
		viper.SetConfigName("uvm")
	}
	viper.SetEnvPrefix("uvm")
	viper.AutomaticEnv() // read in environment variables that match

	// a config file is optional
	_ = viper.ReadInConfig()

	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setUvmParams(&uvmFlags)
}
