package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// keep field names aligned with their serialized names for viper
	Home     string `json:"home" yaml:"home"`         // version store home directory
	Repo     string `json:"repo" yaml:"repo"`         // release repository, owner/name
	LogLevel string `json:"loglevel" yaml:"loglevel"` // log verbosity
	Token    string `json:"token" yaml:"token"`       // GitHub API token, raises rate limits
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// setUvmParams fills flag values left unset from the configuration,
// flags taking precedence over file and environment.
func (c *CLIConfig) setUvmParams(flags *flagsT) {
	if flags.root.home == "" {
		flags.root.home = c.Home
	}
	if flags.root.home == "" {
		flags.root.home = defaultHome()
	}
	if flags.root.logLevel == "" {
		flags.root.logLevel = c.LogLevel
	}
	if flags.root.repo == "" {
		flags.root.repo = c.Repo
	}
	if flags.root.token == "" {
		flags.root.token = c.Token
	}
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// a relative store beats dying before the command even runs
		return ".uvm"
	}
	return filepath.Join(home, ".uvm")
}
