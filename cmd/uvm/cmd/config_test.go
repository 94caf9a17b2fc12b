package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestInitConfigReadsCustomHome(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(home, "uvm.yaml"),
		[]byte("repo: zod/vere\ntoken: s3cret\n"), 0600))

	t.Setenv("UVM_CONFIG", "")
	prev := uvmFlags
	viper.Reset()
	defer func() {
		uvmFlags = prev
		viper.Reset()
	}()
	uvmFlags = flagsT{}
	uvmFlags.root.home = home

	initConfig()

	// the file generated under --home is picked up on the next run
	require.Equal(t, "zod/vere", uvmFlags.root.repo)
	require.Equal(t, "s3cret", uvmFlags.root.token)
	require.Equal(t, home, uvmFlags.root.home)
}
