//go:build windows

package cmd

import (
	"os"
	"os/exec"
)

// execRuntime spawns the runtime executable and forwards its exit
// status. Windows has no process replacement.
func execRuntime(binary string, args []string) error {
	child := exec.Command(binary, args...) // #nosec
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	if err := child.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			osExit(exitErr.ExitCode())
			return nil
		}
		return err
	}
	osExit(0)
	return nil
}
