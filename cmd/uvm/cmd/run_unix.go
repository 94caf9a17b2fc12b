//go:build !windows

package cmd

import (
	"os"
	"syscall"
)

// execRuntime replaces the current process image with the runtime
// executable. It only returns on failure.
func execRuntime(binary string, args []string) error {
	argv := append([]string{binary}, args...)
	return syscall.Exec(binary, argv, os.Environ()) // #nosec
}
