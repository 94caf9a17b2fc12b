package cmd

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/uvm-dev/uvm/pkg/status"
)

var execCmd = &cobra.Command{
	Use:   "exec <version> <command...>",
	Short: "Run a command with a version's directory on PATH",
	Long: `Spawns the given command with the installed version's directory
prepended to PATH, so "urbit" and "vere" resolve to that version. The
command's exit status is forwarded. The search path extension only
affects the spawned process.`,
	Example: `% uvm exec 3.4 urbit -F zod`,
	Args:    cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustStore()
		tag, err := mustResolver(s).Resolve(args[0])
		if err != nil {
			wrapFatalln("resolve version", err)
			return
		}
		installed, err := s.IsInstalled(tag)
		if err != nil {
			wrapFatalln("check installed state", err)
			return
		}
		if !installed {
			wrapFatalln("exec "+string(tag)+" (run 'uvm install "+string(tag)+"' first)", status.ErrNotInstalled)
			return
		}

		child := exec.Command(args[1], args[2:]...) // #nosec
		child.Env = append([]string{"PATH=" + s.Path(tag) + string(os.PathListSeparator) + os.Getenv("PATH")},
			environWithoutPath()...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		if err := child.Run(); err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				osExit(exitErr.ExitCode())
				return
			}
			wrapFatalln("exec "+args[1], err)
			return
		}
	},
}

func environWithoutPath() []string {
	env := os.Environ()
	out := env[:0]
	for _, kv := range env {
		if len(kv) >= 5 && kv[:5] == "PATH=" {
			continue
		}
		out = append(out, kv)
	}
	return out
}

func init() {
	execCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(execCmd)
}
