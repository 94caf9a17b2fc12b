package install

import (
	"io"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/status"
	"go.uber.org/zap"
)

// findRuntime locates the extracted runtime executable inside staging:
// a regular file with the executable bit whose name is, or is prefixed
// by, one of the runtime names. On failure the caller removes staging.
func (inst *Installer) findRuntime(staging string) (string, error) {
	var found string
	err := afero.Walk(inst.fs, staging, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if found != "" || info.IsDir() {
			return nil
		}
		if info.Mode()&0111 == 0 {
			return nil
		}
		if isRuntimeName(info.Name()) {
			found = p
		}
		return nil
	})
	if err != nil {
		return "", status.ErrBinaryMissing.Wrap(err)
	}
	if found == "" {
		return "", status.ErrBinaryMissing.WrapMessage("no executable under %s", staging)
	}
	return found, nil
}

func isRuntimeName(name string) bool {
	for _, want := range []string{model.EntryPointVere, model.EntryPointUrbit} {
		if name == want || strings.HasPrefix(name, want+"-") {
			return true
		}
	}
	return false
}

// canonicalize creates the two canonical entry point names inside
// staging, both referring to the discovered executable. A symlink is
// preferred when the file system supports it, a copy otherwise.
func (inst *Installer) canonicalize(staging, binary string) error {
	for _, name := range []string{model.EntryPointUrbit, model.EntryPointVere} {
		target := path.Join(staging, name)
		if target == binary {
			continue
		}
		if err := inst.link(binary, target); err != nil {
			return err
		}
	}
	return nil
}

func (inst *Installer) link(binary, target string) error {
	if linker, ok := inst.fs.(afero.Linker); ok {
		rel, err := filepath.Rel(path.Dir(target), binary)
		if err == nil {
			if err = linker.SymlinkIfPossible(rel, target); err == nil {
				return nil
			}
		}
		// fall through to a copy on any symlink failure
	}
	src, err := inst.fs.Open(binary)
	if err != nil {
		return status.ErrBinaryMissing.Wrap(err)
	}
	defer src.Close()
	dst, err := inst.fs.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return status.ErrBinaryMissing.Wrap(err)
	}
	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return status.ErrBinaryMissing.Wrap(err)
	}
	return inst.fs.Chmod(target, 0755)
}

// smokeCheck invokes the freshly installed runtime's version flag.
// Purely advisory: a failure is logged as a warning and the install
// still counts.
func (inst *Installer) smokeCheck(tag model.VersionTag) {
	binary := inst.store.BinaryPath(tag)
	out, err := exec.Command(binary, "--version").CombinedOutput() // #nosec
	if err != nil {
		inst.l.Warn("installed runtime failed its smoke check",
			zap.String("tag", string(tag)),
			zap.Error(err))
		return
	}
	inst.l.Debug("smoke check passed",
		zap.String("tag", string(tag)),
		zap.String("output", strings.TrimSpace(string(out))))
}
