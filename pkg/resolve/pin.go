package resolve

import (
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/status"
)

// PinnedVersion reads the project pin file in dir, returning the raw
// version string of its first line. Absence is not an error.
func PinnedVersion(fs afero.Fs, dir string) (string, bool, error) {
	data, err := afero.ReadFile(fs, path.Join(dir, model.PinFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	line := string(data)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}
	return line, true, nil
}

// ResolveArgOrPin resolves the explicit argument when given, else the
// project pin found in dir. With neither, resolution fails on empty
// input.
func (r *Resolver) ResolveArgOrPin(arg, dir string) (model.VersionTag, error) {
	if strings.TrimSpace(arg) != "" {
		return r.Resolve(arg)
	}
	pinned, ok, err := PinnedVersion(r.store.Fs(), dir)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", status.ErrEmptyInput
	}
	return r.Resolve(pinned)
}
