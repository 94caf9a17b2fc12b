package install

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path"
	"strings"

	"github.com/uvm-dev/uvm/internal/rand"
	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/status"
)

// extract unpacks the gzipped tarball at archive into a fresh staging
// directory and returns it. On any failure the staging directory is
// removed before returning.
func (inst *Installer) extract(archive string) (string, error) {
	staging := path.Join(model.GetPathToStaging(inst.store.Home()), "stage-"+rand.LetterString(8))
	if err := inst.fs.MkdirAll(staging, 0755); err != nil {
		return "", status.ErrExtraction.Wrap(err)
	}
	if err := inst.untar(archive, staging); err != nil {
		_ = inst.fs.RemoveAll(staging)
		return "", err
	}
	return staging, nil
}

func (inst *Installer) untar(archive, dest string) error {
	f, err := inst.fs.Open(archive)
	if err != nil {
		return status.ErrExtraction.Wrap(err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return status.ErrExtraction.Wrap(err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return status.ErrExtraction.Wrap(err)
		}
		if err := inst.writeEntry(dest, header, tr); err != nil {
			return err
		}
	}
}

func (inst *Installer) writeEntry(dest string, header *tar.Header, r io.Reader) error {
	name := path.Clean(header.Name)
	if name == "." {
		return nil
	}
	// entries escaping the staging directory are treated as corruption
	if name == ".." || strings.HasPrefix(name, "../") || path.IsAbs(name) {
		return status.ErrExtraction.WrapMessage("archive entry %q escapes extraction root", header.Name)
	}
	target := path.Join(dest, name)

	switch header.Typeflag {
	case tar.TypeDir:
		return wrapExtract(inst.fs.MkdirAll(target, 0755))
	case tar.TypeReg:
		if err := inst.fs.MkdirAll(path.Dir(target), 0755); err != nil {
			return status.ErrExtraction.Wrap(err)
		}
		out, err := inst.fs.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode)&os.ModePerm)
		if err != nil {
			return status.ErrExtraction.Wrap(err)
		}
		_, err = io.Copy(out, r)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return status.ErrExtraction.Wrap(err)
		}
		return wrapExtract(inst.fs.Chmod(target, os.FileMode(header.Mode)&os.ModePerm))
	default:
		// symlinks, devices and the like do not occur in runtime tarballs
		return nil
	}
}

func wrapExtract(err error) error {
	if err != nil {
		return status.ErrExtraction.Wrap(err)
	}
	return nil
}
