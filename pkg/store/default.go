package store

import (
	"os"

	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/status"
)

// SetDefault persists tag as the fallback active version, overwriting
// any prior value. The version must be installed.
func (s *Store) SetDefault(tag model.VersionTag) error {
	installed, err := s.IsInstalled(tag)
	if err != nil {
		return err
	}
	if !installed {
		return status.ErrNotInstalled.WrapMessage("%s", tag)
	}
	release, err := s.locker.Lock()
	if err != nil {
		return err
	}
	defer release()
	return s.writeRecord(model.GetPathToDefault(s.home), string(tag))
}

// Default returns the persisted default version, if any. The record is
// not validated against the registry here: a default left dangling by a
// later uninstall surfaces when the version is actually used.
func (s *Store) Default() (model.VersionTag, bool, error) {
	value, ok, err := s.readRecord(model.GetPathToDefault(s.home))
	if err != nil || !ok {
		return "", false, err
	}
	return model.VersionTag(value), true, nil
}

// ClearDefault removes the default version record if present
func (s *Store) ClearDefault() error {
	err := s.fs.Remove(model.GetPathToDefault(s.home))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
