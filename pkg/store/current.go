package store

import (
	"os"

	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/status"
	"go.uber.org/zap"
)

// SetCurrent atomically points the store at tag. The version must be
// installed. The switch is a write-then-rename, never remove-then-create:
// a crash before the rename leaves the previous pointer untouched, and a
// reader never observes an absent or dangling pointer.
func (s *Store) SetCurrent(tag model.VersionTag) error {
	installed, err := s.IsInstalled(tag)
	if err != nil {
		return err
	}
	if !installed {
		return status.ErrNotInstalled.WrapMessage("%s", tag)
	}
	if err := s.writeRecord(model.GetPathToCurrent(s.home), string(tag)); err != nil {
		return err
	}
	s.l.Debug("current pointer switched", zap.String("tag", string(tag)))
	return nil
}

// Current returns the active version: the pointer target when present,
// else the default version, else absent.
func (s *Store) Current() (model.VersionTag, bool, error) {
	tag, ok, err := s.PointerTarget()
	if err != nil || ok {
		return tag, ok, err
	}
	return s.Default()
}

// PointerTarget returns the raw current pointer without the default
// fallback. Uninstall uses it to decide whether the pointer must be
// cleared: a version that is merely the default does not hold the pointer.
func (s *Store) PointerTarget() (model.VersionTag, bool, error) {
	value, ok, err := s.readRecord(model.GetPathToCurrent(s.home))
	if err != nil || !ok {
		return "", false, err
	}
	return model.VersionTag(value), true, nil
}

// ClearCurrent removes the current pointer. Clearing an absent pointer
// is not an error.
func (s *Store) ClearCurrent() error {
	err := s.fs.Remove(model.GetPathToCurrent(s.home))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
