package store

import (
	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/status"
	"go.uber.org/zap"
)

// Uninstall removes an installed version and every record pointing at it.
//
// Order matters: the current pointer is cleared before the directory goes
// away so the pointer is never left dangling, then the version directory
// is removed, then a default record naming the tag is dropped. The whole
// sequence holds the store lock because it is not a single atomic step.
//
// Removing the active version is permitted; running processes keep their
// own file handles. The caller is expected to warn, not refuse.
func (s *Store) Uninstall(tag model.VersionTag) (wasActive bool, err error) {
	release, err := s.locker.Lock()
	if err != nil {
		return false, err
	}
	defer release()

	installed, err := s.IsInstalled(tag)
	if err != nil {
		return false, err
	}
	if !installed {
		return false, status.ErrNotInstalled.WrapMessage("%s", tag)
	}

	target, ok, err := s.PointerTarget()
	if err != nil {
		return false, err
	}
	if ok && target == tag {
		wasActive = true
		if err = s.ClearCurrent(); err != nil {
			return wasActive, err
		}
	}

	if err = s.fs.RemoveAll(model.GetPathToVersion(s.home, tag)); err != nil {
		return wasActive, err
	}
	s.l.Debug("version removed", zap.String("tag", string(tag)))

	def, ok, err := s.Default()
	if err != nil {
		return wasActive, err
	}
	if ok && def == tag {
		if err = s.ClearDefault(); err != nil {
			return wasActive, err
		}
	}
	return wasActive, nil
}
