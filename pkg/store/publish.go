package store

import (
	"github.com/uvm-dev/uvm/pkg/model"
	"go.uber.org/zap"
)

// Publish makes a fully populated staging directory visible as the
// installed version for tag, as a single atomic rename. No reader of the
// registry can ever observe a partially populated directory at the final
// path: the directory either does not exist yet or is complete.
//
// When a concurrent install already published the same tag, the staging
// directory is discarded and the install counts as a success.
func (s *Store) Publish(stagingDir string, tag model.VersionTag) error {
	release, err := s.locker.Lock()
	if err != nil {
		return err
	}
	defer release()

	installed, err := s.IsInstalled(tag)
	if err != nil {
		return err
	}
	if installed {
		s.l.Debug("tag already published, discarding staging", zap.String("tag", string(tag)))
		return s.fs.RemoveAll(stagingDir)
	}
	return s.fs.Rename(stagingDir, model.GetPathToVersion(s.home, tag))
}
