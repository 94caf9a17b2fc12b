package store

import (
	"sort"

	"github.com/spf13/afero"
	"github.com/uvm-dev/uvm/pkg/model"
)

// List returns the installed version tags in ascending semantic order:
// vere-v3.9 sorts before vere-v3.10, not after.
//
// Entries under versions/ that do not parse as canonical tags are
// ignored; an installed version is only ever a fully published
// directory, so there is nothing partial to filter.
func (s *Store) List() ([]model.VersionTag, error) {
	infos, err := afero.ReadDir(s.fs, model.GetPathToVersions(s.home))
	if err != nil {
		return nil, err
	}
	tags := make([]model.VersionTag, 0, len(infos))
	for _, info := range infos {
		if !info.IsDir() {
			continue
		}
		if !model.IsCanonical(info.Name()) {
			continue
		}
		tags = append(tags, model.VersionTag(info.Name()))
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Compare(tags[j]) < 0
	})
	return tags, nil
}

// IsInstalled reports whether tag has a published version directory
func (s *Store) IsInstalled(tag model.VersionTag) (bool, error) {
	return afero.DirExists(s.fs, model.GetPathToVersion(s.home, tag))
}

// Path returns the version directory for tag
func (s *Store) Path(tag model.VersionTag) string {
	return model.GetPathToVersion(s.home, tag)
}

// BinaryPath returns the canonical runtime entry point for tag
func (s *Store) BinaryPath(tag model.VersionTag) string {
	return model.GetPathToEntryPoint(s.home, tag)
}
