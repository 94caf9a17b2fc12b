package store

import (
	"os"
	"sort"

	"github.com/spf13/afero"
	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/status"
)

// AliasEntry is one persisted name -> tag record
type AliasEntry struct {
	Name   string
	Target model.VersionTag
}

// SetAlias persists name -> tag. The target must be installed at the
// time the alias is written; it is not revalidated afterwards, so an
// alias can go dangling when its target is uninstalled and only fails
// when resolved and used.
func (s *Store) SetAlias(name string, tag model.VersionTag) error {
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
	return s.writeRecord(model.GetPathToAlias(s.home, name), string(tag))
}

// Alias returns the target of a defined alias. An undefined name is
// reported as absent, not as an error: the resolver treats it as a
// version string instead.
func (s *Store) Alias(name string) (model.VersionTag, bool, error) {
	value, ok, err := s.readRecord(model.GetPathToAlias(s.home, name))
	if err != nil || !ok {
		return "", false, err
	}
	return model.VersionTag(value), true, nil
}

// RemoveAlias deletes a defined alias
func (s *Store) RemoveAlias(name string) error {
	release, err := s.locker.Lock()
	if err != nil {
		return err
	}
	defer release()
	err = s.fs.Remove(model.GetPathToAlias(s.home, name))
	if err != nil {
		if os.IsNotExist(err) {
			return status.ErrUnknownAlias.WrapMessage("%q", name)
		}
		return err
	}
	return nil
}

// Aliases returns all persisted aliases sorted by name
func (s *Store) Aliases() ([]AliasEntry, error) {
	infos, err := afero.ReadDir(s.fs, model.GetPathToAliases(s.home))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	entries := make([]AliasEntry, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		target, ok, err := s.Alias(info.Name())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		entries = append(entries, AliasEntry{Name: info.Name(), Target: target})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}
