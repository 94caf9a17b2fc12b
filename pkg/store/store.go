// Package store manages the persistent on-disk state shared by every
// invocation of the tool: installed version directories, the current
// pointer, the default version and user aliases.
//
// All state lives under a single home directory:
//
//	<home>/versions/<tag>/...   one installed version per tag
//	<home>/current              pointer to the active version, or absent
//	<home>/default              fallback version, or absent
//	<home>/aliases/<name>       one target tag per alias
//	<home>/tmp/                 private staging, never visible to readers
//
// Each CLI run is a fresh process; concurrent runs share this state with
// no coordination beyond what the store provides. Pointer switches are
// single atomic renames and multi-step mutations take the store lock.
package store

import (
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/uvm-dev/uvm/pkg/model"
	"go.uber.org/zap"
)

// Store gives access to the persistent version store rooted at a home
// directory. The zero value is not usable, use New.
type Store struct {
	fs     afero.Fs
	home   string
	l      *zap.Logger
	locker Locker
}

// Option modifies the store at construction time
type Option func(*Store)

// WithLogger sets a logger on the store
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.l = l
		}
	}
}

// WithLocker sets the advisory lock guarding non-atomic mutations.
// The default is a no-op lock, appropriate for in-memory test stores.
func WithLocker(lk Locker) Option {
	return func(s *Store) {
		if lk != nil {
			s.locker = lk
		}
	}
}

// New builds a store over fs rooted at home
func New(fs afero.Fs, home string, opts ...Option) *Store {
	s := &Store{
		fs:     fs,
		home:   home,
		l:      zap.NewNop(),
		locker: nopLocker{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Home returns the store root directory
func (s *Store) Home() string {
	return s.home
}

// Fs returns the file system the store operates on
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// EnsureDirs creates the store directory skeleton. It is idempotent and
// runs on every invocation: there is no separate init command.
func (s *Store) EnsureDirs() error {
	for _, dir := range []string{
		s.home,
		model.GetPathToVersions(s.home),
		model.GetPathToAliases(s.home),
		model.GetPathToStaging(s.home),
	} {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// readRecord reads a single-value record file, trimming whitespace.
// A missing file is reported as absent, not as an error.
func (s *Store) readRecord(path string) (string, bool, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

// writeRecord atomically replaces a single-value record file: the value
// is written to a private temporary name first, then renamed over the
// destination so no reader ever sees a missing or half-written record.
func (s *Store) writeRecord(path, value string) error {
	tmp := path + ".tmp-" + tempSuffix()
	if err := afero.WriteFile(s.fs, tmp, []byte(value+"\n"), 0644); err != nil {
		return err
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	return nil
}
