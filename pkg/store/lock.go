package store

import (
	"github.com/gofrs/flock"
	"github.com/uvm-dev/uvm/internal/rand"
)

// Locker serializes non-atomic store mutations across processes.
//
// Single renames do not need it; uninstall's clear-pointer-then-remove
// sequence and the install publish step do, so that concurrent install
// and uninstall runs cannot interleave on the same tag.
type Locker interface {
	// Lock acquires the exclusive lock, blocking until available, and
	// returns the release function.
	Lock() (release func(), err error)
}

type nopLocker struct{}

func (nopLocker) Lock() (func(), error) {
	return func() {}, nil
}

// NewNopLocker returns a lock that does nothing. Used with in-memory
// file systems, where there is no cross-process sharing to guard.
func NewNopLocker() Locker {
	return nopLocker{}
}

type flockLocker struct {
	path string
}

// NewFlockLocker returns an advisory file lock at the given path,
// exclusive per store mutation.
func NewFlockLocker(path string) Locker {
	return &flockLocker{path: path}
}

func (f *flockLocker) Lock() (func(), error) {
	fl := flock.New(f.path)
	if err := fl.Lock(); err != nil {
		return nil, err
	}
	return func() { _ = fl.Unlock() }, nil
}

func tempSuffix() string {
	return rand.LetterString(8)
}
