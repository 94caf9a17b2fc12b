package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/uvm-dev/uvm/pkg/dlogger"
	"github.com/uvm-dev/uvm/pkg/install"
	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/release"
	"github.com/uvm-dev/uvm/pkg/resolve"
	"github.com/uvm-dev/uvm/pkg/store"
	"go.uber.org/zap"
)

// mustLogger builds the command logger from the effective log level
func mustLogger() *zap.Logger {
	level := uvmFlags.root.logLevel
	if level == "" {
		level = dlogger.LogLevelInfo
	}
	l, err := dlogger.GetLogger(level)
	if err != nil {
		wrapFatalln("configure logging", err)
		return nil
	}
	return l
}

// mustStore opens the version store, creating its directory skeleton.
// Mutations are serialized across processes with an advisory lock file
// inside the store home.
func mustStore() *store.Store {
	home := uvmFlags.root.home
	s := store.New(afero.NewOsFs(), home,
		store.WithLogger(mustLogger()),
		store.WithLocker(store.NewFlockLocker(model.GetPathToLock(home))),
	)
	if err := s.EnsureDirs(); err != nil {
		wrapFatalln("initialize version store", err)
		return nil
	}
	return s
}

func mustResolver(s *store.Store) *resolve.Resolver {
	return resolve.New(s)
}

// patched over during test
var newIndex = func() release.Index {
	return release.NewGitHub(release.WithToken(uvmFlags.root.token))
}

func mustInstaller(s *store.Store) *install.Installer {
	inst, err := install.New(s, newIndex(),
		install.WithLogger(mustLogger()),
		install.WithRepo(uvmFlags.root.repo),
		install.WithSmokeCheck(!uvmFlags.install.noSmoke),
	)
	if err != nil {
		wrapFatalln("prepare installer", err)
		return nil
	}
	return inst
}

// workingDir is where the project pin file is looked up
func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
