package store

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/uvm-dev/uvm/pkg/errors"
	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/status"
)

const testHome = "/home/zod/.uvm"

func testStore(t *testing.T) *Store {
	t.Helper()
	s := New(afero.NewMemMapFs(), testHome)
	require.NoError(t, s.EnsureDirs())
	return s
}

// fakeInstall drops a published version directory with an entry point,
// bypassing the installer.
func fakeInstall(t *testing.T, s *Store, tag model.VersionTag) {
	t.Helper()
	dir := model.GetPathToVersion(testHome, tag)
	require.NoError(t, s.Fs().MkdirAll(dir, 0755))
	require.NoError(t, afero.WriteFile(s.Fs(), model.GetPathToEntryPoint(testHome, tag), []byte("#!"), 0755))
}

func TestEnsureDirsIdempotent(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.EnsureDirs())
	require.NoError(t, s.EnsureDirs())
	ok, err := afero.DirExists(s.Fs(), model.GetPathToVersions(testHome))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestListOrdering(t *testing.T) {
	s := testStore(t)
	fakeInstall(t, s, "vere-v3.10")
	fakeInstall(t, s, "vere-v3.9")
	fakeInstall(t, s, "vere-v2.12")

	tags, err := s.List()
	require.NoError(t, err)
	require.Equal(t, []model.VersionTag{"vere-v2.12", "vere-v3.9", "vere-v3.10"}, tags)
}

func TestListSkipsStrays(t *testing.T) {
	s := testStore(t)
	fakeInstall(t, s, "vere-v3.4")
	require.NoError(t, s.Fs().MkdirAll(model.GetPathToVersions(testHome)+"/not-a-tag", 0755))
	require.NoError(t, afero.WriteFile(s.Fs(), model.GetPathToVersions(testHome)+"/stray-file", []byte("x"), 0644))

	tags, err := s.List()
	require.NoError(t, err)
	require.Equal(t, []model.VersionTag{"vere-v3.4"}, tags)
}

func TestIsInstalled(t *testing.T) {
	s := testStore(t)
	ok, err := s.IsInstalled("vere-v3.4")
	require.NoError(t, err)
	require.False(t, ok)

	fakeInstall(t, s, "vere-v3.4")
	ok, err = s.IsInstalled("vere-v3.4")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSetCurrentRequiresInstalled(t *testing.T) {
	s := testStore(t)
	err := s.SetCurrent("vere-v3.4")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrNotInstalled))
}

func TestCurrentFallbackChain(t *testing.T) {
	s := testStore(t)

	_, ok, err := s.Current()
	require.NoError(t, err)
	require.False(t, ok)

	fakeInstall(t, s, "vere-v3.3")
	require.NoError(t, s.SetDefault("vere-v3.3"))

	tag, ok, err := s.Current()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, model.VersionTag("vere-v3.3"), tag)

	fakeInstall(t, s, "vere-v3.4")
	require.NoError(t, s.SetCurrent("vere-v3.4"))

	tag, ok, err = s.Current()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, model.VersionTag("vere-v3.4"), tag)

	// the raw pointer ignores the default
	tag, ok, err = s.PointerTarget()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, model.VersionTag("vere-v3.4"), tag)
}

func TestSetCurrentSwitchesAtomically(t *testing.T) {
	s := testStore(t)
	fakeInstall(t, s, "vere-v3.3")
	fakeInstall(t, s, "vere-v3.4")
	require.NoError(t, s.SetCurrent("vere-v3.3"))
	require.NoError(t, s.SetCurrent("vere-v3.4"))

	tag, ok, err := s.Current()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, model.VersionTag("vere-v3.4"), tag)

	// no temporary droppings next to the pointer
	infos, err := afero.ReadDir(s.Fs(), testHome)
	require.NoError(t, err)
	for _, info := range infos {
		require.NotContains(t, info.Name(), ".tmp-")
	}
}

func TestCrashBeforeRenameLeavesPriorPointer(t *testing.T) {
	s := testStore(t)
	fakeInstall(t, s, "vere-v3.3")
	fakeInstall(t, s, "vere-v3.4")
	require.NoError(t, s.SetCurrent("vere-v3.3"))

	// simulate the crash window: the new pointer value was written to its
	// temporary name but the process died before the rename
	tmp := model.GetPathToCurrent(testHome) + ".tmp-deadbeef"
	require.NoError(t, afero.WriteFile(s.Fs(), tmp, []byte("vere-v3.4\n"), 0644))

	tag, ok, err := s.Current()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, model.VersionTag("vere-v3.3"), tag)
}

func TestAliasRoundTrip(t *testing.T) {
	s := testStore(t)
	fakeInstall(t, s, "vere-v3.4")

	require.NoError(t, s.SetAlias("latest", "vere-v3.4"))
	target, ok, err := s.Alias("latest")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, model.VersionTag("vere-v3.4"), target)

	entries, err := s.Aliases()
	require.NoError(t, err)
	require.Equal(t, []AliasEntry{{Name: "latest", Target: "vere-v3.4"}}, entries)

	require.NoError(t, s.RemoveAlias("latest"))
	_, ok, err = s.Alias("latest")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSetAliasRequiresInstalled(t *testing.T) {
	s := testStore(t)
	err := s.SetAlias("latest", "vere-v3.4")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrNotInstalled))
}

func TestRemoveUnknownAlias(t *testing.T) {
	s := testStore(t)
	err := s.RemoveAlias("nope")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrUnknownAlias))
}

func TestDanglingAliasSurvivesUninstall(t *testing.T) {
	s := testStore(t)
	fakeInstall(t, s, "vere-v3.4")
	require.NoError(t, s.SetAlias("latest", "vere-v3.4"))

	_, err := s.Uninstall("vere-v3.4")
	require.NoError(t, err)

	// no cascading delete: the alias record survives, dangling
	target, ok, err := s.Alias("latest")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, model.VersionTag("vere-v3.4"), target)
}

func TestUninstall(t *testing.T) {
	s := testStore(t)
	fakeInstall(t, s, "vere-v3.4")
	require.NoError(t, s.SetCurrent("vere-v3.4"))
	require.NoError(t, s.SetDefault("vere-v3.4"))

	wasActive, err := s.Uninstall("vere-v3.4")
	require.NoError(t, err)
	require.True(t, wasActive)

	ok, err := s.IsInstalled("vere-v3.4")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = s.Current()
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = s.Default()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUninstallInactiveKeepsPointer(t *testing.T) {
	s := testStore(t)
	fakeInstall(t, s, "vere-v3.3")
	fakeInstall(t, s, "vere-v3.4")
	require.NoError(t, s.SetCurrent("vere-v3.4"))

	wasActive, err := s.Uninstall("vere-v3.3")
	require.NoError(t, err)
	require.False(t, wasActive)

	tag, ok, err := s.Current()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, model.VersionTag("vere-v3.4"), tag)
}

func TestUninstallNotInstalled(t *testing.T) {
	s := testStore(t)
	_, err := s.Uninstall("vere-v3.4")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrNotInstalled))
}

func TestPublish(t *testing.T) {
	s := testStore(t)
	staging := model.GetPathToStaging(testHome) + "/stage-abc"
	require.NoError(t, s.Fs().MkdirAll(staging, 0755))
	require.NoError(t, afero.WriteFile(s.Fs(), staging+"/urbit", []byte("#!"), 0755))

	require.NoError(t, s.Publish(staging, "vere-v3.4"))

	ok, err := s.IsInstalled("vere-v3.4")
	require.NoError(t, err)
	require.True(t, ok)

	// staging slot is gone
	ok, err = afero.DirExists(s.Fs(), staging)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPublishLosesRaceGracefully(t *testing.T) {
	s := testStore(t)
	fakeInstall(t, s, "vere-v3.4")

	staging := model.GetPathToStaging(testHome) + "/stage-abc"
	require.NoError(t, s.Fs().MkdirAll(staging, 0755))
	require.NoError(t, afero.WriteFile(s.Fs(), staging+"/urbit", []byte("other"), 0755))

	require.NoError(t, s.Publish(staging, "vere-v3.4"))

	// the earlier winner is untouched, the loser's staging is discarded
	data, err := afero.ReadFile(s.Fs(), model.GetPathToEntryPoint(testHome, "vere-v3.4"))
	require.NoError(t, err)
	require.Equal(t, "#!", string(data))

	ok, err := afero.DirExists(s.Fs(), staging)
	require.NoError(t, err)
	require.False(t, ok)
}
