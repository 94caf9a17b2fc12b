package install

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/uvm-dev/uvm/pkg/errors"
	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/release"
	"github.com/uvm-dev/uvm/pkg/status"
	"github.com/uvm-dev/uvm/pkg/store"
)

const testHome = "/home/zod/.uvm"

var testPlatform = model.Platform{OS: "linux", Arch: "x86_64"}

type tarEntry struct {
	name string
	mode int64
	body string
}

func makeTgz(t *testing.T, entries ...tarEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for _, e := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     e.name,
			Mode:     e.mode,
			Size:     int64(len(e.body)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

type stubIndex struct {
	releases []release.Release
	err      error
	calls    int
}

func (s *stubIndex) FetchReleases(ctx context.Context, repo string) ([]release.Release, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.releases, nil
}

// testRig serves payload over HTTP and wires a memory store, a stub
// index advertising vere-v3.4 and an installer ready to run.
func testRig(t *testing.T, payload []byte) (*Installer, *store.Store, *stubIndex) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	t.Cleanup(srv.Close)

	s := store.New(afero.NewMemMapFs(), testHome)
	require.NoError(t, s.EnsureDirs())
	idx := &stubIndex{releases: []release.Release{{
		Tag: "vere-v3.4",
		Assets: []release.Asset{
			{Name: "vere-v3.4-linux-x86_64.tgz", URL: srv.URL + "/linux-x86_64.tgz"},
			{Name: "vere-v3.4-macos-aarch64.tgz", URL: srv.URL + "/macos-aarch64.tgz"},
		},
	}}}
	inst, err := New(s, idx, WithPlatform(testPlatform), WithSmokeCheck(false))
	require.NoError(t, err)
	return inst, s, idx
}

func requireNoResidue(t *testing.T, s *store.Store) {
	t.Helper()
	infos, err := afero.ReadDir(s.Fs(), model.GetPathToStaging(testHome))
	require.NoError(t, err)
	require.Empty(t, infos, "staging area must be clean")
}

func TestInstallEndToEnd(t *testing.T) {
	payload := makeTgz(t, tarEntry{name: "vere-v3.4/vere", mode: 0755, body: "#!runtime"})
	inst, s, _ := testRig(t, payload)

	require.NoError(t, inst.Install(context.Background(), "vere-v3.4"))

	ok, err := s.IsInstalled("vere-v3.4")
	require.NoError(t, err)
	require.True(t, ok)

	for _, entry := range []string{model.EntryPointUrbit, model.EntryPointVere} {
		data, err := afero.ReadFile(s.Fs(), model.GetPathToVersion(testHome, "vere-v3.4")+"/"+entry)
		require.NoError(t, err, "entry point %s", entry)
		require.Equal(t, "#!runtime", string(data))
	}
	requireNoResidue(t, s)
}

func TestInstallIdempotent(t *testing.T) {
	inst, s, idx := testRig(t, nil)
	require.NoError(t, s.Fs().MkdirAll(model.GetPathToVersion(testHome, "vere-v3.4"), 0755))

	require.NoError(t, inst.Install(context.Background(), "vere-v3.4"))
	require.Zero(t, idx.calls, "an installed tag must not touch the network")
}

func TestInstallTagNotInIndex(t *testing.T) {
	inst, s, _ := testRig(t, nil)

	err := inst.Install(context.Background(), "vere-v9.9")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrAssetNotFound))
	requireNoResidue(t, s)
}

func TestInstallNoPlatformAsset(t *testing.T) {
	payload := makeTgz(t, tarEntry{name: "vere", mode: 0755, body: "x"})
	inst, s, idx := testRig(t, payload)
	idx.releases[0].Assets = []release.Asset{{Name: "vere-v3.4-macos-aarch64.tgz", URL: "unused"}}

	err := inst.Install(context.Background(), "vere-v3.4")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrAssetNotFound))
	requireNoResidue(t, s)
}

func TestInstallIndexErrorPassesThrough(t *testing.T) {
	inst, _, idx := testRig(t, nil)
	idx.err = status.ErrRateLimited

	err := inst.Install(context.Background(), "vere-v3.4")
	require.True(t, errors.Is(err, status.ErrRateLimited))
}

func TestInstallEmptyDownload(t *testing.T) {
	inst, s, _ := testRig(t, []byte{})

	err := inst.Install(context.Background(), "vere-v3.4")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrDownload), "got %v", err)
	requireNoResidue(t, s)
}

func TestInstallCorruptArchive(t *testing.T) {
	inst, s, _ := testRig(t, []byte("this is not a tarball"))

	err := inst.Install(context.Background(), "vere-v3.4")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrExtraction), "got %v", err)

	// the central property: a failed install leaves no version directory
	ok, err2 := s.IsInstalled("vere-v3.4")
	require.NoError(t, err2)
	require.False(t, ok)
	requireNoResidue(t, s)
}

func TestInstallBinaryMissing(t *testing.T) {
	payload := makeTgz(t,
		tarEntry{name: "vere-v3.4/README.md", mode: 0644, body: "docs"},
		tarEntry{name: "vere-v3.4/vere", mode: 0644, body: "not executable"},
	)
	inst, s, _ := testRig(t, payload)

	err := inst.Install(context.Background(), "vere-v3.4")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrBinaryMissing), "got %v", err)

	ok, err2 := s.IsInstalled("vere-v3.4")
	require.NoError(t, err2)
	require.False(t, ok)
	requireNoResidue(t, s)
}

func TestInstallPathTraversalRejected(t *testing.T) {
	payload := makeTgz(t, tarEntry{name: "../../evil", mode: 0755, body: "x"})
	inst, s, _ := testRig(t, payload)

	err := inst.Install(context.Background(), "vere-v3.4")
	require.Error(t, err)
	require.True(t, errors.Is(err, status.ErrExtraction))
	requireNoResidue(t, s)

	ok, err := afero.Exists(s.Fs(), "/home/zod/evil")
	require.NoError(t, err)
	require.False(t, ok)
}
