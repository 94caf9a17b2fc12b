// Package install implements the verify-then-activate installation
// pipeline: query the release index, select the platform asset, download,
// extract into private staging, validate the runtime executable, create
// the canonical entry points and atomically publish.
//
// Every stage fails fast; partial artifacts never outlive a failed
// install, and nothing becomes visible to the registry before the final
// atomic rename.
package install

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/afero"
	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/release"
	"github.com/uvm-dev/uvm/pkg/status"
	"github.com/uvm-dev/uvm/pkg/store"
	"go.uber.org/zap"
)

// Installer drives the installation pipeline against a store and a
// release index.
type Installer struct {
	fs       afero.Fs
	store    *store.Store
	index    release.Index
	client   *http.Client
	l        *zap.Logger
	platform model.Platform
	repo     string
	smoke    bool
}

// Option customizes the installer
type Option func(*Installer)

// WithLogger sets the installer logger
func WithLogger(l *zap.Logger) Option {
	return func(i *Installer) {
		if l != nil {
			i.l = l
		}
	}
}

// WithHTTPClient overrides the download client
func WithHTTPClient(c *http.Client) Option {
	return func(i *Installer) {
		if c != nil {
			i.client = c
		}
	}
}

// WithPlatform overrides host platform detection
func WithPlatform(p model.Platform) Option {
	return func(i *Installer) {
		i.platform = p
	}
}

// WithRepo sets the release repository, "owner/name"
func WithRepo(repo string) Option {
	return func(i *Installer) {
		if repo != "" {
			i.repo = repo
		}
	}
}

// WithSmokeCheck toggles the advisory post-install executable check
func WithSmokeCheck(enabled bool) Option {
	return func(i *Installer) {
		i.smoke = enabled
	}
}

// DefaultRepo is the release repository of the vere runtime
const DefaultRepo = "urbit/vere"

// New builds an installer. The host platform is detected up front unless
// overridden: an unsupported OS/architecture pair fails here, before any
// network traffic.
func New(s *store.Store, idx release.Index, opts ...Option) (*Installer, error) {
	inst := &Installer{
		fs:     s.Fs(),
		store:  s,
		index:  idx,
		client: &http.Client{Timeout: 10 * time.Minute},
		l:      zap.NewNop(),
		repo:   DefaultRepo,
	}
	for _, o := range opts {
		o(inst)
	}
	if inst.platform == (model.Platform{}) {
		p, err := model.DetectPlatform()
		if err != nil {
			return nil, err
		}
		inst.platform = p
	}
	return inst, nil
}

// Install runs the pipeline for tag. Installing an already installed
// version is a success with zero network calls.
func (inst *Installer) Install(ctx context.Context, tag model.VersionTag) error {
	installed, err := inst.store.IsInstalled(tag)
	if err != nil {
		return err
	}
	if installed {
		inst.l.Info("already installed", zap.String("tag", string(tag)))
		return nil
	}

	releases, err := inst.index.FetchReleases(ctx, inst.repo)
	if err != nil {
		return err
	}
	rel, ok := release.FindRelease(releases, tag)
	if !ok {
		return status.ErrAssetNotFound.WrapMessage("version %s is not in the release index", tag)
	}
	asset, ok := release.SelectAsset(rel.Assets, inst.platform.AssetSubstring())
	if !ok {
		return status.ErrAssetNotFound.WrapMessage("no %s build published for %s", inst.platform, tag)
	}

	archive, err := inst.download(ctx, asset)
	if err != nil {
		return err
	}
	defer func() { _ = inst.fs.Remove(archive) }()

	staging, err := inst.extract(archive)
	if err != nil {
		return err
	}
	published := false
	defer func() {
		if !published {
			_ = inst.fs.RemoveAll(staging)
		}
	}()

	binary, err := inst.findRuntime(staging)
	if err != nil {
		return err
	}
	if err = inst.canonicalize(staging, binary); err != nil {
		return err
	}

	if err = inst.store.Publish(staging, tag); err != nil {
		return err
	}
	published = true
	inst.l.Info("installed", zap.String("tag", string(tag)))

	if inst.smoke {
		inst.smokeCheck(tag)
	}
	return nil
}
