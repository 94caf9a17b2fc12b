// Package release queries the remote release catalog.
//
// The catalog is abstracted behind the Index interface; the concrete
// implementation talks to the GitHub releases API. The installer only
// depends on the interface, so tests substitute a canned index.
package release

import (
	"context"
	"sort"
	"strings"

	"github.com/uvm-dev/uvm/pkg/model"
)

// Asset is one downloadable artifact of a release
type Asset struct {
	Name string `json:"name"`
	URL  string `json:"browser_download_url"`
	Size int64  `json:"size"`
}

// Release maps a version tag to its published assets
type Release struct {
	Tag    string  `json:"tag_name"`
	Assets []Asset `json:"assets"`
}

// Index is the external source of truth for published releases
type Index interface {
	// FetchReleases lists the releases of repo ("owner/name")
	FetchReleases(ctx context.Context, repo string) ([]Release, error)
}

// FindRelease locates the release carrying tag
func FindRelease(releases []Release, tag model.VersionTag) (Release, bool) {
	for _, r := range releases {
		if r.Tag == string(tag) {
			return r, true
		}
	}
	return Release{}, false
}

// SelectAsset picks the first asset whose name contains substring.
// First match wins when several assets match.
func SelectAsset(assets []Asset, substring string) (Asset, bool) {
	for _, a := range assets {
		if strings.Contains(a.Name, substring) {
			return a, true
		}
	}
	return Asset{}, false
}

// SortDescending orders releases newest first by semantic tag
// comparison, the order the remote listing is presented in.
func SortDescending(releases []Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		return model.VersionTag(releases[i].Tag).Compare(model.VersionTag(releases[j].Tag)) > 0
	})
}
