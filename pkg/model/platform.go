package model

import (
	"runtime"

	"github.com/uvm-dev/uvm/pkg/status"
)

// Platform identifies a host OS/architecture pair using the naming
// convention of published release assets.
type Platform struct {
	OS   string
	Arch string
}

// AssetSubstring is the fragment release asset names carry for this
// platform, e.g. "linux-x86_64".
func (p Platform) AssetSubstring() string {
	return p.OS + "-" + p.Arch
}

func (p Platform) String() string {
	return p.AssetSubstring()
}

// DetectPlatform maps the running GOOS/GOARCH to a supported release
// platform. Unsupported combinations fail before any network access.
func DetectPlatform() (Platform, error) {
	return detect(runtime.GOOS, runtime.GOARCH)
}

func detect(goos, goarch string) (Platform, error) {
	var p Platform
	switch goos {
	case "linux":
		p.OS = "linux"
	case "darwin":
		p.OS = "macos"
	default:
		return Platform{}, status.ErrPlatformUnsupported.WrapMessage("%s/%s", goos, goarch)
	}
	switch goarch {
	case "amd64":
		p.Arch = "x86_64"
	case "arm64":
		p.Arch = "aarch64"
	default:
		return Platform{}, status.ErrPlatformUnsupported.WrapMessage("%s/%s", goos, goarch)
	}
	return p, nil
}
