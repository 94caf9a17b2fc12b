// Package status exports the errors produced by the version manager core.
//
// Every command-terminal failure is one of these sentinels, possibly
// wrapping a cause. Callers test with errors.Is.
package status

import (
	"github.com/uvm-dev/uvm/pkg/errors"
)

var (
	// ErrEmptyInput indicates that no version argument was given and no
	// project pin file was found to supply one
	ErrEmptyInput = errors.New("no version given and no project pin found")

	// ErrCycle indicates an alias chain that loops back on itself
	ErrCycle = errors.New("alias resolution cycle")

	// ErrUnknownAlias indicates a name that is neither a defined alias nor a version
	ErrUnknownAlias = errors.New("unknown alias or version")

	// ErrPlatformUnsupported indicates the host OS/architecture pair has no published builds
	ErrPlatformUnsupported = errors.New("platform not supported")

	// ErrNetwork indicates the release index could not be reached or understood
	ErrNetwork = errors.New("release index unavailable")

	// ErrRateLimited indicates the release index refused the request due
	// to rate limiting. It is a sub-case of ErrNetwork: errors.Is matches
	// it against both sentinels.
	ErrRateLimited = errors.NewChild(ErrNetwork, "release index rate limit exceeded")

	// ErrAssetNotFound indicates the requested version or a matching build
	// artifact is absent from the release index
	ErrAssetNotFound = errors.New("no matching release asset")

	// ErrDownload indicates the asset transfer failed or produced an empty file
	ErrDownload = errors.New("asset download failed")

	// ErrExtraction indicates the downloaded archive could not be unpacked
	ErrExtraction = errors.New("archive extraction failed")

	// ErrBinaryMissing indicates the unpacked release contains no runtime executable
	ErrBinaryMissing = errors.New("runtime executable not found in release")

	// ErrNotInstalled indicates an operation on a version that is not in the store
	ErrNotInstalled = errors.New("version not installed")
)
