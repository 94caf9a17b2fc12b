// Package model describes the entities handled by the version manager:
// version tags, the on-disk store layout and the host platform.
//
// Everything here is pure data plumbing: no file system access, no network.
package model
