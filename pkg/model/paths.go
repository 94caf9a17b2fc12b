package model

import (
	"path"
)

// Canonical entry point names created inside every installed version
// directory, both referring to the extracted runtime executable.
const (
	EntryPointUrbit = "urbit"
	EntryPointVere  = "vere"
)

// PinFile is the optional project-local pin, one raw version string per line.
const PinFile = ".vere-version"

func GetPathToVersions(home string) string {
	return path.Join(home, "versions")
}

func GetPathToVersion(home string, tag VersionTag) string {
	return path.Join(home, "versions", string(tag))
}

// GetPathToEntryPoint returns the canonical "urbit" entry point of a version.
func GetPathToEntryPoint(home string, tag VersionTag) string {
	return path.Join(home, "versions", string(tag), EntryPointUrbit)
}

func GetPathToCurrent(home string) string {
	return path.Join(home, "current")
}

func GetPathToDefault(home string) string {
	return path.Join(home, "default")
}

func GetPathToAliases(home string) string {
	return path.Join(home, "aliases")
}

func GetPathToAlias(home, name string) string {
	return path.Join(home, "aliases", name)
}

// GetPathToStaging is the parent for private download and extraction
// directories. Nothing under it is ever visible to the registry.
func GetPathToStaging(home string) string {
	return path.Join(home, "tmp")
}

func GetPathToLock(home string) string {
	return path.Join(home, ".uvm.lock")
}
