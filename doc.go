/*
Package uvm provides CLI tooling to manage installed versions of the
urbit runtime ("vere").

uvm keeps any number of runtime builds side by side under a single home
directory and maintains one "current" pointer shared by every
invocation. Versions are installed through a verify-then-activate
pipeline: the release index is queried for a build matching the host
platform, the asset is downloaded and unpacked into a private staging
directory, validated, and published with a single atomic rename. A
failed install never leaves partial state behind, and concurrent
invocations never observe a half-installed version or a dangling
pointer.

On top of the version store, uvm offers user-defined aliases (with
cycle-safe chain resolution), a persisted default version used when no
pointer is set, and project-local pinning through a .vere-version file.
*/
package uvm
