package model

import (
	"strconv"
	"strings"

	"github.com/uvm-dev/uvm/pkg/status"
)

const (
	// TagPrefix is the canonical release name prefix
	TagPrefix = "vere-"

	// VersionMarker introduces the numeric part of a tag
	VersionMarker = "v"
)

// VersionTag is a canonical release identifier such as "vere-v3.4".
//
// Tags stored on disk, in aliases or as the default are always canonical.
// Raw user input is turned canonical by Normalize before any lookup.
type VersionTag string

func (t VersionTag) String() string {
	return string(t)
}

// Segments returns the numeric components of the tag, e.g. [3 4] for "vere-v3.4".
func (t VersionTag) Segments() []int {
	raw := strings.TrimPrefix(strings.TrimPrefix(string(t), TagPrefix), VersionMarker)
	fields := strings.Split(raw, ".")
	segments := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil
		}
		segments = append(segments, n)
	}
	return segments
}

// Compare orders tags by numeric segments, major first: vere-v3.9 < vere-v3.10.
// Returns -1, 0 or 1. A malformed tag sorts before any well-formed one.
func (t VersionTag) Compare(other VersionTag) int {
	a, b := t.Segments(), other.Segments()
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return strings.Compare(string(t), string(other))
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// IsCanonical reports whether s is already a fully qualified tag with
// a well-formed numeric suffix.
func IsCanonical(s string) bool {
	if !strings.HasPrefix(s, TagPrefix+VersionMarker) {
		return false
	}
	return VersionTag(s).Segments() != nil
}

// Normalize turns raw user input into a canonical tag. The operation is
// purely syntactic: it performs no existence check against the store.
//
//	"vere-v3.4" -> "vere-v3.4"
//	"v3.4"      -> "vere-v3.4"
//	"3.4"       -> "vere-v3.4"
//
// Anything else is assumed to be an alias name that was never defined.
func Normalize(raw string) (VersionTag, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", status.ErrEmptyInput
	}
	var candidate string
	switch {
	case strings.HasPrefix(raw, TagPrefix):
		candidate = raw
	case strings.HasPrefix(raw, VersionMarker) && startsWithDigit(raw[len(VersionMarker):]):
		candidate = TagPrefix + raw
	case startsWithDigit(raw):
		candidate = TagPrefix + VersionMarker + raw
	default:
		return "", status.ErrUnknownAlias.WrapMessage("%q", raw)
	}
	if !IsCanonical(candidate) {
		return "", status.ErrUnknownAlias.WrapMessage("%q", raw)
	}
	return VersionTag(candidate), nil
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
