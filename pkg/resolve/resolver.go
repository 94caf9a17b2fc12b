// Package resolve turns raw user input into canonical version tags.
//
// Resolution first follows the alias chain, then applies syntactic
// normalization. It never checks whether the result is installed: that
// is the caller's concern.
package resolve

import (
	"strings"

	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/status"
	"github.com/uvm-dev/uvm/pkg/store"
)

// maxAliasDepth bounds alias chains defensively, on top of cycle
// detection by visited set.
const maxAliasDepth = 32

// Resolver canonicalizes version input against the alias store
type Resolver struct {
	store *store.Store
}

// New builds a resolver over s
func New(s *store.Store) *Resolver {
	return &Resolver{store: s}
}

// Resolve canonicalizes raw. Alias indirection is followed with a
// visited set: a name seen twice fails with a cycle error instead of
// recursing forever, which is what a naive chain walk does.
func (r *Resolver) Resolve(raw string) (model.VersionTag, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", status.ErrEmptyInput
	}
	visited := make(map[string]struct{}, 4)
	for depth := 0; depth < maxAliasDepth; depth++ {
		if _, seen := visited[raw]; seen {
			return "", status.ErrCycle.WrapMessage("alias %q revisits itself", raw)
		}
		visited[raw] = struct{}{}
		target, ok, err := r.store.Alias(raw)
		if err != nil {
			return "", err
		}
		if !ok {
			return model.Normalize(raw)
		}
		raw = string(target)
	}
	return "", status.ErrCycle.WrapMessage("alias chain longer than %d links", maxAliasDepth)
}
