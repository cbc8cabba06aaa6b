// File: registry.go
// Role: named updater catalog shared by a partition and all of its descendants.
// Concurrency:
//   - Registration happens only inside New; afterwards the registry is read-only.

package partition

import (
	"fmt"
	"sort"
)

// Built-in updater names.
const (
	CutEdgesName           = "cut_edges"
	AreaName               = "area"
	ExteriorBoundariesName = "exterior_boundaries"
	InteriorBoundariesName = "interior_boundaries"
	PerimeterName          = "perimeter"
	PolsbyPopperName       = "polsby_popper"
)

// Registry maps updater names to updaters.
type Registry struct {
	byName map[string]Updater
}

// NewRegistry returns a registry holding the always-present cut_edges updater.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Updater)}
	r.byName[CutEdgesName] = CutEdges()

	return r
}

// Register adds u under name.
//
// Errors: ErrInvalidUpdater (empty name or nil u), ErrDuplicateUpdater.
func (r *Registry) Register(name string, u Updater) error {
	if name == "" || u == nil {
		return fmt.Errorf("partition: Register(%q): %w", name, ErrInvalidUpdater)
	}
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("partition: Register(%q): %w", name, ErrDuplicateUpdater)
	}
	r.byName[name] = u

	return nil
}

// Get returns the updater registered under name.
func (r *Registry) Get(name string) (Updater, bool) {
	u, ok := r.byName[name]

	return u, ok
}

// Names returns all registered names sorted ascending.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// RequiredAttrs returns the sorted, de-duplicated node attributes declared by
// every registered AttributeRequirer.
func (r *Registry) RequiredAttrs() []string {
	set := make(map[string]struct{})
	for _, u := range r.byName {
		if req, ok := u.(AttributeRequirer); ok {
			for _, a := range req.RequiredAttrs() {
				set[a] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Strings(out)

	return out
}
