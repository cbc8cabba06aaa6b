// File: options.go
// Role: functional options for New and FromAttribute.

package partition

import "sort"

type namedUpdater struct {
	name string
	u    Updater
}

type options struct {
	updaters   []namedUpdater
	districts  []District
	geographic bool
}

// Option configures partition construction.
type Option func(*options)

// WithUpdater registers u under name. Registration errors surface from New.
func WithUpdater(name string, u Updater) Option {
	return func(o *options) {
		o.updaters = append(o.updaters, namedUpdater{name: name, u: u})
	}
}

// WithUpdaters registers every entry of m, in sorted name order.
func WithUpdaters(m map[string]Updater) Option {
	return func(o *options) {
		names := make([]string, 0, len(m))
		for name := range m {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			o.updaters = append(o.updaters, namedUpdater{name: name, u: m[name]})
		}
	}
}

// WithGeographic registers area, exterior_boundaries, interior_boundaries,
// perimeter and polsby_popper. Nodes must carry area and boundary_perim;
// edges may carry shared_perim (missing counts as zero).
func WithGeographic() Option {
	return func(o *options) {
		o.geographic = true
	}
}

// WithDistricts declares district IDs that must each receive at least one node.
func WithDistricts(ds ...District) Option {
	return func(o *options) {
		o.districts = append(o.districts, ds...)
	}
}
