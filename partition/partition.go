// File: partition.go
// Role: Partition construction, accessors and the lazy updater cache.
//
// Determinism:
//   - Districts() and Part(d) are sorted; updaters iterate them in that order.
//
// Concurrency:
//   - A Partition is immutable except for its value cache, which is guarded by
//     mu and computes each name at most once. Emitted partitions may therefore
//     be read from several goroutines.

package partition

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/recom/core"
)

// shared is the state common to a partition and every descendant produced by Flip.
type shared struct {
	graph     *core.Graph
	registry  *Registry
	nodes     []string   // sorted
	districts []District // sorted, fixed for the lifetime of the lineage
}

// entry memoizes one updater value.
type entry struct {
	once sync.Once
	done atomic.Bool
	val  any
	err  error
}

// Partition is an assignment of every graph node to a district plus a cache
// of derived values.
type Partition struct {
	s          *shared
	assignment map[string]District
	parts      map[District][]string

	// Provenance of the last Flip; nil for an initial partition.
	flips   map[string]District
	prev    map[string]District
	touched []District

	mu        sync.Mutex
	cache     map[string]*entry
	inherited map[string]any // predecessor values, consumed by IncrementalUpdater

	fpOnce sync.Once
	fp     uint64
}

// New builds the initial partition of g under assignment.
//
// Implementation:
//   - Stage 1: Build the registry (cut_edges, geographic set, user updaters).
//   - Stage 2: Freeze g and check every attribute the updaters require.
//   - Stage 3: Validate the assignment covers exactly the graph's nodes and
//     every declared district is non-empty.
//
// Errors:
//   - ErrNilGraph, ErrInvalidAssignment, ErrDuplicateUpdater, ErrInvalidUpdater.
//   - core.ErrMissingAttribute when g (or an updater) needs an absent attribute.
func New(g *core.Graph, assignment Assignment, opts ...Option) (*Partition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	reg := NewRegistry()
	if o.geographic {
		for _, nu := range geographicUpdaters() {
			if err := reg.Register(nu.name, nu.u); err != nil {
				return nil, err
			}
		}
	}
	for _, nu := range o.updaters {
		if err := reg.Register(nu.name, nu.u); err != nil {
			return nil, err
		}
	}

	if err := g.Freeze(); err != nil {
		return nil, fmt.Errorf("partition: New: %w", err)
	}
	if err := g.RequireVertexAttrs(reg.RequiredAttrs()...); err != nil {
		return nil, fmt.Errorf("partition: New: %w", err)
	}

	nodes := g.Vertices()
	own := make(map[string]District, len(nodes))
	parts := make(map[District][]string)
	for _, id := range nodes {
		d, ok := assignment[id]
		if !ok {
			return nil, fmt.Errorf("partition: New: node %q unassigned: %w", id, ErrInvalidAssignment)
		}
		own[id] = d
		parts[d] = append(parts[d], id)
	}
	if len(assignment) != len(nodes) {
		for id := range assignment {
			if _, ok := own[id]; !ok {
				return nil, fmt.Errorf("partition: New: unknown node %q: %w", id, ErrInvalidAssignment)
			}
		}
	}
	for _, d := range o.districts {
		if len(parts[d]) == 0 {
			return nil, fmt.Errorf("partition: New: district %d has no nodes: %w", d, ErrInvalidAssignment)
		}
	}

	districts := make([]District, 0, len(parts))
	for d := range parts {
		districts = append(districts, d)
	}
	sort.Slice(districts, func(i, j int) bool { return districts[i] < districts[j] })

	return &Partition{
		s:          &shared{graph: g, registry: reg, nodes: nodes, districts: districts},
		assignment: own,
		parts:      parts,
		cache:      make(map[string]*entry),
	}, nil
}

// FromAttribute builds the initial partition from a node attribute holding the
// district ID: a numeric attribute with an integral value, or a label that
// parses as an integer.
//
// Errors: as New; a node with no usable value yields ErrInvalidAssignment.
func FromAttribute(g *core.Graph, attr string, opts ...Option) (*Partition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	assignment := make(Assignment, g.VertexCount())
	for _, id := range g.Vertices() {
		if v, ok := g.VertexAttr(id, attr); ok {
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("partition: FromAttribute: node %q: %s=%g not integral: %w",
					id, attr, v, ErrInvalidAssignment)
			}
			assignment[id] = District(v)
			continue
		}
		label, ok := g.VertexLabel(id, attr)
		if !ok {
			return nil, fmt.Errorf("partition: FromAttribute: node %q has no %q: %w", id, attr, ErrInvalidAssignment)
		}
		n, err := strconv.Atoi(label)
		if err != nil {
			return nil, fmt.Errorf("partition: FromAttribute: node %q: %s=%q: %w", id, attr, label, ErrInvalidAssignment)
		}
		assignment[id] = District(n)
	}

	return New(g, assignment, opts...)
}

// Graph returns the frozen dual graph.
func (p *Partition) Graph() *core.Graph { return p.s.graph }

// Registry returns the updater registry shared by the lineage.
func (p *Partition) Registry() *Registry { return p.s.registry }

// Nodes returns all node IDs sorted ascending. The slice is shared; do not modify.
func (p *Partition) Nodes() []string { return p.s.nodes }

// Assignment returns the district of node.
func (p *Partition) Assignment(node string) (District, bool) {
	d, ok := p.assignment[node]

	return d, ok
}

// AssignmentMap returns a copy of the full assignment.
func (p *Partition) AssignmentMap() Assignment {
	out := make(Assignment, len(p.assignment))
	for k, v := range p.assignment {
		out[k] = v
	}

	return out
}

// Districts returns the district IDs sorted ascending.
func (p *Partition) Districts() []District {
	return append([]District(nil), p.s.districts...)
}

// Len returns the number of districts.
func (p *Partition) Len() int { return len(p.s.districts) }

// Part returns the sorted members of district d (a copy).
func (p *Partition) Part(d District) []string {
	return append([]string(nil), p.parts[d]...)
}

// members returns the shared sorted member slice of d for internal readers.
func (p *Partition) members(d District) []string { return p.parts[d] }

// Flips returns the node→district changes that produced p (nil for an initial partition).
func (p *Partition) Flips() map[string]District {
	if p.flips == nil {
		return nil
	}
	out := make(map[string]District, len(p.flips))
	for k, v := range p.flips {
		out[k] = v
	}

	return out
}

// FlippedNodes returns the nodes changed by the last Flip, sorted.
func (p *Partition) FlippedNodes() []string {
	out := make([]string, 0, len(p.flips))
	for n := range p.flips {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// PreviousDistrict returns the district node had before the last Flip.
func (p *Partition) PreviousDistrict(node string) (District, bool) {
	d, ok := p.prev[node]

	return d, ok
}

// TouchedDistricts returns the districts that gained or lost nodes in the last Flip, sorted.
func (p *Partition) TouchedDistricts() []District {
	return append([]District(nil), p.touched...)
}

// Subgraph returns the frozen subgraph induced by the nodes of districts a and b.
func (p *Partition) Subgraph(a, b District) *core.Graph {
	keep := make(map[string]bool, len(p.parts[a])+len(p.parts[b]))
	for _, n := range p.parts[a] {
		keep[n] = true
	}
	for _, n := range p.parts[b] {
		keep[n] = true
	}

	return core.InducedSubgraph(p.s.graph, keep)
}

// Fingerprint returns a 64-bit xxhash of the sorted assignment.
// Partitions with identical assignments share a fingerprint.
func (p *Partition) Fingerprint() uint64 {
	p.fpOnce.Do(func() {
		d := xxhash.New()
		buf := make([]byte, 0, 24)
		for _, n := range p.s.nodes {
			_, _ = d.WriteString(n)
			buf = append(buf[:0], '=')
			buf = strconv.AppendInt(buf, int64(p.assignment[n]), 10)
			buf = append(buf, ';')
			_, _ = d.Write(buf)
		}
		p.fp = d.Sum64()
	})

	return p.fp
}

// Value returns the value of the named updater, computing and caching it on
// first use. Incremental updaters resume from the predecessor's value when one
// was inherited through Flip.
//
// Errors: ErrUnknownUpdater, or the updater's own error (also cached).
func (p *Partition) Value(name string) (any, error) {
	u, ok := p.s.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("partition: Value(%q): %w", name, ErrUnknownUpdater)
	}

	p.mu.Lock()
	e, ok := p.cache[name]
	if !ok {
		e = &entry{}
		p.cache[name] = e
	}
	p.mu.Unlock()

	e.once.Do(func() {
		p.mu.Lock()
		prev, hasPrev := p.inherited[name]
		delete(p.inherited, name)
		p.mu.Unlock()

		inc, isInc := u.(IncrementalUpdater)
		switch {
		case hasPrev && p.flips != nil && len(p.touched) == 0:
			// Nothing moved: the predecessor's value is this partition's value.
			e.val = prev
		case hasPrev && isInc:
			e.val, e.err = inc.ComputeFrom(p, prev)
		default:
			e.val, e.err = u.Compute(p)
		}
		e.done.Store(true)
	})

	return e.val, e.err
}

// ValueAs returns the named value asserted to T.
//
// Errors: those of Value, plus ErrUpdaterType on a type mismatch.
func ValueAs[T any](p *Partition, name string) (T, error) {
	var zero T
	v, err := p.Value(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("partition: %q is %T: %w", name, v, ErrUpdaterType)
	}

	return t, nil
}

// computedValues snapshots every successfully computed value.
func (p *Partition) computedValues() map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]any, len(p.cache))
	for name, e := range p.cache {
		if e.done.Load() && e.err == nil {
			out[name] = e.val
		}
	}

	return out
}
