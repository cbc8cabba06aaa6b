// File: flip.go
// Role: derive a new Partition from node→district moves.
// Complexity:
//   - O(V) to copy the assignment plus O(m log m) per touched district of size m.

package partition

import (
	"fmt"
	"sort"
)

// Flip returns a new Partition in which every node in flips is moved to the
// given district. Nodes already in their target district are ignored.
//
// The child shares the graph and registry, inherits every value p has
// computed so far, and records which nodes moved so incremental updaters
// recompute only the touched districts. It keeps no reference to p.
//
// Errors:
//   - ErrInvalidAssignment: unknown node, unknown district, or a district left empty.
func (p *Partition) Flip(flips map[string]District) (*Partition, error) {
	changed := make(map[string]District, len(flips))
	prev := make(map[string]District, len(flips))
	touchedSet := make(map[District]bool)
	for node, d := range flips {
		cur, ok := p.assignment[node]
		if !ok {
			return nil, fmt.Errorf("partition: Flip: unknown node %q: %w", node, ErrInvalidAssignment)
		}
		if _, known := p.parts[d]; !known {
			return nil, fmt.Errorf("partition: Flip: unknown district %d: %w", d, ErrInvalidAssignment)
		}
		if cur == d {
			continue
		}
		changed[node] = d
		prev[node] = cur
		touchedSet[cur] = true
		touchedSet[d] = true
	}

	assignment := make(map[string]District, len(p.assignment))
	for k, v := range p.assignment {
		assignment[k] = v
	}
	for node, d := range changed {
		assignment[node] = d
	}

	parts := make(map[District][]string, len(p.parts))
	for d, m := range p.parts {
		parts[d] = m
	}
	touched := make([]District, 0, len(touchedSet))
	for d := range touchedSet {
		touched = append(touched, d)
	}
	sort.Slice(touched, func(i, j int) bool { return touched[i] < touched[j] })

	for _, d := range touched {
		members := make([]string, 0, len(p.parts[d]))
		for _, n := range p.parts[d] {
			if _, moved := changed[n]; !moved {
				members = append(members, n)
			}
		}
		for n, nd := range changed {
			if nd == d {
				members = append(members, n)
			}
		}
		if len(members) == 0 {
			return nil, fmt.Errorf("partition: Flip: district %d would be empty: %w", d, ErrInvalidAssignment)
		}
		sort.Strings(members)
		parts[d] = members
	}

	return &Partition{
		s:          p.s,
		assignment: assignment,
		parts:      parts,
		flips:      changed,
		prev:       prev,
		touched:    touched,
		cache:      make(map[string]*entry),
		inherited:  p.computedValues(),
	}, nil
}
