// File: cut_edges.go
// Role: the set of edges whose endpoints lie in different districts.

package partition

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

type cutEdgesUpdater struct{}

// CutEdges returns the cut-edge updater. It is registered on every partition
// as "cut_edges"; its value is a read-only mapset.Set[string] of edge IDs.
func CutEdges() Updater { return cutEdgesUpdater{} }

// Compute scans every edge of the graph.
func (cutEdgesUpdater) Compute(p *Partition) (any, error) {
	cut := mapset.NewSet[string]()
	for _, e := range p.s.graph.Edges() {
		if p.assignment[e.From] != p.assignment[e.To] {
			cut.Add(e.ID)
		}
	}

	return cut, nil
}

// ComputeFrom revisits only edges incident to flipped nodes.
func (u cutEdgesUpdater) ComputeFrom(p *Partition, prev any) (any, error) {
	ps, ok := prev.(mapset.Set[string])
	if !ok {
		return nil, fmt.Errorf("partition: cut_edges: previous value is %T: %w", prev, ErrUpdaterType)
	}
	cut := ps.Clone()
	for _, n := range p.FlippedNodes() {
		incident, err := p.s.graph.Neighbors(n)
		if err != nil {
			return nil, fmt.Errorf("partition: cut_edges: %w", err)
		}
		for _, e := range incident {
			if p.assignment[e.From] != p.assignment[e.To] {
				cut.Add(e.ID)
			} else {
				cut.Remove(e.ID)
			}
		}
	}

	return cut, nil
}

// CutEdges returns the cut-edge set. Treat it as read-only.
func (p *Partition) CutEdges() (mapset.Set[string], error) {
	return ValueAs[mapset.Set[string]](p, CutEdgesName)
}

// SortedCutEdges returns the cut-edge IDs sorted ascending.
func (p *Partition) SortedCutEdges() ([]string, error) {
	cut, err := p.CutEdges()
	if err != nil {
		return nil, err
	}
	ids := cut.ToSlice()
	sort.Strings(ids)

	return ids, nil
}
