// File: geographic.go
// Role: area/perimeter/compactness updaters registered by WithGeographic.

package partition

import (
	"fmt"
	"math"
)

// Geometry attribute names read by the geographic updaters.
const (
	AttrArea          = "area"
	AttrBoundaryPerim = "boundary_perim"
	AttrSharedPerim   = "shared_perim"
)

func geographicUpdaters() []namedUpdater {
	return []namedUpdater{
		{name: AreaName, u: Tally(AttrArea)},
		{name: ExteriorBoundariesName, u: Tally(AttrBoundaryPerim)},
		{name: InteriorBoundariesName, u: UpdaterFunc(interiorBoundaries)},
		{name: PerimeterName, u: UpdaterFunc(perimeter)},
		{name: PolsbyPopperName, u: UpdaterFunc(polsbyPopper)},
	}
}

// interiorBoundaries credits each cut edge's shared_perim to both endpoint districts.
func interiorBoundaries(p *Partition) (any, error) {
	ids, err := p.SortedCutEdges()
	if err != nil {
		return nil, err
	}
	out := make(map[District]float64, p.Len())
	for _, d := range p.s.districts {
		out[d] = 0
	}
	for _, id := range ids {
		e, err := p.s.graph.GetEdge(id)
		if err != nil {
			return nil, fmt.Errorf("partition: %s: %w", InteriorBoundariesName, err)
		}
		sp, _ := p.s.graph.EdgeAttr(id, AttrSharedPerim)
		out[p.assignment[e.From]] += sp
		out[p.assignment[e.To]] += sp
	}

	return out, nil
}

func perimeter(p *Partition) (any, error) {
	ext, err := p.Tally(ExteriorBoundariesName)
	if err != nil {
		return nil, err
	}
	in, err := p.Tally(InteriorBoundariesName)
	if err != nil {
		return nil, err
	}
	out := make(map[District]float64, p.Len())
	for _, d := range p.s.districts {
		out[d] = ext[d] + in[d]
	}

	return out, nil
}

// polsbyPopper is 4π·area/perimeter²; a district with zero perimeter scores 0.
func polsbyPopper(p *Partition) (any, error) {
	area, err := p.Tally(AreaName)
	if err != nil {
		return nil, err
	}
	per, err := p.Tally(PerimeterName)
	if err != nil {
		return nil, err
	}
	out := make(map[District]float64, p.Len())
	for _, d := range p.s.districts {
		if per[d] == 0 {
			out[d] = 0
			continue
		}
		out[d] = 4 * math.Pi * area[d] / (per[d] * per[d])
	}

	return out, nil
}
