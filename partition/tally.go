// File: tally.go
// Role: per-district sum of a numeric node attribute.

package partition

import "fmt"

// TallyUpdater sums a node attribute per district.
// Its value has type map[District]float64 and must be treated as read-only.
type TallyUpdater struct {
	Attr string
}

// Tally returns an updater summing attr per district.
func Tally(attr string) *TallyUpdater {
	return &TallyUpdater{Attr: attr}
}

// RequiredAttrs implements AttributeRequirer.
func (t *TallyUpdater) RequiredAttrs() []string { return []string{t.Attr} }

// Compute sums every district.
func (t *TallyUpdater) Compute(p *Partition) (any, error) {
	out := make(map[District]float64, p.Len())
	for _, d := range p.s.districts {
		out[d] = sumAttr(p, d, t.Attr)
	}

	return out, nil
}

// ComputeFrom copies prev and re-sums only the touched districts.
func (t *TallyUpdater) ComputeFrom(p *Partition, prev any) (any, error) {
	pm, ok := prev.(map[District]float64)
	if !ok {
		return nil, fmt.Errorf("partition: tally %q: previous value is %T: %w", t.Attr, prev, ErrUpdaterType)
	}
	out := make(map[District]float64, len(pm))
	for d, v := range pm {
		out[d] = v
	}
	for _, d := range p.touched {
		out[d] = sumAttr(p, d, t.Attr)
	}

	return out, nil
}

// sumAttr adds attr over the sorted members of d, so the float result does not
// depend on how the partition was reached.
func sumAttr(p *Partition, d District, attr string) float64 {
	var total float64
	for _, n := range p.members(d) {
		v, _ := p.s.graph.VertexAttr(n, attr)
		total += v
	}

	return total
}

// Tally returns the map[District]float64 value of the named updater.
func (p *Partition) Tally(name string) (map[District]float64, error) {
	return ValueAs[map[District]float64](p, name)
}
