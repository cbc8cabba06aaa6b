// File: election.go
// Role: per-district vote counts and derived partisan metrics.
// Determinism:
//   - Parties keep declaration order; per-district slices follow sorted district IDs.

package partition

import (
	"fmt"
	"sort"
)

// Party binds a party name to the node attribute holding its votes.
type Party struct {
	Name   string
	Column string
}

// ElectionUpdater tallies the votes of every party per district.
// Its value is *ElectionResults.
type ElectionUpdater struct {
	Name    string
	Parties []Party
}

// Election returns an updater for the named election. Party order is
// significant: two-party metrics are reported from the first party's view.
// Panics on an empty party list or duplicate party names.
func Election(name string, parties ...Party) *ElectionUpdater {
	if len(parties) == 0 {
		panic(fmt.Sprintf("partition: Election(%q) needs at least one party", name))
	}
	seen := make(map[string]bool, len(parties))
	for _, pc := range parties {
		if seen[pc.Name] {
			panic(fmt.Sprintf("partition: Election(%q): duplicate party %q", name, pc.Name))
		}
		seen[pc.Name] = true
	}

	return &ElectionUpdater{Name: name, Parties: append([]Party(nil), parties...)}
}

// RequiredAttrs implements AttributeRequirer.
func (e *ElectionUpdater) RequiredAttrs() []string {
	out := make([]string, 0, len(e.Parties))
	for _, pc := range e.Parties {
		out = append(out, pc.Column)
	}

	return out
}

// Compute tallies every district.
func (e *ElectionUpdater) Compute(p *Partition) (any, error) {
	r := e.newResults(p)
	for _, d := range r.districts {
		e.tallyDistrict(p, r, d)
	}

	return r, nil
}

// ComputeFrom copies prev and re-tallies only the touched districts.
func (e *ElectionUpdater) ComputeFrom(p *Partition, prev any) (any, error) {
	pr, ok := prev.(*ElectionResults)
	if !ok {
		return nil, fmt.Errorf("partition: election %q: previous value is %T: %w", e.Name, prev, ErrUpdaterType)
	}
	r := e.newResults(p)
	for _, pc := range e.Parties {
		for d, v := range pr.counts[pc.Name] {
			r.counts[pc.Name][d] = v
		}
	}
	for d, v := range pr.totals {
		r.totals[d] = v
	}
	for _, d := range p.touched {
		e.tallyDistrict(p, r, d)
	}

	return r, nil
}

func (e *ElectionUpdater) newResults(p *Partition) *ElectionResults {
	r := &ElectionResults{
		Name:      e.Name,
		parties:   make([]string, len(e.Parties)),
		districts: p.Districts(),
		counts:    make(map[string]map[District]float64, len(e.Parties)),
		totals:    make(map[District]float64, p.Len()),
	}
	for i, pc := range e.Parties {
		r.parties[i] = pc.Name
		r.counts[pc.Name] = make(map[District]float64, p.Len())
	}

	return r
}

func (e *ElectionUpdater) tallyDistrict(p *Partition, r *ElectionResults, d District) {
	var total float64
	for _, pc := range e.Parties {
		v := sumAttr(p, d, pc.Column)
		r.counts[pc.Name][d] = v
		total += v
	}
	r.totals[d] = total
}

// ElectionResults holds one election's tallies for one partition.
type ElectionResults struct {
	Name      string
	parties   []string
	districts []District
	counts    map[string]map[District]float64
	totals    map[District]float64
}

// Parties returns the party names in declaration order.
func (r *ElectionResults) Parties() []string { return append([]string(nil), r.parties...) }

// Districts returns the district IDs the per-district slices are ordered by.
func (r *ElectionResults) Districts() []District { return append([]District(nil), r.districts...) }

// Counts returns party's votes per district, ordered by district ID.
// Unknown parties yield zeros.
func (r *ElectionResults) Counts(party string) []float64 {
	out := make([]float64, len(r.districts))
	for i, d := range r.districts {
		out[i] = r.counts[party][d]
	}

	return out
}

// Totals returns all votes cast per district, ordered by district ID.
func (r *ElectionResults) Totals() []float64 {
	out := make([]float64, len(r.districts))
	for i, d := range r.districts {
		out[i] = r.totals[d]
	}

	return out
}

// Percent returns party's vote share in district d; 0 when no votes were cast.
func (r *ElectionResults) Percent(party string, d District) float64 {
	t := r.totals[d]
	if t == 0 {
		return 0
	}

	return r.counts[party][d] / t
}

// Percents returns party's vote share per district, ordered by district ID.
func (r *ElectionResults) Percents(party string) []float64 {
	out := make([]float64, len(r.districts))
	for i, d := range r.districts {
		out[i] = r.Percent(party, d)
	}

	return out
}

// SortedPercents returns Percents(party) sorted ascending: one row of the
// classic sorted-district boxplot.
func (r *ElectionResults) SortedPercents(party string) []float64 {
	out := r.Percents(party)
	sort.Float64s(out)

	return out
}

// Wins returns the districts in which party holds a strict majority of votes.
func (r *ElectionResults) Wins(party string) []District {
	var out []District
	for _, d := range r.districts {
		if r.Percent(party, d) > 0.5 {
			out = append(out, d)
		}
	}

	return out
}

// Seats returns len(Wins(party)).
func (r *ElectionResults) Seats(party string) int {
	return len(r.Wins(party))
}

// PopularVote returns party's share of all votes across the plan.
func (r *ElectionResults) PopularVote(party string) float64 {
	var votes, total float64
	for _, d := range r.districts {
		votes += r.counts[party][d]
		total += r.totals[d]
	}
	if total == 0 {
		return 0
	}

	return votes / total
}

// EfficiencyGap returns (wasted₂ − wasted₁)/total votes, where a district's
// loser wastes every vote and its winner wastes the votes beyond half.
//
// Errors: ErrNotTwoParty.
func (r *ElectionResults) EfficiencyGap() (float64, error) {
	if len(r.parties) != 2 {
		return 0, fmt.Errorf("partition: %s: efficiency gap: %w", r.Name, ErrNotTwoParty)
	}
	first, second := r.counts[r.parties[0]], r.counts[r.parties[1]]
	var numerator, total float64
	for _, d := range r.districts {
		v1, v2 := first[d], second[d]
		half := (v1 + v2) / 2
		var w1, w2 float64
		if v1 > v2 {
			w1, w2 = v1-half, v2
		} else {
			w1, w2 = v1, v2-half
		}
		numerator += w2 - w1
		total += v1 + v2
	}
	if total == 0 {
		return 0, nil
	}

	return numerator / total, nil
}

// MeanMedian returns median − mean of the first party's district vote shares.
//
// Errors: ErrNotTwoParty.
func (r *ElectionResults) MeanMedian() (float64, error) {
	if len(r.parties) != 2 {
		return 0, fmt.Errorf("partition: %s: mean-median: %w", r.Name, ErrNotTwoParty)
	}
	shares := r.SortedPercents(r.parties[0])
	if len(shares) == 0 {
		return 0, nil
	}
	var sum float64
	for _, s := range shares {
		sum += s
	}
	mean := sum / float64(len(shares))
	var median float64
	if n := len(shares); n%2 == 1 {
		median = shares[n/2]
	} else {
		median = (shares[n/2-1] + shares[n/2]) / 2
	}

	return median - mean, nil
}

// Election returns the *ElectionResults value of the named updater.
func (p *Partition) Election(name string) (*ElectionResults, error) {
	return ValueAs[*ElectionResults](p, name)
}
