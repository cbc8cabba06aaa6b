// File: sample.go
// Role: the per-step record of a run.

package ensemble

import (
	"github.com/katalvlaran/recom/partition"
)

// Sample is what a run records about one emitted partition: enough to redraw
// the sorted-district boxplot and to recognise repeated plans.
type Sample struct {
	Run         string `cbor:"1,keyasint" json:"run"`
	Replicate   int    `cbor:"2,keyasint" json:"replicate"`
	Step        int    `cbor:"3,keyasint" json:"step"`
	Accepted    bool   `cbor:"4,keyasint" json:"accepted"`
	CutEdges    int    `cbor:"5,keyasint" json:"cut_edges"`
	Fingerprint uint64 `cbor:"6,keyasint" json:"fingerprint"`

	// Percents holds, per election and party, the party's vote shares sorted
	// ascending across districts.
	Percents map[string]map[string][]float64 `cbor:"7,keyasint" json:"percents"`

	// Seats holds, per election and party, the districts won.
	Seats map[string]map[string]int `cbor:"8,keyasint" json:"seats"`
}

// NewSample extracts a Sample from p. elections names the election updaters
// registered on p.
func NewSample(run string, replicate, step int, accepted bool, p *partition.Partition, elections []string) (Sample, error) {
	cut, err := p.CutEdges()
	if err != nil {
		return Sample{}, err
	}
	s := Sample{
		Run:         run,
		Replicate:   replicate,
		Step:        step,
		Accepted:    accepted,
		CutEdges:    cut.Cardinality(),
		Fingerprint: p.Fingerprint(),
		Percents:    make(map[string]map[string][]float64, len(elections)),
		Seats:       make(map[string]map[string]int, len(elections)),
	}
	for _, name := range elections {
		res, err := p.Election(name)
		if err != nil {
			return Sample{}, err
		}
		pct := make(map[string][]float64, len(res.Parties()))
		seats := make(map[string]int, len(res.Parties()))
		for _, party := range res.Parties() {
			pct[party] = res.SortedPercents(party)
			seats[party] = res.Seats(party)
		}
		s.Percents[name] = pct
		s.Seats[name] = seats
	}

	return s, nil
}
