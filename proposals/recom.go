// File: recom.go
// Role: the ReCom proposal: merge two adjacent districts, draw a spanning tree
//       of the merged region, cut it into two population-balanced halves.
// Determinism:
//   - Cut edges are sampled from their sorted IDs; the subgraph, tree and cuts
//     are all iterated in sorted order, so a fixed rng state fixes the result.

package proposals

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/recom/partition"
	"github.com/katalvlaran/recom/spanning"
)

const defaultNodeRepeats = 2

// ReCom is the recombination proposal.
type ReCom struct {
	popCol      string
	popTarget   float64
	epsilon     float64
	nodeRepeats int
	method      string
}

// Option configures ReCom.
type Option func(*ReCom)

// WithNodeRepeats sets how many extra spanning trees are drawn when a tree
// has no balanced cut (n=0 draws exactly one tree). Panics if n < 0.
func WithNodeRepeats(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("proposals: WithNodeRepeats(%d)", n))
	}
	return func(r *ReCom) {
		r.nodeRepeats = n
	}
}

// WithTreeMethod selects the spanning tree sampler (spanning.MethodWilson or
// spanning.MethodKruskal). Panics on unknown names.
func WithTreeMethod(method string) Option {
	m, err := spanning.ParseMethod(method)
	if err != nil {
		panic(err.Error())
	}
	return func(r *ReCom) {
		r.method = m
	}
}

// NewReCom builds a ReCom proposal balancing popCol around popTarget within
// epsilon·popTarget. Panics on an empty column, popTarget <= 0 or epsilon
// outside (0, 1).
func NewReCom(popCol string, popTarget, epsilon float64, opts ...Option) *ReCom {
	if popCol == "" {
		panic("proposals: NewReCom: empty population column")
	}
	if popTarget <= 0 {
		panic(fmt.Sprintf("proposals: NewReCom: popTarget=%g must be > 0", popTarget))
	}
	if epsilon <= 0 || epsilon >= 1 {
		panic(fmt.Sprintf("proposals: NewReCom: epsilon=%g must be in (0,1)", epsilon))
	}
	r := &ReCom{
		popCol:      popCol,
		popTarget:   popTarget,
		epsilon:     epsilon,
		nodeRepeats: defaultNodeRepeats,
		method:      spanning.MethodWilson,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Propose performs one ReCom move.
//
// Steps:
//  1. Pick a cut edge uniformly; its endpoints' districts A and B are merged.
//  2. Build the induced subgraph of A ∪ B.
//  3. Draw a spanning tree and collect its balanced cut edges.
//  4. If none, redraw up to nodeRepeats more times.
//  5. Choose one balanced cut uniformly; the side away from the tree root
//     becomes A, the rest B.
//
// Errors:
//   - ErrProposalFailed: no cut edges, or no balanced cut after all draws.
//   - ErrGraphDisconnected: A ∪ B is not connected.
//   - Any partition error from the final Flip.
func (r *ReCom) Propose(p *partition.Partition, rng *rand.Rand) (*partition.Partition, error) {
	cut, err := p.SortedCutEdges()
	if err != nil {
		return nil, err
	}
	if len(cut) == 0 {
		return nil, fmt.Errorf("proposals: recom: no cut edges: %w", ErrProposalFailed)
	}
	e, err := p.Graph().GetEdge(cut[rng.Intn(len(cut))])
	if err != nil {
		return nil, fmt.Errorf("proposals: recom: %w", err)
	}
	a, _ := p.Assignment(e.From)
	b, _ := p.Assignment(e.To)

	sub := p.Subgraph(a, b)
	nodes := sub.Vertices()
	weights := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		weights[n], _ = sub.VertexAttr(n, r.popCol)
	}

	for attempt := 0; attempt <= r.nodeRepeats; attempt++ {
		tree, err := spanning.Draw(sub, rng, spanning.WithMethod(r.method))
		if err != nil {
			if errors.Is(err, spanning.ErrDisconnected) {
				return nil, fmt.Errorf("proposals: recom: districts %d,%d: %w", a, b, ErrGraphDisconnected)
			}
			return nil, fmt.Errorf("proposals: recom: %w", err)
		}
		cuts := tree.BalancedCuts(weights, r.popTarget, r.epsilon)
		if len(cuts) == 0 {
			continue
		}
		chosen := cuts[rng.Intn(len(cuts))]
		side := make(map[string]bool, len(chosen.Side))
		for _, n := range chosen.Side {
			side[n] = true
		}
		flips := make(map[string]partition.District, len(nodes))
		for _, n := range nodes {
			if side[n] {
				flips[n] = a
			} else {
				flips[n] = b
			}
		}

		return p.Flip(flips)
	}

	return nil, fmt.Errorf("proposals: recom: districts %d,%d: no balanced cut in %d trees: %w",
		a, b, r.nodeRepeats+1, ErrProposalFailed)
}
