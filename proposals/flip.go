// File: flip.go
// Role: single-node boundary flip proposal.

package proposals

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/recom/partition"
)

// RandomFlip moves one endpoint of a uniformly chosen cut edge into the
// district of the other endpoint. A move that would empty a district is
// reported as ErrProposalFailed.
func RandomFlip() Proposal {
	return Func(randomFlip)
}

func randomFlip(p *partition.Partition, rng *rand.Rand) (*partition.Partition, error) {
	cut, err := p.SortedCutEdges()
	if err != nil {
		return nil, err
	}
	if len(cut) == 0 {
		return nil, fmt.Errorf("proposals: flip: no cut edges: %w", ErrProposalFailed)
	}
	e, err := p.Graph().GetEdge(cut[rng.Intn(len(cut))])
	if err != nil {
		return nil, fmt.Errorf("proposals: flip: %w", err)
	}
	node := e.From
	if rng.Intn(2) == 1 {
		node = e.To
	}
	to, _ := p.Assignment(e.Other(node))

	next, err := p.Flip(map[string]partition.District{node: to})
	if errors.Is(err, partition.ErrInvalidAssignment) {
		return nil, fmt.Errorf("proposals: flip: %s: %w: %w", node, ErrProposalFailed, err)
	}

	return next, err
}
