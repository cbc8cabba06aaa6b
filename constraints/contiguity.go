// File: contiguity.go
// Role: district contiguity via set-restricted BFS.

package constraints

import (
	"github.com/katalvlaran/recom/bfs"
	"github.com/katalvlaran/recom/partition"
)

// Contiguous accepts partitions in which every district induces a connected
// subgraph.
//
// Complexity: O(V + E) per check.
func Contiguous() Constraint {
	return New("contiguous", func(p *partition.Partition) (bool, error) {
		for _, d := range p.Districts() {
			ok, err := bfs.SetConnected(p.Graph(), p.Part(d))
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}

		return true, nil
	})
}
