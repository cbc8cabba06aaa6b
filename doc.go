// Package recom is an ensemble generator for districting plans: a Markov
// chain over partitions of a precinct dual graph, driven by the ReCom
// (recombination) proposal.
//
// What is in the box?
//
//	A thread-safe, deterministic toolkit that brings together:
//		• Dual graphs: attributed, freezable, loaded from networkx JSON
//		• Partitions: lazy cached updaters (tallies, elections, cut edges, geography)
//		• Spanning trees: uniform (Wilson) and random-weight Kruskal, balanced cuts
//		• Proposals: ReCom and single-node flips
//		• Constraints & acceptance: population balance, compactness, contiguity, Metropolis
//		• Chains: a pull iterator that never emits an invalid plan
//		• Ensembles: parallel replicates, samples, boxplot summaries, Redis/Badger sinks
//
// Packages:
//
//	core/        - undirected attributed Graph, Freeze, InducedSubgraph
//	builder/     - deterministic Cycle/Path/Grid fixtures with attribute generators
//	graphio/     - networkx adjacency / node-link JSON loader
//	bfs/         - scope-restricted reachability, components, set connectivity
//	spanning/    - spanning tree samplers and balanced tree cuts
//	partition/   - Partition, Flip, updater registry and built-in updaters
//	proposals/   - ReCom, RandomFlip
//	constraints/ - Validator and built-in constraints
//	accept/      - AlwaysAccept, MetropolisHastings
//	chain/       - the Markov chain driver
//	config/      - YAML + RECOM_* environment configuration
//	ensemble/    - replicate runner, samples, summaries, recorders, metrics
//
// Quick ASCII example (a 4-cycle split into two districts):
//
//	    0───1        districts {0,1} and {2,3}
//	    │   │        one ReCom step merges them, draws a spanning tree
//	    3───2        and cuts it into two halves of population 200 ± ε
//
// See examples/recom_grid for an end-to-end run.
//
//	go get github.com/katalvlaran/recom
package recom
