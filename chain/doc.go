// Package chain drives a Markov chain over partitions.
//
// A Chain is a pull iterator. The first element is the initial partition
// (step 0). Every later step asks the proposal for a candidate, retrying
// proposal failures within the step, validates the candidate, and consults the
// acceptance rule. The step then emits either the candidate or the unchanged
// current partition. Exactly totalSteps partitions are emitted.
//
//	c, err := chain.New(recom, validator, accept.AlwaysAccept(), initial, 1000, chain.WithSeed(7))
//	for c.Next() {
//		use(c.Step(), c.Partition())
//	}
//	if err := c.Err(); err != nil { ... }
//
// A chain whose proposal keeps failing stops with a *StalledError instead of
// looping forever. No partition that failed validation is ever emitted.
//
// Concurrency: a Chain is owned by one goroutine. Emitted partitions are
// immutable and may be handed to other goroutines.
package chain
