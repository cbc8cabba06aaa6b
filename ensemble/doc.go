// Package ensemble runs replicate ReCom chains from a config.Config and turns
// their output into samples and boxplot summaries.
//
// A Runner builds the initial partition from the graph (population tally,
// elections, optional geographic updaters), derives the population target,
// and assembles the proposal, validator and acceptance rule. Run then starts
// one chain per replicate on its own goroutine, each with a random stream
// derived from the configured seed and each tagged with a fresh run ID.
//
// Every emitted partition becomes a Sample. Samples go to a Recorder
// (memory, Redis, Badger), feed a Summarizer, and optionally a Tracker and
// Prometheus Metrics.
package ensemble
