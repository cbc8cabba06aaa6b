// File: runner.go
// Role: replicate fan-out over chains built from a config.Config.
//
// Concurrency:
//   - One goroutine per replicate (errgroup). The graph and initial partition
//     are shared read-only; each chain owns its random stream.

package ensemble

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/recom/accept"
	"github.com/katalvlaran/recom/chain"
	"github.com/katalvlaran/recom/config"
	"github.com/katalvlaran/recom/constraints"
	"github.com/katalvlaran/recom/core"
	"github.com/katalvlaran/recom/partition"
	"github.com/katalvlaran/recom/proposals"
	"github.com/katalvlaran/recom/spanning"
)

// PopulationUpdater is the updater name of the population tally.
const PopulationUpdater = "population"

// Runner runs the replicate chains of one configuration.
type Runner struct {
	cfg       *config.Config
	log       *slog.Logger
	recorder  Recorder
	metrics   *Metrics
	tracker   *Tracker
	elections []string

	initial   *partition.Partition
	popTarget float64
	baseCut   float64 // cut edges of initial; keeps score near 1

	// Stateless, shared by every replicate.
	proposal  proposals.Proposal
	validator *constraints.Validator
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger. Panics if l is nil.
func WithLogger(l *slog.Logger) RunnerOption {
	if l == nil {
		panic("ensemble: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.log = l
	}
}

// WithRecorder sets the sample sink (default: a MemoryRecorder).
func WithRecorder(rec Recorder) RunnerOption {
	if rec == nil {
		panic("ensemble: WithRecorder(nil)")
	}
	return func(r *Runner) {
		r.recorder = rec
	}
}

// WithMetrics enables Prometheus instruments.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithTracker enables distinct-plan accounting.
func WithTracker(t *Tracker) RunnerOption {
	return func(r *Runner) {
		r.tracker = t
	}
}

// NewRunner validates cfg, builds the initial partition of g from the
// cfg.Assignment attribute, and assembles the proposal and constraints.
//
// Errors: config.ErrInvalidConfig (also for a population target that is not
// positive), and any partition or constraint construction error (missing
// columns surface as core.ErrMissingAttribute).
func NewRunner(g *core.Graph, cfg *config.Config, opts ...RunnerOption) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:      cfg,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder: NewMemoryRecorder(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(slog.String("component", "ensemble"))

	popts := []partition.Option{partition.WithUpdater(PopulationUpdater, partition.Tally(cfg.PopCol))}
	if cfg.Geographic {
		popts = append(popts, partition.WithGeographic())
	}
	for _, e := range cfg.Elections {
		parties := make([]partition.Party, len(e.Parties))
		for i, p := range e.Parties {
			parties[i] = partition.Party{Name: p.Name, Column: p.Column}
		}
		popts = append(popts, partition.WithUpdater(e.Name, partition.Election(e.Name, parties...)))
		r.elections = append(r.elections, e.Name)
	}

	initial, err := partition.FromAttribute(g, cfg.Assignment, popts...)
	if err != nil {
		return nil, fmt.Errorf("ensemble: initial partition: %w", err)
	}
	r.initial = initial

	if r.baseCut, err = constraints.CutEdgeCount(initial); err != nil {
		return nil, fmt.Errorf("ensemble: initial partition: %w", err)
	}
	r.popTarget = cfg.PopTarget
	if r.popTarget == 0 {
		if r.popTarget, err = constraints.IdealPopulation(initial, PopulationUpdater); err != nil {
			return nil, fmt.Errorf("ensemble: ideal population: %w", err)
		}
	}
	if r.popTarget <= 0 {
		return nil, fmt.Errorf("%w: population target %g must be > 0 (total %s is %g)",
			config.ErrInvalidConfig, r.popTarget, cfg.PopCol, g.TotalAttr(cfg.PopCol))
	}
	if r.proposal, err = r.newProposal(); err != nil {
		return nil, err
	}
	if r.validator, err = r.newValidator(); err != nil {
		return nil, err
	}

	stats := g.Stats()
	r.log.Info("initial partition",
		slog.Int("nodes", stats.VertexCount),
		slog.Int("edges", stats.EdgeCount),
		slog.Int("districts", initial.Len()),
		slog.Float64("pop_target", r.popTarget),
		slog.Float64("cut_edges", r.baseCut))

	return r, nil
}

// Initial returns the initial partition.
func (r *Runner) Initial() *partition.Partition { return r.initial }

// PopTarget returns the population target used by the proposal and the
// balance constraint.
func (r *Runner) PopTarget() float64 { return r.popTarget }

// Recorder returns the sample sink.
func (r *Runner) Recorder() Recorder { return r.recorder }

// RunResult describes one replicate.
type RunResult struct {
	ID        string
	Replicate int
	Seed      int64
	Stats     chain.Stats
	Elapsed   time.Duration
}

// Result is the outcome of Run.
type Result struct {
	Runs    []RunResult // ordered by replicate
	Summary Summary
}

// Run executes cfg.Replicates chains concurrently. The first failing chain
// cancels the others; its error is returned.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	summ := NewSummarizer()
	runs := make([]RunResult, r.cfg.Replicates)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Replicates; i++ {
		g.Go(func() error {
			res, err := r.runReplicate(ctx, i, summ)
			runs[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if r.metrics != nil && r.tracker != nil {
		r.metrics.setDistinct(r.tracker.Distinct())
	}
	sort.Slice(runs, func(a, b int) bool { return runs[a].Replicate < runs[b].Replicate })

	return &Result{Runs: runs, Summary: summ.Summary()}, nil
}

// NewChain assembles the chain of replicate i without running it.
func (r *Runner) NewChain(i int, log *slog.Logger) (*chain.Chain, error) {
	rule, err := accept.ByName(r.cfg.Accept, r.score)
	if err != nil {
		return nil, err
	}
	opts := []chain.Option{
		chain.WithRand(replicateRand(r.cfg.Seed, i)),
		chain.WithMaxProposalRetries(r.cfg.MaxProposalRetries),
	}
	if log != nil {
		opts = append(opts, chain.WithLogger(log))
	}

	return chain.New(r.proposal, r.validator, rule, r.initial, r.cfg.TotalSteps, opts...)
}

func (r *Runner) runReplicate(ctx context.Context, i int, summ *Summarizer) (RunResult, error) {
	id := uuid.New().String()
	res := RunResult{ID: id, Replicate: i, Seed: ReplicateSeed(r.cfg.Seed, i)}
	log := r.log.With(slog.String("run", id), slog.Int("replicate", i))
	start := time.Now()

	c, err := r.NewChain(i, log)
	if err != nil {
		return res, fmt.Errorf("ensemble: replicate %d: %w", i, err)
	}
	log.Info("run started", slog.Int("total_steps", r.cfg.TotalSteps), slog.Int64("seed", res.Seed))

	var prev chain.Stats
	for c.Next() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		s, err := NewSample(id, i, c.Step(), c.Accepted(), c.Partition(), r.elections)
		if err != nil {
			return res, fmt.Errorf("ensemble: replicate %d step %d: %w", i, c.Step(), err)
		}
		if err := r.recorder.Record(ctx, s); err != nil {
			return res, err
		}
		summ.Add(s)
		if r.tracker != nil {
			r.tracker.Observe(s.Fingerprint)
		}
		if r.metrics != nil {
			cur := c.Stats()
			r.metrics.observe(prev, cur)
			prev = cur
			if r.tracker != nil {
				r.metrics.setDistinct(r.tracker.Distinct())
			}
		}
	}
	res.Stats = c.Stats()
	res.Elapsed = time.Since(start)
	if err := c.Err(); err != nil {
		return res, fmt.Errorf("ensemble: replicate %d: %w", i, err)
	}
	log.Info("run finished",
		slog.Int("accepted", res.Stats.Accepted),
		slog.Int("rejected", res.Stats.RejectedByConstraint+res.Stats.RejectedByRule),
		slog.Int("proposal_failures", res.Stats.ProposalFailures),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}

func (r *Runner) newProposal() (proposals.Proposal, error) {
	switch r.cfg.Proposal {
	case config.ProposalFlip:
		return proposals.RandomFlip(), nil
	case config.ProposalReCom:
		method, err := spanning.ParseMethod(r.cfg.TreeMethod)
		if err != nil {
			return nil, err
		}
		return proposals.NewReCom(r.cfg.PopCol, r.popTarget, r.cfg.Epsilon,
			proposals.WithNodeRepeats(r.cfg.NodeRepeats),
			proposals.WithTreeMethod(method)), nil
	default:
		return nil, fmt.Errorf("%w: proposal %q", config.ErrInvalidConfig, r.cfg.Proposal)
	}
}

// newValidator bounds population around the initial plan's ideal, optionally
// cut edges, and for single-node flips also contiguity (ReCom keeps districts
// connected by construction). A pop_target override steers ReCom's tree cuts
// only.
func (r *Runner) newValidator() (*constraints.Validator, error) {
	balance, err := constraints.WithinPercentOfIdealPopulation(r.initial, PopulationUpdater, r.cfg.Epsilon)
	if err != nil {
		return nil, err
	}
	cs := []constraints.Constraint{balance}
	if r.cfg.CompactnessMultiplier > 0 {
		compact, err := constraints.CompactnessBound(r.initial, r.cfg.CompactnessMultiplier)
		if err != nil {
			return nil, err
		}
		cs = append(cs, compact)
	}
	if r.cfg.Proposal == config.ProposalFlip {
		cs = append(cs, constraints.Contiguous())
	}

	return constraints.NewValidator(cs...), nil
}

// score favours plans with fewer cut edges: exp(-beta·|cut edges|), shifted
// by the initial count so large plans do not underflow to 0. The shift cancels
// in the Metropolis ratio.
func (r *Runner) score(p *partition.Partition) (float64, error) {
	n, err := constraints.CutEdgeCount(p)
	if err != nil {
		return 0, err
	}

	return math.Exp(-r.cfg.Beta * (n - r.baseCut)), nil
}
