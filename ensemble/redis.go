// File: redis.go
// Role: Redis sample sink. Each run is a list of CBOR samples at
//       <prefix>:run:<id>; the set <prefix>:runs names every run.

package ensemble

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// RedisRecorder appends samples to Redis lists.
type RedisRecorder struct {
	client *redis.Client
	prefix string
	owned  bool // Close also closes client
}

// NewRedisRecorder wraps client. The caller keeps ownership of client.
// An empty prefix defaults to "recom".
func NewRedisRecorder(client *redis.Client, prefix string) (*RedisRecorder, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if prefix == "" {
		prefix = "recom"
	}

	return &RedisRecorder{client: client, prefix: prefix}, nil
}

// KeyRun returns the list key of run.
func (r *RedisRecorder) KeyRun(run string) string { return r.prefix + ":run:" + run }

// KeyRuns returns the key of the run set.
func (r *RedisRecorder) KeyRuns() string { return r.prefix + ":runs" }

// Record pushes s onto its run's list.
func (r *RedisRecorder) Record(ctx context.Context, s Sample) error {
	data, err := encodeSample(s)
	if err != nil {
		return err
	}
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, r.KeyRun(s.Run), data)
	pipe.SAdd(ctx, r.KeyRuns(), s.Run)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("ensemble: redis record %s/%d: %w", s.Run, s.Step, err)
	}

	return nil
}

// Runs returns the recorded run IDs, sorted.
func (r *RedisRecorder) Runs(ctx context.Context) ([]string, error) {
	runs, err := r.client.SMembers(ctx, r.KeyRuns()).Result()
	if err != nil {
		return nil, fmt.Errorf("ensemble: redis runs: %w", err)
	}
	sort.Strings(runs)

	return runs, nil
}

// Samples returns the samples of run in recording order.
func (r *RedisRecorder) Samples(ctx context.Context, run string) ([]Sample, error) {
	raw, err := r.client.LRange(ctx, r.KeyRun(run), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("ensemble: redis samples %s: %w", run, err)
	}
	out := make([]Sample, 0, len(raw))
	for _, v := range raw {
		s, err := decodeSample([]byte(v))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// Close closes the client if the recorder opened it.
func (r *RedisRecorder) Close() error {
	if r.owned {
		return r.client.Close()
	}

	return nil
}
