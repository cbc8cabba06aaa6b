// File: recorder.go
// Role: sample sinks. Memory and discard sinks live here; Redis and Badger
//       sinks live in their own files.

package ensemble

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/recom/config"
)

// Sentinel errors.
var (
	// ErrNilClient is returned when a sink is given a nil client.
	ErrNilClient = errors.New("ensemble: nil client")

	// ErrRecorderClosed is returned by Record after Close.
	ErrRecorderClosed = errors.New("ensemble: recorder closed")
)

// Recorder stores samples. Implementations must accept concurrent Record
// calls from different runs.
type Recorder interface {
	Record(ctx context.Context, s Sample) error
	Close() error
}

// encodeSample and decodeSample fix the on-disk and on-wire encoding.
func encodeSample(s Sample) ([]byte, error) {
	b, err := cbor.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("ensemble: encode sample %s/%d: %w", s.Run, s.Step, err)
	}

	return b, nil
}

func decodeSample(b []byte) (Sample, error) {
	var s Sample
	if err := cbor.Unmarshal(b, &s); err != nil {
		return Sample{}, fmt.Errorf("ensemble: decode sample: %w", err)
	}

	return s, nil
}

// MemoryRecorder keeps samples in memory.
type MemoryRecorder struct {
	mu      sync.Mutex
	samples []Sample
	closed  bool
}

// NewMemoryRecorder returns an empty MemoryRecorder.
func NewMemoryRecorder() *MemoryRecorder { return &MemoryRecorder{} }

// Record appends s.
func (m *MemoryRecorder) Record(_ context.Context, s Sample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrRecorderClosed
	}
	m.samples = append(m.samples, s)

	return nil
}

// Close marks the recorder closed; samples stay readable.
func (m *MemoryRecorder) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	return nil
}

// Samples returns every sample ordered by replicate then step.
func (m *MemoryRecorder) Samples() []Sample {
	m.mu.Lock()
	out := append([]Sample(nil), m.samples...)
	m.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Replicate != out[j].Replicate {
			return out[i].Replicate < out[j].Replicate
		}
		return out[i].Step < out[j].Step
	})

	return out
}

type discardRecorder struct{}

func (discardRecorder) Record(context.Context, Sample) error { return nil }

func (discardRecorder) Close() error { return nil }

// Discard drops every sample.
func Discard() Recorder { return discardRecorder{} }

// OpenRecorder builds the sink selected by cfg.
func OpenRecorder(ctx context.Context, cfg config.RecorderConfig) (Recorder, error) {
	switch cfg.Kind {
	case config.RecorderNone:
		return Discard(), nil
	case "", config.RecorderMemory:
		return NewMemoryRecorder(), nil
	case config.RecorderRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("ensemble: redis %s: %w", cfg.RedisAddr, err)
		}
		r, err := NewRedisRecorder(client, cfg.RedisKey)
		if err != nil {
			return nil, err
		}
		r.owned = true
		return r, nil
	case config.RecorderBadger:
		return OpenBadgerRecorder(cfg.BadgerPath)
	default:
		return nil, fmt.Errorf("%w: recorder kind %q", config.ErrInvalidConfig, cfg.Kind)
	}
}
