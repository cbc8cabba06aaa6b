// File: tracker.go
// Role: distinct-plan accounting over plan fingerprints.
//
// A Bloom filter answers "seen before?" for every fingerprint in constant
// memory; false positives make Distinct a slight undercount. An LRU of recent
// fingerprints counts exact revisits within a short window.
//
// Concurrency:
//   - Safe for concurrent use.

package ensemble

import (
	"encoding/binary"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/willf/bloom"
)

// Tracker counts distinct and repeated plans.
type Tracker struct {
	mu       sync.Mutex
	filter   *bloom.BloomFilter
	recent   *lru.Cache[uint64, int]
	total    int
	distinct int
}

// NewTracker sizes the filter for expected plans at false-positive rate fp and
// keeps the last recentSize fingerprints with their visit counts.
func NewTracker(expected uint, fp float64, recentSize int) (*Tracker, error) {
	if expected == 0 || fp <= 0 || fp >= 1 {
		return nil, fmt.Errorf("ensemble: tracker expected=%d fp=%g", expected, fp)
	}
	recent, err := lru.New[uint64, int](recentSize)
	if err != nil {
		return nil, fmt.Errorf("ensemble: tracker: %w", err)
	}

	return &Tracker{
		filter: bloom.NewWithEstimates(expected, fp),
		recent: recent,
	}, nil
}

// Observe records one visit of the plan with fingerprint fp and reports
// whether the plan had not been seen before.
func (t *Tracker) Observe(fp uint64) bool {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], fp)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.total++
	n, _ := t.recent.Get(fp)
	t.recent.Add(fp, n+1)
	if t.filter.Test(key[:]) {
		return false
	}
	t.filter.Add(key[:])
	t.distinct++

	return true
}

// Visits returns how often fp was observed while it stayed in the recent window.
func (t *Tracker) Visits(fp uint64) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.recent.Peek(fp)

	return n
}

// Distinct returns the number of plans first seen so far.
func (t *Tracker) Distinct() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.distinct
}

// Total returns the number of observations.
func (t *Tracker) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.total
}
