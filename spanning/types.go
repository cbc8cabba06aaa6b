// Package spanning defines configuration options and sentinel errors for
// random spanning tree sampling. It supports selecting between Wilson's
// algorithm (exactly uniform) and random-weight Kruskal via Options.
package spanning

import (
	"errors"
	"fmt"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("spanning: graph is nil")

// ErrEmptyGraph indicates that a spanning tree of zero vertices was requested.
var ErrEmptyGraph = errors.New("spanning: graph has no vertices")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("spanning: graph is disconnected")

// ErrNeedRand indicates that Draw was called without a random source.
var ErrNeedRand = errors.New("spanning: rng is required")

// ErrUnknownMethod indicates an unsupported sampling method name.
var ErrUnknownMethod = errors.New("spanning: unknown method")

// MethodWilson selects Wilson's algorithm (loop-erased random walks).
// The resulting tree is exactly uniform over all spanning trees.
const MethodWilson = "wilson"

// MethodKruskal selects Kruskal's algorithm over i.i.d. uniform edge weights.
// Cheap, but NOT uniform over spanning trees.
const MethodKruskal = "kruskal"

// Options configures which sampler to run.
//
// Fields:
//
//	Method string - one of MethodWilson or MethodKruskal.
//	Root   string - Wilson's initial tree vertex and the root used by
//	                Tree.BalancedCuts; "" selects the smallest vertex ID.
type Options struct {
	Method string
	Root   string
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the sampler.
// Unknown names surface as ErrUnknownMethod from Draw.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithRoot returns an Option that fixes the root vertex.
func WithRoot(root string) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// DefaultOptions returns Options initialized for Wilson with an automatic root.
func DefaultOptions() Options {
	return Options{
		Method: MethodWilson,
		Root:   "",
	}
}

// ParseMethod validates a sampler name (as found in configuration files).
func ParseMethod(name string) (string, error) {
	switch name {
	case MethodWilson, MethodKruskal:
		return name, nil
	case "":
		return MethodWilson, nil
	default:
		return "", fmt.Errorf("spanning: method %q: %w", name, ErrUnknownMethod)
	}
}
