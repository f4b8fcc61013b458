// Package dijkstra defines types, functional options, and sentinel
// errors for the single-source shortest-path computation over a
// core.Graph of words.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source word is empty.
	ErrEmptySource = errors.New("dijkstra: source word is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source word does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source word not found in graph")

	// ErrNegativeWeight indicates that the weight function produced a
	// negative value during relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that the requested target word was not
	// reached from the source.
	ErrUnreachable = errors.New("dijkstra: target not reachable from source")
)

// Unreachable is the distance recorded for words the search never
// reached: math.MaxInt64, the same "infinity" a fresh tentative
// distance starts at.
const Unreachable = int64(math.MaxInt64)

// WeightFunc reports the weight of the edge u—v. It is consulted once
// per relaxation and must be non-negative and symmetric for undirected
// graphs.
type WeightFunc func(u, v string) int64

// UnitWeight weights every edge 1 — the word-ladder metric, where
// distance counts hops.
func UnitWeight(_, _ string) int64 { return 1 }

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting word (must be non-empty and present in the graph).
// Weight      – edge weight function; defaults to UnitWeight.
// MaxDistance – optional cap on distances to explore (words beyond are
// skipped). Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Source      string     // the source word
	Weight      WeightFunc // edge weight function
	MaxDistance int64      // maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting word. Must be supplied on every run.
func Source(word string) Option {
	return func(o *Options) {
		o.Source = word
	}
}

// WithWeightFunc replaces the default unit weight with fn.
// A nil fn is ignored (the default stays in place).
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithMaxDistance sets a maximum distance threshold. Words whose
// shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with
// ErrBadMaxDistance (invalid configuration is a programming error).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options initialized with sensible defaults
// for the given source word: unit weights and no distance cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		Weight:      UnitWeight,
		MaxDistance: math.MaxInt64,
	}
}

// Result holds the outcome of one single-source run:
//   - Source: the word the search started from.
//   - Dist: map from word to its minimum distance from Source
//     (Unreachable for words the search never settled).
//   - Prev: map from word to its predecessor on the shortest path
//     ("" for the source and for unreached words).
type Result struct {
	Source string
	Dist   map[string]int64
	Prev   map[string]string
}

// Reached reports whether word was settled by the search.
func (r *Result) Reached(word string) bool {
	d, ok := r.Dist[word]

	return ok && d != Unreachable
}

// DistanceTo returns the shortest distance from Source to word, or
// ErrUnreachable if the search never reached it.
func (r *Result) DistanceTo(word string) (int64, error) {
	if !r.Reached(word) {
		return 0, fmt.Errorf("%w: %q", ErrUnreachable, word)
	}

	return r.Dist[word], nil
}

// PathTo reconstructs the shortest path from Source to word, inclusive
// of both endpoints, by walking the predecessor chain backwards and
// reversing. Returns ErrUnreachable if word was not reached.
func (r *Result) PathTo(word string) ([]string, error) {
	if !r.Reached(word) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, word)
	}

	// Walk word → … → Source via predecessors.
	path := []string{}
	for cur := word; ; {
		path = append(path, cur)
		prev := r.Prev[cur]
		if prev == "" {
			break
		}
		cur = prev
	}

	// Reverse in place to obtain Source → word order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
