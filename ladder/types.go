// Package ladder defines collaborator contracts, options, and sentinel
// errors for the word-graph processor.
package ladder

import "errors"

// Sentinel errors for processor operations.
var (
	// ErrNilRule indicates that New was called without an adjacency rule.
	ErrNilRule = errors.New("ladder: adjacency rule is nil")

	// ErrNilSource indicates that PopulateGraph received a nil word source.
	ErrNilSource = errors.New("ladder: word source is nil")

	// ErrIngestion indicates the word source could not be read.
	// State built by earlier calls is retained, not rolled back.
	ErrIngestion = errors.New("ladder: word source could not be read")

	// ErrUnknownWord indicates a query referenced a word never added.
	ErrUnknownWord = errors.New("ladder: word not in graph")

	// ErrNoPath indicates both words exist but are not connected.
	ErrNoPath = errors.New("ladder: no path between words")

	// ErrNotPrecomputed indicates a query arrived before any
	// precomputation had run.
	ErrNotPrecomputed = errors.New("ladder: shortest paths not precomputed; call PopulateGraph first")
)

// AdjacencyRule decides whether two distinct words are linked by an
// edge. It must be pure and symmetric; the processor evaluates it once
// per unordered pair. The concrete rule (edit distance one, same-length
// substitution, …) is configuration external to this package.
type AdjacencyRule func(a, b string) bool

// WordSource produces a finite sequence of candidate words, already
// normalized (case, whitespace) by the collaborator. A failure to
// open or read the underlying source surfaces as an error here and is
// wrapped in ErrIngestion by the processor.
type WordSource interface {
	Words() ([]string, error)
}

// Policy selects how much of the path table is refreshed when a new
// word is inserted.
type Policy int

const (
	// PolicyBridgeRepair (default) keeps the table exact: after the new
	// word's single-source run, pre-existing pairs that the new word
	// strictly improves (or newly bridges) are repaired by splicing the
	// path through it. O(V²) extra per insertion.
	PolicyBridgeRepair Policy = iota

	// PolicyNewVertexOnly computes only the new word's paths to all
	// existing words, assuming existing pairwise entries stay optimal.
	// That assumption is false in general: a new word can shorten — or
	// newly create — a route between two old words, and this policy
	// will not notice. Choose it only when insertions vastly outnumber
	// cross-pair queries and approximate answers are acceptable.
	PolicyNewVertexOnly
)

// Options configures a Processor.
type Options struct {
	// Policy controls table maintenance on insertion. Default: PolicyBridgeRepair.
	Policy Policy
}

// Option represents a functional option for configuring a Processor.
type Option func(*Options)

// WithPolicy selects the table-maintenance policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// DefaultOptions returns the default Processor configuration:
// PolicyBridgeRepair, so query answers are always exact.
func DefaultOptions() Options {
	return Options{Policy: PolicyBridgeRepair}
}
