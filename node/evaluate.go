package node

import "github.com/coregx/abnf/match"

// EvalOption configures a single Evaluate call. With no options, Evaluate
// uses offset 0, a backtracking limit equal to the remaining input length,
// and returns an error (not a bare nil) when nothing matches the full
// input (see defaultEvalOptions).
type EvalOption func(*evalOptions)

type evalOptions struct {
	offset          int
	backtrackLimit  int // Unbounded for disabled; ignored while useDefaultLimit is set
	useDefaultLimit bool // limit is the remaining input length
	raiseOnNoMatch  bool
}

func defaultEvalOptions() evalOptions {
	return evalOptions{offset: 0, useDefaultLimit: true, raiseOnNoMatch: true}
}

// WithOffset starts evaluation at byte offset n instead of 0.
func WithOffset(n int) EvalOption {
	return func(o *evalOptions) { o.offset = n }
}

// WithBacktrackLimit overrides the backtracking budget with an explicit
// positive limit, replacing the default ("length of remaining input").
func WithBacktrackLimit(n int) EvalOption {
	return func(o *evalOptions) {
		o.backtrackLimit = n
		o.useDefaultLimit = false
	}
}

// WithoutBacktrackLimit disables the backtracking budget entirely.
func WithoutBacktrackLimit() EvalOption {
	return func(o *evalOptions) {
		o.backtrackLimit = Unbounded
		o.useDefaultLimit = false
	}
}

// WithoutErrorOnNoMatch makes Evaluate return (nil, nil) instead of a
// *NoMatchError when the input does not match.
func WithoutErrorOnNoMatch() EvalOption {
	return func(o *evalOptions) { o.raiseOnNoMatch = false }
}

// Evaluate drives root's generator against source starting at the
// configured offset, returning the first match that consumes source
// exactly to its end. ABNF is ordered-choice in practice, so "first full
// match" (not "longest match" or "any match") is the contract: generator
// order encodes the grammar author's preference between alternatives.
//
// Text input should already be decoded byte-preserving (ISO-8859-1 /
// raw 8-bit), matching spec §4.2 — Evaluate itself only ever sees bytes.
func Evaluate(root Node, source []byte, opts ...EvalOption) (*match.Node, error) {
	cfg := defaultEvalOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	limit := cfg.backtrackLimit
	if cfg.useDefaultLimit {
		limit = len(source) - cfg.offset
	}

	ctx := newEvalContext(limit).withRule(root.Name())

	gen := root.Generate(ctx, source, cfg.offset)
	for {
		m, err := gen.Next()
		if err != nil {
			return nil, err
		}
		if m == nil {
			break
		}
		if m.EndOffset == len(source) {
			return m, nil
		}
	}

	if cfg.raiseOnNoMatch {
		return nil, &NoMatchError{RuleName: root.Name(), Source: source, Offset: cfg.offset}
	}
	return nil, nil
}
