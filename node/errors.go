package node

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the typed errors below,
// mirroring the teacher's nfa.ErrInvalidState/nfa.ErrNoMatch pattern of
// pairing a sentinel with a richer wrapping type.
var (
	ErrNoMatch           = errors.New("no match")
	ErrBacktrackingLimit = errors.New("backtracking limit reached")
)

// NoMatchError reports that the evaluator exhausted every candidate
// without producing a match consuming the entire input.
type NoMatchError struct {
	RuleName string
	Source   []byte
	Offset   int
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("abnf: source data did not match rule %q at offset %d", e.RuleName, e.Offset)
}

func (e *NoMatchError) Unwrap() error { return ErrNoMatch }

// BacktrackingLimitError reports that a Repetition's backtrack counter
// reached the configured budget. It always propagates out through every
// nested generator to the Evaluate caller.
type BacktrackingLimitError struct {
	RuleName string
	Offset   int
	Count    int
	Limit    int
}

func (e *BacktrackingLimitError) Error() string {
	return fmt.Sprintf(
		"abnf: backtracking count %d reached the limit %d evaluating rule %q at offset %d",
		e.Count, e.Limit, e.RuleName, e.Offset,
	)
}

func (e *BacktrackingLimitError) Unwrap() error { return ErrBacktrackingLimit }
