package analytics

import "errors"

// Sentinel errors returned by the analytics core. Callers match with
// errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrInvalidConfiguration means a scoring configuration has a missing or
	// non-finite multiplier, or a stat line has a negative count.
	ErrInvalidConfiguration = errors.New("invalid scoring configuration")

	// ErrInvalidTradeProposal means a trade side is empty, the sides overlap,
	// or a referenced player has no computable value.
	ErrInvalidTradeProposal = errors.New("invalid trade proposal")

	// ErrInsufficientSample means a series is too short or degenerate (zero
	// mean) to produce a meaningful score.
	ErrInsufficientSample = errors.New("insufficient sample")

	// ErrNotEvaluable means the baseline window averages to zero, so a trend
	// ratio cannot be formed.
	ErrNotEvaluable = errors.New("baseline average is zero, trend not evaluable")

	// ErrNoGamesOnDate means no games are scheduled league-wide for the
	// requested date. Distinct from "all candidates excluded", which is an
	// empty successful result.
	ErrNoGamesOnDate = errors.New("no games scheduled on date")
)
