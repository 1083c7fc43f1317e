// Sentinel errors shared by the redundancy analysis pipeline.
package redundancy

import "errors"

var (
	// ErrInsufficientData is returned when a company has fewer than two
	// active software assets, so there is nothing to compare.
	ErrInsufficientData = errors.New("at least two active software assets are required for analysis")

	// ErrAnalysisConflict is returned when an analysis is already queued or
	// running for the company.
	ErrAnalysisConflict = errors.New("an analysis is already in progress for this company")

	// ErrAggregationFailed wraps feature-fetch or lookup failures that abort
	// the whole run. Partial results are never persisted.
	ErrAggregationFailed = errors.New("portfolio aggregation failed")

	// ErrCancelled is returned when cooperative cancellation was observed.
	ErrCancelled = errors.New("analysis cancelled")

	// ErrRunNotFound is returned when no analysis run exists for the company.
	ErrRunNotFound = errors.New("no analysis run found for this company")
)
