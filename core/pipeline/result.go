// ABOUTME: Per-source and per-category results produced by a build run
// ABOUTME: Keeps failure causes inspectable without aborting the run

package pipeline

import (
	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
)

// SourceState tracks one source through the pipeline
type SourceState int

const (
	StatePending SourceState = iota
	StateFetched
	StateParsed
	StateMerged
	StateFailed
)

// String returns the lowercase state name
func (s SourceState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFetched:
		return "fetched"
	case StateParsed:
		return "parsed"
	case StateMerged:
		return "merged"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SourceResult is the outcome for one configured source
type SourceResult struct {
	Source domain.SourceConfig
	State  SourceState
	Items  []domain.FeedItem
	Err    error
}

// CategoryResult is the outcome for one category
type CategoryResult struct {
	Category domain.Category

	// Path is the output file, set even when the write failed
	Path string

	// Items are exactly what was written
	Items []domain.FeedItem

	// Sources are in configured order
	Sources []SourceResult

	// Err is the write failure, if any. Source failures never set it.
	Err error
}

// FailedSources returns the sources that ended in StateFailed
func (c CategoryResult) FailedSources() []SourceResult {
	var failed []SourceResult
	for _, s := range c.Sources {
		if s.State == StateFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// Report summarizes a whole run
type Report struct {
	RunID      string
	Categories []CategoryResult
}

// ItemsWritten totals the items across categories that were written successfully
func (r Report) ItemsWritten() int {
	total := 0
	for _, c := range r.Categories {
		if c.Err == nil {
			total += len(c.Items)
		}
	}
	return total
}
