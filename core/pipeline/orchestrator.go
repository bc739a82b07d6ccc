// ABOUTME: Orchestrator builds every category: fetch, parse, relabel, merge, dedupe, truncate, write
// ABOUTME: Sources within a category run on a bounded errgroup pool; categories run one at a time

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
	coreerrors "github.com/AllrounderTechBrief/TheStreamic/core/errors"
	"github.com/AllrounderTechBrief/TheStreamic/core/interfaces"
)

const (
	// DefaultWorkers is the source concurrency within one category
	DefaultWorkers = 4

	// DefaultMaxBodyBytes caps a feed response body
	DefaultMaxBodyBytes int64 = 10 * 1024 * 1024
)

// FeedParser turns fetched bytes into items
type FeedParser interface {
	Parse(ctx context.Context, source string, data []byte, limit int) []domain.FeedItem
}

// HostLimiter spaces requests to the same host
type HostLimiter interface {
	Wait(ctx context.Context, rawURL string) error
}

// Options tunes a run
type Options struct {
	// Workers bounds concurrent sources per category; 1 is strictly sequential
	Workers int

	// PerSourceLimit caps entries taken from each feed; 0 means unlimited
	PerSourceLimit int

	// MaxBodyBytes caps how much of a feed response is read
	MaxBodyBytes int64
}

// Orchestrator runs the build pipeline over a catalog
type Orchestrator struct {
	deps    interfaces.Dependencies
	parser  FeedParser
	writer  interfaces.OutputWriter
	limiter HostLimiter
	opts    Options
}

// NewOrchestrator creates an orchestrator. limiter may be nil.
func NewOrchestrator(deps interfaces.Dependencies, parser FeedParser, writer interfaces.OutputWriter, limiter HostLimiter, opts Options) *Orchestrator {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Orchestrator{
		deps:    deps,
		parser:  parser,
		writer:  writer,
		limiter: limiter,
		opts:    opts,
	}
}

// Run builds every category in catalog order. Source failures are reported in the
// Report only; write failures are also joined into the returned error.
func (o *Orchestrator) Run(ctx context.Context, catalog domain.Catalog) (Report, error) {
	report := Report{Categories: make([]CategoryResult, 0, len(catalog.Categories))}

	var errs []error
	for _, category := range catalog.Categories {
		result := o.BuildCategory(ctx, category)
		report.Categories = append(report.Categories, result)
		if result.Err != nil {
			errs = append(errs, coreerrors.WrapError(result.Err, "category "+category.Name))
		}
	}
	return report, errors.Join(errs...)
}

// BuildCategory fetches all sources of one category and writes its output
func (o *Orchestrator) BuildCategory(ctx context.Context, category domain.Category) CategoryResult {
	results := make([]SourceResult, len(category.Sources))

	var g errgroup.Group
	g.SetLimit(o.opts.Workers)
	for i, src := range category.Sources {
		i, src := i, src // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			results[i] = o.processSource(ctx, src)
			return nil
		})
	}
	_ = g.Wait()

	var merged []domain.FeedItem
	for i := range results {
		r := &results[i]
		if r.State == StateFailed {
			o.logWarn("Skipping source", map[string]interface{}{
				"category": category.Name,
				"url":      r.Source.URL,
				"error":    r.Err.Error(),
			})
			continue
		}
		merged = append(merged, r.Items...)
		r.State = StateMerged
	}

	items := Truncate(Dedupe(merged), category.MaxItems())

	result := CategoryResult{
		Category: category,
		Items:    items,
		Sources:  results,
	}

	path, err := o.writer.Write(ctx, category, items)
	result.Path = path
	if err != nil {
		result.Err = err
		o.logError("Failed to write category", map[string]interface{}{
			"category": category.Name,
			"path":     path,
			"error":    err.Error(),
		})
		return result
	}

	o.logInfo("Wrote category", map[string]interface{}{
		"category": category.Name,
		"path":     path,
		"items":    len(items),
		"failed":   len(result.FailedSources()),
	})
	return result
}

// processSource never panics; a panic anywhere below is reported as a FetchError
func (o *Orchestrator) processSource(ctx context.Context, src domain.SourceConfig) (result SourceResult) {
	result = SourceResult{Source: src, State: StatePending}

	defer func() {
		if r := recover(); r != nil {
			result.State = StateFailed
			result.Items = nil
			result.Err = &coreerrors.FetchError{URL: src.URL, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	data, err := o.fetch(ctx, src.URL)
	if err != nil {
		result.State = StateFailed
		result.Err = err
		return result
	}
	result.State = StateFetched

	items := o.parser.Parse(ctx, src.URL, data, o.opts.PerSourceLimit)
	if src.Label != "" {
		for i := range items {
			items[i].Source = src.Label
		}
	}

	result.Items = items
	result.State = StateParsed
	return result
}

func (o *Orchestrator) fetch(ctx context.Context, url string) ([]byte, error) {
	if o.deps.HTTPClient == nil {
		return nil, &coreerrors.FetchError{URL: url, Err: errors.New("HTTP client not configured")}
	}

	if o.limiter != nil {
		if err := o.limiter.Wait(ctx, url); err != nil {
			return nil, &coreerrors.FetchError{URL: url, Err: err}
		}
	}

	resp, err := o.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return nil, &coreerrors.FetchError{URL: url, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.FetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body(), o.opts.MaxBodyBytes+1))
	if err != nil {
		return nil, &coreerrors.FetchError{URL: url, Err: err}
	}
	if int64(len(data)) > o.opts.MaxBodyBytes {
		return nil, &coreerrors.FetchError{URL: url, Err: fmt.Errorf("body exceeds %d bytes", o.opts.MaxBodyBytes)}
	}

	o.logDebug("Fetched source", map[string]interface{}{
		"url":          url,
		"bytes":        len(data),
		"content_type": resp.Header("Content-Type"),
	})
	return data, nil
}

func (o *Orchestrator) logDebug(msg string, fields map[string]interface{}) {
	if o.deps.Logger != nil {
		o.deps.Logger.Debug(msg, fields)
	}
}

func (o *Orchestrator) logInfo(msg string, fields map[string]interface{}) {
	if o.deps.Logger != nil {
		o.deps.Logger.Info(msg, fields)
	}
}

func (o *Orchestrator) logWarn(msg string, fields map[string]interface{}) {
	if o.deps.Logger != nil {
		o.deps.Logger.Warn(msg, fields)
	}
}

func (o *Orchestrator) logError(msg string, fields map[string]interface{}) {
	if o.deps.Logger != nil {
		o.deps.Logger.Error(msg, fields)
	}
}
