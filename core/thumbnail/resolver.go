// ABOUTME: Thumbnail resolver picks the single best image URL for a feed entry
// ABOUTME: Runs the hint strategies in order and optionally falls back to the live page

package thumbnail

import (
	"context"

	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
	coreerrors "github.com/AllrounderTechBrief/TheStreamic/core/errors"
	"github.com/AllrounderTechBrief/TheStreamic/core/interfaces"
	"github.com/AllrounderTechBrief/TheStreamic/pkg/utils/urls"
)

const pageCachePrefix = "page-image:"

// Result is the outcome of one resolution
type Result struct {
	// URL is the https-preferred image URL, empty when every strategy failed
	URL string

	// Strategy names the step that produced URL
	Strategy string

	// Attempts holds one *errors.ImageResolutionError per failed step, in order
	Attempts []error
}

// Found reports whether an image was resolved
func (r Result) Found() bool {
	return r.URL != ""
}

// Options controls the optional network step
type Options struct {
	// PageFallback enables fetching the entry link for og:image / twitter:image
	PageFallback bool
}

// Resolver resolves entry images
type Resolver struct {
	deps  interfaces.Dependencies
	pages interfaces.PageImageFetcher
	opts  Options
}

// NewResolver creates a resolver. pages may be nil when page fallback is disabled.
func NewResolver(deps interfaces.Dependencies, pages interfaces.PageImageFetcher, opts Options) *Resolver {
	return &Resolver{
		deps:  deps,
		pages: pages,
		opts:  opts,
	}
}

// Resolve returns the best image for the entry. It never fails; failures are
// listed in Result.Attempts.
func (r *Resolver) Resolve(ctx context.Context, link string, hints domain.ImageHints) Result {
	var result Result

	// With no sources every hint step would only report ErrNoCandidate
	if !hints.IsEmpty() {
		for _, s := range hintStrategies {
			found, err := s.find(link, hints)
			if err == nil && found != "" {
				result.URL = urls.PreferSecure(found)
				result.Strategy = s.name
				return result
			}
			result.Attempts = append(result.Attempts, &coreerrors.ImageResolutionError{Strategy: s.name, Err: err})
		}
	}

	if !r.opts.PageFallback || r.pages == nil {
		return result
	}

	found, err := r.fromPage(ctx, link)
	if err == nil && found != "" {
		result.URL = urls.PreferSecure(found)
		result.Strategy = StrategyPage
		return result
	}
	if err == nil {
		err = coreerrors.ErrNoCandidate
	}
	result.Attempts = append(result.Attempts, &coreerrors.ImageResolutionError{Strategy: StrategyPage, Err: err})
	return result
}

// fromPage fetches the entry link once per run and validates the declared image
func (r *Resolver) fromPage(ctx context.Context, link string) (string, error) {
	if urls.Absolute(link) == "" {
		return "", coreerrors.ErrNoCandidate
	}

	key := pageCachePrefix + link
	if r.deps.Cache != nil {
		if data, err := r.deps.Cache.Get(ctx, key); err == nil {
			if len(data) == 0 {
				return "", coreerrors.ErrNoCandidate
			}
			return string(data), nil
		}
	}

	found, err := r.pages.FetchPageImage(ctx, link)
	if err != nil {
		r.logDebug("Page image fetch failed", map[string]interface{}{
			"url":   link,
			"error": err.Error(),
		})
		// Context cancellation is not a property of the page
		if ctx.Err() == nil {
			r.remember(ctx, key, "")
		}
		return "", err
	}

	if found == "" {
		r.remember(ctx, key, "")
		return "", coreerrors.ErrNoCandidate
	}
	found = urls.Absolute(found, link)
	if !urls.LooksLikeImage(found) {
		r.remember(ctx, key, "")
		return "", rejection(1)
	}

	r.remember(ctx, key, found)
	return found, nil
}

func (r *Resolver) remember(ctx context.Context, key, value string) {
	if r.deps.Cache == nil {
		return
	}
	if err := r.deps.Cache.Set(ctx, key, []byte(value), 0); err != nil {
		r.logDebug("Failed to cache page image", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (r *Resolver) logDebug(msg string, fields map[string]interface{}) {
	if r.deps.Logger != nil {
		r.deps.Logger.Debug(msg, fields)
	}
}
