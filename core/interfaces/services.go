// ABOUTME: Service interfaces for the core build pipeline
// ABOUTME: Defines contracts for page scraping and category output persistence

package interfaces

import (
	"context"

	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
)

// PageImageFetcher reads the preview image a web page declares in its meta tags
type PageImageFetcher interface {
	// FetchPageImage returns the og:image / twitter:image URL of the page,
	// resolved against the page URL. An empty string with a nil error means
	// the page declared nothing.
	FetchPageImage(ctx context.Context, pageURL string) (string, error)
}

// OutputWriter persists the items of one category
type OutputWriter interface {
	// Write replaces the category's output with items and returns the path written.
	Write(ctx context.Context, category domain.Category, items []domain.FeedItem) (string, error)
}
