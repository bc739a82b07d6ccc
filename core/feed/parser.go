// ABOUTME: Feed parser turns raw feed bytes into normalized FeedItems
// ABOUTME: Swallows parse failures as empty results and resolves each entry's image

package feed

import (
	"context"

	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
	coreerrors "github.com/AllrounderTechBrief/TheStreamic/core/errors"
	"github.com/AllrounderTechBrief/TheStreamic/core/interfaces"
	"github.com/AllrounderTechBrief/TheStreamic/core/thumbnail"
)

// ImageResolver picks the image for one entry
type ImageResolver interface {
	Resolve(ctx context.Context, link string, hints domain.ImageHints) thumbnail.Result
}

// Parser converts feed documents into items
type Parser struct {
	deps     interfaces.Dependencies
	resolver ImageResolver
}

// NewParser creates a new parser. A nil resolver leaves every image empty.
func NewParser(deps interfaces.Dependencies, resolver ImageResolver) *Parser {
	return &Parser{
		deps:     deps,
		resolver: resolver,
	}
}

// Parse decodes data and returns at most limit items (0 means no limit).
// It never fails: undecodable or unrecognized input yields an empty slice.
func (p *Parser) Parse(ctx context.Context, source string, data []byte, limit int) []domain.FeedItem {
	doc, err := Decode(data)
	if err != nil {
		p.logDebug("Discarding unparseable feed", map[string]interface{}{
			"source": source,
			"error":  (&coreerrors.ParseError{Source: source, Err: err}).Error(),
		})
		return []domain.FeedItem{}
	}
	if doc.Dialect == DialectUnrecognized {
		p.logDebug("Discarding unrecognized feed format", map[string]interface{}{
			"source": source,
			"bytes":  len(data),
		})
		return []domain.FeedItem{}
	}

	entries := doc.Entries()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	items := make([]domain.FeedItem, 0, len(entries))
	strategies := make(map[string]int)
	for _, e := range entries {
		image := ""
		if p.resolver != nil {
			result := p.resolver.Resolve(ctx, e.Link, e.Hints)
			if result.Found() {
				image = result.URL
				strategies[result.Strategy]++
			}
		}
		items = append(items, domain.NewFeedItem(e.Title, e.Link, e.SourceTitle, image))
	}

	p.logDebug("Parsed feed", map[string]interface{}{
		"source":  source,
		"dialect": doc.Dialect.String(),
		"items":   len(items),
		"images":  strategies,
	})
	return items
}

func (p *Parser) logDebug(msg string, fields map[string]interface{}) {
	if p.deps.Logger != nil {
		p.deps.Logger.Debug(msg, fields)
	}
}
