// ABOUTME: Pure list operations applied to a category after all sources are merged
// ABOUTME: Deduplicates by link and truncates while preserving order

package pipeline

import "github.com/AllrounderTechBrief/TheStreamic/core/domain"

// Dedupe keeps the first item for each link. Items without a link are always kept.
func Dedupe(items []domain.FeedItem) []domain.FeedItem {
	out := make([]domain.FeedItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.HasLink() {
			if _, dup := seen[item.Link]; dup {
				continue
			}
			seen[item.Link] = struct{}{}
		}
		out = append(out, item)
	}
	return out
}

// Truncate returns at most limit items from the front. A non-positive limit keeps everything.
func Truncate(items []domain.FeedItem, limit int) []domain.FeedItem {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}
