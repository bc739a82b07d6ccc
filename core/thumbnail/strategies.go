// ABOUTME: Pure image strategies evaluated in fixed priority order over an entry's hints
// ABOUTME: Each strategy returns a resolved candidate or an error explaining why it had none

package thumbnail

import (
	"fmt"

	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
	coreerrors "github.com/AllrounderTechBrief/TheStreamic/core/errors"
	"github.com/AllrounderTechBrief/TheStreamic/pkg/utils/html"
	"github.com/AllrounderTechBrief/TheStreamic/pkg/utils/urls"
)

// Strategy names as they appear in Result and logs
const (
	StrategyMediaThumbnail = "media_thumbnail"
	StrategyMediaContent   = "media_content"
	StrategyEnclosure      = "enclosure"
	StrategyContentImage   = "content_image"
	StrategyPage           = "page"
)

// strategy is one step of the fallback chain
type strategy struct {
	name string
	find func(link string, hints domain.ImageHints) (string, error)
}

// hintStrategies are the offline steps, highest priority first
var hintStrategies = []strategy{
	{name: StrategyMediaThumbnail, find: fromMediaThumbnails},
	{name: StrategyMediaContent, find: fromMediaContents},
	{name: StrategyEnclosure, find: fromEnclosures},
	{name: StrategyContentImage, find: fromContentImages},
}

func fromMediaThumbnails(link string, hints domain.ImageHints) (string, error) {
	return firstImageURL(link, hints.Base, hints.Thumbnails)
}

func fromMediaContents(link string, hints domain.ImageHints) (string, error) {
	return firstImageURL(link, hints.Base, hints.MediaContents)
}

// fromEnclosures accepts an enclosure declared as image/* or one whose URL has an image extension
func fromEnclosures(link string, hints domain.ImageHints) (string, error) {
	seen := 0
	for _, enc := range hints.Enclosures {
		if enc.URL == "" {
			continue
		}
		seen++
		resolved := urls.Absolute(enc.URL, link, hints.Base)
		if resolved == "" {
			continue
		}
		if enc.IsImageType() || urls.LooksLikeImage(resolved) {
			return resolved, nil
		}
	}
	return "", rejection(seen)
}

// fromContentImages checks the first <img> of the rich content, then of the summary
func fromContentImages(link string, hints domain.ImageHints) (string, error) {
	var candidates []string
	for _, block := range []string{hints.Content, hints.Summary} {
		if src := html.FirstImageSrc(block); src != "" {
			candidates = append(candidates, src)
		}
	}
	return firstImageURL(link, hints.Base, candidates)
}

// firstImageURL makes each candidate absolute against link, then base, and
// returns the first that looks like an image
func firstImageURL(link, base string, candidates []string) (string, error) {
	seen := 0
	for _, c := range candidates {
		if c == "" {
			continue
		}
		seen++
		if resolved := urls.Absolute(c, link, base); urls.LooksLikeImage(resolved) {
			return resolved, nil
		}
	}
	return "", rejection(seen)
}

func rejection(seen int) error {
	if seen == 0 {
		return coreerrors.ErrNoCandidate
	}
	return fmt.Errorf("%d candidate(s) rejected: not an absolute image URL", seen)
}
