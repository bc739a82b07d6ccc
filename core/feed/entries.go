// ABOUTME: Per-dialect extraction of normalized entries and their image hints
// ABOUTME: Each dialect is a pure function over its own document variant

package feed

import (
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	ext "github.com/mmcdole/gofeed/extensions"

	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
	"github.com/AllrounderTechBrief/TheStreamic/pkg/utils/html"
)

// Entry is one feed entry before image resolution
type Entry struct {
	Title       string
	Link        string
	SourceTitle string
	Hints       domain.ImageHints
}

// Entries extracts the document's entries in feed order
func (d Document) Entries() []Entry {
	switch d.Dialect {
	case DialectRSS:
		if d.RSS != nil {
			return rssEntries(d.RSS)
		}
	case DialectAtom:
		if d.Atom != nil {
			return atomEntries(d.Atom)
		}
	}
	return nil
}

func rssEntries(f *gofeed.Feed) []Entry {
	source := textOr(f.Title, domain.SourcePlaceholder)
	base := strings.TrimSpace(f.Link)

	entries := make([]Entry, 0, len(f.Items))
	for _, item := range f.Items {
		if item == nil {
			continue
		}

		hints := mediaHints(item.Extensions)
		if item.ITunesExt != nil && item.ITunesExt.Image != "" {
			hints.Thumbnails = append(hints.Thumbnails, strings.TrimSpace(item.ITunesExt.Image))
		}
		for _, enc := range item.Enclosures {
			if enc != nil {
				hints.Enclosures = append(hints.Enclosures, domain.Enclosure{URL: strings.TrimSpace(enc.URL), Type: enc.Type})
			}
		}
		hints.Content = item.Content
		if hints.Content == "" {
			hints.Content = extensionValue(item.Extensions, "content", "encoded")
		}
		hints.Summary = item.Description
		hints.Base = base

		entries = append(entries, Entry{
			Title:       textOr(item.Title, domain.UntitledPlaceholder),
			Link:        strings.TrimSpace(item.Link),
			SourceTitle: source,
			Hints:       hints,
		})
	}
	return entries
}

func atomEntries(f *atom.Feed) []Entry {
	source := textOr(f.Title, domain.SourcePlaceholder)
	base := alternateLink(f.Links)

	entries := make([]Entry, 0, len(f.Entries))
	for _, entry := range f.Entries {
		if entry == nil {
			continue
		}

		hints := mediaHints(entry.Extensions)
		for _, l := range entry.Links {
			if l != nil && strings.EqualFold(strings.TrimSpace(l.Rel), "enclosure") {
				hints.Enclosures = append(hints.Enclosures, domain.Enclosure{URL: strings.TrimSpace(l.Href), Type: l.Type})
			}
		}
		if entry.Content != nil {
			hints.Content = entry.Content.Value
		}
		hints.Summary = entry.Summary
		hints.Base = base

		entries = append(entries, Entry{
			Title:       textOr(entry.Title, domain.UntitledPlaceholder),
			Link:        alternateLink(entry.Links),
			SourceTitle: source,
			Hints:       hints,
		})
	}
	return entries
}

// alternateLink returns the last link whose rel is empty or "alternate"
func alternateLink(links []*atom.Link) string {
	link := ""
	for _, l := range links {
		if l == nil {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(l.Rel)) {
		case "", "alternate":
			if href := strings.TrimSpace(l.Href); href != "" {
				link = href
			}
		}
	}
	return link
}

// mediaHints collects Media RSS thumbnail and content URLs, including those in media:group
func mediaHints(extensions ext.Extensions) domain.ImageHints {
	var hints domain.ImageHints
	media, ok := extensions["media"]
	if !ok {
		return hints
	}

	var collect func(elements map[string][]ext.Extension)
	collect = func(elements map[string][]ext.Extension) {
		for _, e := range elements["thumbnail"] {
			if u := strings.TrimSpace(e.Attrs["url"]); u != "" {
				hints.Thumbnails = append(hints.Thumbnails, u)
			}
		}
		for _, e := range elements["content"] {
			if u := strings.TrimSpace(e.Attrs["url"]); u != "" {
				hints.MediaContents = append(hints.MediaContents, u)
			}
			// media:content may carry its own media:thumbnail
			for _, t := range e.Children["thumbnail"] {
				if u := strings.TrimSpace(t.Attrs["url"]); u != "" {
					hints.Thumbnails = append(hints.Thumbnails, u)
				}
			}
		}
		for _, g := range elements["group"] {
			collect(g.Children)
		}
	}
	collect(media)
	return hints
}

func extensionValue(extensions ext.Extensions, prefix, name string) string {
	values := extensions[prefix][name]
	if len(values) == 0 {
		return ""
	}
	return values[0].Value
}

// textOr returns the cleaned text or the placeholder when nothing visible remains
func textOr(s, placeholder string) string {
	if cleaned := html.CleanText(s); cleaned != "" {
		return cleaned
	}
	return placeholder
}
