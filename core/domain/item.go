// ABOUTME: FeedItem domain model is the normalized unit written to category JSON files
// ABOUTME: Carries the image hints gathered from a feed entry for thumbnail resolution

package domain

import "strings"

const (
	// UntitledPlaceholder is used when an entry has no usable title
	UntitledPlaceholder = "Untitled"

	// SourcePlaceholder is used when a feed does not declare a title
	SourcePlaceholder = "Source"
)

// FeedItem represents one normalized entry consumed by the front-end.
// All fields are always serialized; missing data is an empty string.
type FeedItem struct {
	// Title is plain display text, never empty
	Title string `json:"title"`

	// Link is the absolute article URL and the deduplication key
	Link string `json:"link"`

	// Source is the display label of the originating publication
	Source string `json:"source"`

	// Image is the absolute image URL or empty
	Image string `json:"image"`
}

// NewFeedItem creates a FeedItem, applying the title and source placeholders
func NewFeedItem(title, link, source, image string) FeedItem {
	title = strings.TrimSpace(title)
	if title == "" {
		title = UntitledPlaceholder
	}
	source = strings.TrimSpace(source)
	if source == "" {
		source = SourcePlaceholder
	}
	return FeedItem{
		Title:  title,
		Link:   strings.TrimSpace(link),
		Source: source,
		Image:  image,
	}
}

// HasLink reports whether the item can take part in deduplication
func (fi *FeedItem) HasLink() bool {
	return fi.Link != ""
}

// Enclosure represents media attachment information
type Enclosure struct {
	URL  string // Media file URL
	Type string // MIME type
}

// IsImageType reports whether the declared MIME type is an image type
func (e Enclosure) IsImageType() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(e.Type)), "image/")
}

// ImageHints holds everything a feed entry declares that may point at an image
type ImageHints struct {
	Thumbnails    []string    // media:thumbnail URLs
	MediaContents []string    // media:content URLs, including media:group children
	Enclosures    []Enclosure // RSS enclosures and Atom rel="enclosure" links
	Content       string      // Rich HTML content (content:encoded, atom:content)
	Summary       string      // Description or summary HTML

	// Base is the feed's own site link, used for relative URLs when the entry link cannot anchor them
	Base string
}

// IsEmpty reports whether no image source is present. Base alone is not a source.
func (h ImageHints) IsEmpty() bool {
	return len(h.Thumbnails) == 0 &&
		len(h.MediaContents) == 0 &&
		len(h.Enclosures) == 0 &&
		h.Content == "" &&
		h.Summary == ""
}
