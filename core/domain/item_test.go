package domain

import "testing"

func TestNewFeedItem_Placeholders(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		source   string
		expTitle string
		expSrc   string
	}{
		{
			name:     "keeps provided values",
			title:    "Test Article",
			source:   "Frame.io Insider",
			expTitle: "Test Article",
			expSrc:   "Frame.io Insider",
		},
		{
			name:     "empty title becomes placeholder",
			title:    "",
			source:   "Feed",
			expTitle: UntitledPlaceholder,
			expSrc:   "Feed",
		},
		{
			name:     "blank title becomes placeholder",
			title:    "   ",
			source:   "Feed",
			expTitle: UntitledPlaceholder,
			expSrc:   "Feed",
		},
		{
			name:     "empty source becomes placeholder",
			title:    "T",
			source:   "",
			expTitle: "T",
			expSrc:   SourcePlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewFeedItem(tt.title, "https://example.com/a", tt.source, "")
			if item.Title != tt.expTitle {
				t.Errorf("Title = %q, want %q", item.Title, tt.expTitle)
			}
			if item.Source != tt.expSrc {
				t.Errorf("Source = %q, want %q", item.Source, tt.expSrc)
			}
		})
	}
}

func TestFeedItem_HasLink(t *testing.T) {
	item := NewFeedItem("T", "  ", "S", "")
	if item.HasLink() {
		t.Error("HasLink() should be false for blank link")
	}

	item = NewFeedItem("T", "https://example.com/a", "S", "")
	if !item.HasLink() {
		t.Error("HasLink() should be true for non-empty link")
	}
}

func TestEnclosure_IsImageType(t *testing.T) {
	tests := []struct {
		mime     string
		expected bool
	}{
		{"image/jpeg", true},
		{"IMAGE/PNG", true},
		{" image/webp", true},
		{"audio/mpeg", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := (Enclosure{Type: tt.mime}).IsImageType(); got != tt.expected {
			t.Errorf("IsImageType(%q) = %v, want %v", tt.mime, got, tt.expected)
		}
	}
}

func TestImageHints_IsEmpty(t *testing.T) {
	if !(ImageHints{}).IsEmpty() {
		t.Error("zero hints should be empty")
	}
	if (ImageHints{Summary: "<p>x</p>"}).IsEmpty() {
		t.Error("hints with summary should not be empty")
	}
}
