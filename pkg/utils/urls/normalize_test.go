package urls

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferSecure(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"http rewritten", "http://example.com/a.png", "https://example.com/a.png"},
		{"keeps query and fragment", "http://example.com/p/a.jpg?w=600&h=400#top", "https://example.com/p/a.jpg?w=600&h=400#top"},
		{"upper-case scheme", "HTTP://example.com/a.png", "https://example.com/a.png"},
		{"https unchanged", "https://example.com/a.png", "https://example.com/a.png"},
		{"protocol relative unchanged", "//cdn.example.com/a.png", "//cdn.example.com/a.png"},
		{"other scheme unchanged", "ftp://example.com/a.png", "ftp://example.com/a.png"},
		{"malformed unchanged", "http://[::1", "http://[::1"},
		{"relative unchanged", "/images/a.png", "/images/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PreferSecure(tt.input))
		})
	}
}

func TestPreferSecure_PreservesComponents(t *testing.T) {
	inputs := []string{
		"http://example.com",
		"http://user@example.com:8080/a/b.png?x=1#frag",
		"http://例え.jp/画像.png",
		"http://example.com/path%20with%20spaces/?q=a+b",
	}

	for _, in := range inputs {
		before, err := url.Parse(in)
		require.NoError(t, err)
		after, err := url.Parse(PreferSecure(in))
		require.NoError(t, err)

		assert.Equal(t, "https", after.Scheme, in)
		assert.Equal(t, before.Host, after.Host, in)
		assert.Equal(t, before.Path, after.Path, in)
		assert.Equal(t, before.RawQuery, after.RawQuery, in)
		assert.Equal(t, before.Fragment, after.Fragment, in)
		assert.Equal(t, before.User.String(), after.User.String(), in)
	}
}

func TestLooksLikeImage(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"https://example.com/a.jpg", true},
		{"https://example.com/a.JPEG", true},
		{"https://example.com/a.png?width=300", true},
		{"https://example.com/a.GIF#x", true},
		{"https://example.com/a.webp", true},
		{"https://example.com/a.avif?x=1&y=2", true},
		{"/relative/a.jpg", true},
		{"https://example.com/article", false},
		{"https://example.com/a.svg", false},
		{"https://example.com/image?format=jpg", false},
		{"https://example.com/a.jpg/", false},
		{"https://example.com/photo.png.html", false},
		{"http://[::1/a.png?x", true},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, LooksLikeImage(tt.input))
		})
	}
}

func TestAbsolute(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		bases    []string
		expected string
	}{
		{"empty ref", "", []string{"https://example.com/a"}, ""},
		{"absolute ref", "https://cdn.example.com/x.png", []string{"https://example.com/a"}, "https://cdn.example.com/x.png"},
		{"absolute ref without base", "http://cdn.example.com/x.png", nil, "http://cdn.example.com/x.png"},
		{"root relative", "/img/x.png", []string{"https://example.com/news/a"}, "https://example.com/img/x.png"},
		{"path relative", "img/x.png", []string{"https://example.com/news/a"}, "https://example.com/news/img/x.png"},
		{"protocol relative with base", "//cdn.example.com/x.png", []string{"http://example.com/a"}, "http://cdn.example.com/x.png"},
		{"protocol relative without base", "//cdn.example.com/x.png", nil, "https://cdn.example.com/x.png"},
		{"root relative without base", "/img/x.png", nil, ""},
		{"path relative with empty base", "img/x.png", []string{""}, ""},
		{"relative base skipped", "img/x.png", []string{"/news/a"}, ""},
		{"falls back to second base", "/img/x.png", []string{"", "https://site.example/"}, "https://site.example/img/x.png"},
		{"first usable base wins", "x.png", []string{"https://a.example/p/", "https://b.example/"}, "https://a.example/p/x.png"},
		{"non-web scheme", "data:image/png;base64,AAAA", []string{"https://example.com/"}, ""},
		{"ftp scheme", "ftp://example.com/x.png", nil, ""},
		{"surrounding whitespace", "  https://example.com/x.png ", nil, "https://example.com/x.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Absolute(tt.ref, tt.bases...))
		})
	}
}

func TestHost(t *testing.T) {
	assert.Equal(t, "blog.frame.io", Host("https://Blog.Frame.io/feed/"))
	assert.Equal(t, "openrss.org", Host("https://openrss.org:443/www.maxon.net"))
	assert.Equal(t, "", Host("::bad"))
}
