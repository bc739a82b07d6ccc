package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", " \n\t ", ""},
		{"plain text", "Cinema 4D 2025 released", "Cinema 4D 2025 released"},
		{"simple tags", "<p>Hello <b>World</b></p>", "Hello World"},
		{"bare ampersand kept", "Tom & Jerry", "Tom & Jerry"},
		{"escaped tag name kept", "<video> tag", "<video> tag"},
		{"entity text not decoded again", "AT&amp;T", "AT&amp;T"},
		{"markup stripped without second decode", "<b>Bold</b> &amp; co", "Bold &amp; co"},
		{"self-closing tag", "Hello<br/>World", "Hello World"},
		{"void element", "<img src=\"a.png\">Caption", "Caption"},
		{"newlines collapsed", "Line one\r\nLine two\n\nLine three", "Line one Line two Line three"},
		{"script and style dropped", "<style>p{}</style><p>Shown</p><script>alert(1)</script>", "Shown"},
		{"unclosed tags are text", "<p>unclosed <b>bold", "<p>unclosed <b>bold"},
		{"non-ascii kept", "<em>Überblick</em> — 日本語", "Überblick — 日本語"},
		{"less-than in text", "a < b and c > d", "a < b and c > d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanText_MalformedNeverFails(t *testing.T) {
	inputs := []string{
		"<p>unclosed <b>bold",
		"</div></div>stray closers",
		"<<<>>>",
		"<img src=\"x",
		"<a href='x'>link</a\n>\r\n",
		"<script>never closed",
		"\x00\xff\xfe broken bytes",
		strings.Repeat("<div>", 500) + "deep" + strings.Repeat("\n", 10),
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			out := CleanText(in)
			assert.NotContains(t, out, "\n")
			assert.NotContains(t, out, "\r")
			assert.Equal(t, strings.TrimSpace(out), out)
		})
	}
}
