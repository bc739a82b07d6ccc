// ABOUTME: Extraction of the first <img> source from feed content blocks
// ABOUTME: Uses a tolerant literal scan first and falls back to goquery parsing

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

// FirstImageSrc returns the src of the first <img> in markup, or an empty string.
// Entity-escaped markup is unescaped before scanning.
func FirstImageSrc(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}

	text := xhtml.UnescapeString(markup)
	if src := scanImageSrc(text); src != "" {
		return src
	}
	return queryImageSrc(text)
}

// scanImageSrc looks for a literal <img tag and a quoted src attribute inside it
func scanImageSrc(text string) string {
	lower := asciiLower(text)

	start := -1
	for from := 0; from < len(lower); {
		i := strings.Index(lower[from:], "<img")
		if i < 0 {
			return ""
		}
		i += from
		if next := i + len("<img"); next < len(lower) && isSpace(lower[next]) {
			start = next
			break
		}
		from = i + len("<img")
	}
	if start < 0 {
		return ""
	}

	end := strings.IndexByte(lower[start:], '>')
	if end < 0 {
		end = len(lower)
	} else {
		end += start
	}
	tag := lower[start:end]

	for from := 0; from < len(tag); {
		j := strings.Index(tag[from:], "src=")
		if j < 0 {
			return ""
		}
		j += from
		from = j + len("src=")

		// data-src and srcset-like names do not count
		if j > 0 && !isSpace(tag[j-1]) {
			continue
		}
		valueAt := start + j + len("src=")
		if valueAt >= len(text) {
			return ""
		}
		quote := text[valueAt]
		if quote != '"' && quote != '\'' {
			return ""
		}
		closing := strings.IndexByte(text[valueAt+1:], quote)
		if closing < 0 {
			return ""
		}
		return strings.TrimSpace(text[valueAt+1 : valueAt+1+closing])
	}
	return ""
}

// queryImageSrc parses the markup and returns the first img src or data-src
func queryImageSrc(text string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return ""
	}

	var src string
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, attr := range []string{"src", "data-src"} {
			if v := strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
				src = v
				return false
			}
		}
		return true
	})
	return src
}

// asciiLower lower-cases ASCII letters only so byte offsets stay aligned with the input
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
