// ABOUTME: HTML utilities for turning feed markup into plain display text
// ABOUTME: Tolerates malformed fragments and never fails, returning best-effort text

package html

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// hiddenElements hold text that is never shown to a reader
var hiddenElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// voidElements never take a closing tag, so one start tag is enough to count as markup
var voidElements = map[string]bool{
	"br":  true,
	"hr":  true,
	"img": true,
	"wbr": true,
}

// CleanText extracts the visible text of a fragment whose entities the feed
// parser has already decoded. Tags are stripped only when the fragment holds a
// real element; otherwise angle brackets are literal text. Text nodes are
// joined by single spaces, entities are left as they are and every whitespace
// run, newlines included, collapses to one space.
func CleanText(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	if !hasElement(markup) {
		return collapseWhitespace(markup)
	}

	z := xhtml.NewTokenizer(strings.NewReader(markup))
	var parts []string
	hidden := 0

	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			// io.EOF or a tokenizer error; either way keep what was read
			return collapseWhitespace(strings.Join(parts, " "))
		case xhtml.StartTagToken:
			name, _ := z.TagName()
			if hiddenElements[string(name)] {
				hidden++
			}
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			if hiddenElements[string(name)] && hidden > 0 {
				hidden--
			}
		case xhtml.TextToken:
			if hidden == 0 {
				// Raw keeps entities as written; Text would decode them a second time
				parts = append(parts, string(z.Raw()))
			}
		}
	}
}

// hasElement reports whether s holds a closed element, a self-closing tag or a void element
func hasElement(s string) bool {
	z := xhtml.NewTokenizer(strings.NewReader(s))
	open := make(map[string]bool)

	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return false
		case xhtml.SelfClosingTagToken:
			return true
		case xhtml.StartTagToken:
			name, _ := z.TagName()
			if voidElements[string(name)] {
				return true
			}
			open[string(name)] = true
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			if open[string(name)] {
				return true
			}
		}
	}
}

// collapseWhitespace replaces every whitespace run with one space and trims
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
