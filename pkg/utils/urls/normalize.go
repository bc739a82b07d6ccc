// ABOUTME: URL helpers for preferring secure transport and spotting image resources
// ABOUTME: Used by the thumbnail resolver to validate and canonicalize candidate URLs

package urls

import (
	"net/url"
	"path"
	"strings"
)

// imageExtensions lists the path suffixes accepted as image resources
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".avif": true,
}

// PreferSecure rewrites an http URL to https. Other schemes, malformed
// URLs and empty input are returned unchanged.
func PreferSecure(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || !strings.EqualFold(u.Scheme, "http") {
		return raw
	}

	// Only the scheme prefix changes so the rest of the URL is kept byte for byte
	return "https" + raw[len(u.Scheme):]
}

// LooksLikeImage reports whether the URL path ends with a known image extension.
// Query string and fragment are ignored.
func LooksLikeImage(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	p := raw
	if u, err := url.Parse(raw); err == nil {
		p = u.Path
	} else if i := strings.IndexAny(raw, "?#"); i >= 0 {
		p = raw[:i]
	}

	return imageExtensions[strings.ToLower(path.Ext(p))]
}

// Absolute returns ref as an absolute http or https URL. A relative ref is
// resolved against the first base that is itself an absolute web URL, and a
// protocol-relative ref with no usable base gets https. Anything that cannot
// be made absolute, or has another scheme, yields an empty string.
func Absolute(ref string, bases ...string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if refURL.IsAbs() {
		if !isWeb(refURL) {
			return ""
		}
		return ref
	}

	for _, base := range bases {
		baseURL, err := url.Parse(strings.TrimSpace(base))
		if err != nil || !isWeb(baseURL) {
			continue
		}
		if resolved := baseURL.ResolveReference(refURL); isWeb(resolved) {
			return resolved.String()
		}
	}

	if refURL.Host != "" {
		return "https:" + ref
	}
	return ""
}

func isWeb(u *url.URL) bool {
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// Host returns the lower-cased host of the URL or an empty string
func Host(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
