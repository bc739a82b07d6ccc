// ABOUTME: Page scraper reads og:image and twitter:image declarations with colly
// ABOUTME: Serves as the last-resort thumbnail source when a feed entry has no image hints

package scraper

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gocolly/colly"

	coreerrors "github.com/AllrounderTechBrief/TheStreamic/core/errors"
)

// metaImageKeys are checked in priority order
var metaImageKeys = []string{"og:image", "twitter:image", "twitter:image:src"}

// defaultMaxBodySize bounds how much of an article page is read
const defaultMaxBodySize = 5 * 1024 * 1024

// PageScraper implements interfaces.PageImageFetcher with a colly collector per page
type PageScraper struct {
	userAgent   string
	timeout     time.Duration
	maxBodySize int
	transport   http.RoundTripper
	limiter     HostLimiter
}

// HostLimiter spaces requests to the same host
type HostLimiter interface {
	Wait(ctx context.Context, rawURL string) error
}

// NewPageScraper creates a scraper. A non-positive maxBodySize uses 5MB.
func NewPageScraper(timeout time.Duration, userAgent string, maxBodySize int) *PageScraper {
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}
	return &PageScraper{
		userAgent:   userAgent,
		timeout:     timeout,
		maxBodySize: maxBodySize,
		transport:   http.DefaultTransport,
	}
}

// SetLimiter makes every page visit wait on limiter first
func (s *PageScraper) SetLimiter(limiter HostLimiter) {
	s.limiter = limiter
}

// FetchPageImage visits pageURL and returns the highest-priority meta image,
// resolved against the page. Non-2xx responses are returned as *errors.FetchError.
func (s *PageScraper) FetchPageImage(ctx context.Context, pageURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx, pageURL); err != nil {
			return "", err
		}
	}

	c := colly.NewCollector(
		colly.UserAgent(s.userAgent),
		colly.MaxBodySize(s.maxBodySize),
		colly.AllowURLRevisit(),
		// colly otherwise fails every status from 203 up, including the rest of 2xx
		colly.ParseHTTPErrorResponse(),
	)
	c.SetRequestTimeout(s.timeout)
	c.WithTransport(&contextTransport{ctx: ctx, base: s.transport})

	declared := make(map[string]string)
	c.OnHTML("meta[content]", func(e *colly.HTMLElement) {
		key := strings.ToLower(strings.TrimSpace(e.Attr("property")))
		if key == "" {
			key = strings.ToLower(strings.TrimSpace(e.Attr("name")))
		}
		if key == "" {
			return
		}
		if _, seen := declared[key]; seen {
			return
		}
		if content := strings.TrimSpace(e.Attr("content")); content != "" {
			declared[key] = e.Request.AbsoluteURL(content)
		}
	})

	status := 0
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	if err := c.Visit(pageURL); err != nil {
		return "", &coreerrors.FetchError{URL: pageURL, StatusCode: status, Err: err}
	}
	if status < 200 || status > 299 {
		return "", &coreerrors.FetchError{URL: pageURL, StatusCode: status}
	}

	for _, key := range metaImageKeys {
		if v := declared[key]; v != "" {
			return v, nil
		}
	}
	return "", nil
}

// contextTransport binds every colly request to the caller's context
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t *contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}
