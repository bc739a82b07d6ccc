// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, page scraping, output files and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-run cache backed by patrickmn/go-cache
// - http/standard: net/http client with timeout and User-Agent
// - scraper: colly collector reading og:image and twitter:image
// - ratelimit: per-host politeness delay with x/time/rate
// - storage: JSON file writer, one file per category
// - logger: logrus logger with optional lumberjack rotation
//
// # Cache
//
//	cache := memory.NewMemoryCache(time.Minute)
//	err := cache.Set(ctx, "page-image:https://example.com/a", []byte(url), 0)
//	value, err := cache.Get(ctx, "page-image:https://example.com/a")
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(20*time.Second, "")
//	resp, err := client.Get(ctx, "https://example.com/feed.xml")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	log, err := logger.New(logger.Options{Level: "debug", Format: "json"})
//	log.Info("Wrote category", map[string]interface{}{
//	    "path":  "data/out-editing.json",
//	    "items": 42,
//	})
package infrastructure
