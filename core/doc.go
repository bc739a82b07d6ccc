// Package core contains the business logic of the Streamic feed builder.
// It has no knowledge of files, flags or concrete HTTP clients; those are
// injected through the interfaces package.
//
// The core package is organized into several sub-packages:
//
// - domain: FeedItem, ImageHints and the category Catalog
// - feed: RSS/Atom decoding and entry extraction
// - thumbnail: the ordered image strategies and the page fallback
// - pipeline: the per-category fetch, merge, dedupe, truncate and write run
// - errors: typed errors for fetch, parse, image and write failures
// - interfaces: contracts for external dependencies (cache, HTTP, logger, output)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	resolver := thumbnail.NewResolver(deps, nil, thumbnail.Options{})
//	parser := feed.NewParser(deps, resolver)
//	orchestrator := pipeline.NewOrchestrator(deps, parser, writer, nil, pipeline.Options{Workers: 4})
//
//	report, err := orchestrator.Run(ctx, catalog)
package core
