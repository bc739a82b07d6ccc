// ABOUTME: Main entry point for the Streamic feed builder
// ABOUTME: Wires configuration, adapters and the pipeline, then writes one JSON file per category

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/AllrounderTechBrief/TheStreamic/core/feed"
	"github.com/AllrounderTechBrief/TheStreamic/core/interfaces"
	"github.com/AllrounderTechBrief/TheStreamic/core/pipeline"
	"github.com/AllrounderTechBrief/TheStreamic/core/thumbnail"
	"github.com/AllrounderTechBrief/TheStreamic/infrastructure/cache/memory"
	stdhttp "github.com/AllrounderTechBrief/TheStreamic/infrastructure/http/standard"
	"github.com/AllrounderTechBrief/TheStreamic/infrastructure/logger"
	"github.com/AllrounderTechBrief/TheStreamic/infrastructure/ratelimit"
	"github.com/AllrounderTechBrief/TheStreamic/infrastructure/scraper"
	"github.com/AllrounderTechBrief/TheStreamic/infrastructure/storage"
	"github.com/AllrounderTechBrief/TheStreamic/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one build and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("streamic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", ".env", "path to a .env file")
	sourcesFile := fs.String("config", "", "YAML catalog file (default: built-in catalog)")
	outDir := fs.String("out", "", "output directory")
	pageFallback := fs.Bool("page-fallback", false, "fetch article pages for og:image when a feed has no image")
	categories := fs.String("category", "", "comma-separated categories to build (default: all)")
	workers := fs.Int("workers", 0, "concurrent sources per category")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := config.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintf(stderr, "Failed to load environment: %v\n", err)
		return 1
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			cfg.SourcesFile = *sourcesFile
		case "out":
			cfg.Build.OutputDir = *outDir
		case "page-fallback":
			cfg.Build.PageFallback = *pageFallback
		case "workers":
			cfg.Build.Workers = *workers
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	runID := uuid.NewString()
	log, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Fields: map[string]interface{}{"run_id": runID},
	})
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}
	defer log.Close()

	catalog, err := config.LoadCatalog(cfg.SourcesFile)
	if err != nil {
		log.Error("Failed to load catalog", map[string]interface{}{"error": err.Error()})
		fmt.Fprintf(stderr, "Invalid catalog: %v\n", err)
		return 1
	}
	if *categories != "" {
		catalog, err = catalog.Select(strings.Split(*categories, ","))
		if err != nil {
			fmt.Fprintf(stderr, "Invalid category selection: %v\n", err)
			return 1
		}
	}

	userAgent := cfg.HTTP.UserAgent
	if userAgent == "" {
		userAgent = stdhttp.DefaultUserAgent
	}

	limiter := ratelimit.NewHostLimiter(cfg.HTTP.PolitenessDelay)
	pageCache := memory.NewMemoryCache(time.Minute)
	deps := interfaces.Dependencies{
		Cache:      pageCache,
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.HTTP.Timeout, userAgent),
		Logger:     log.With(map[string]interface{}{"component": "pipeline"}),
	}

	var pages interfaces.PageImageFetcher
	if cfg.Build.PageFallback {
		pageScraper := scraper.NewPageScraper(cfg.HTTP.PageTimeout, userAgent, int(cfg.HTTP.MaxBodyBytes))
		pageScraper.SetLimiter(limiter)
		pages = pageScraper
	}

	resolver := thumbnail.NewResolver(deps, pages, thumbnail.Options{PageFallback: cfg.Build.PageFallback})
	parser := feed.NewParser(deps, resolver)
	writer := storage.NewFileWriter(cfg.Build.OutputDir)
	orchestrator := pipeline.NewOrchestrator(deps, parser, writer, limiter, pipeline.Options{
		Workers:        cfg.Build.Workers,
		PerSourceLimit: cfg.EntryLimit(),
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
	})

	log.Info("Starting build", map[string]interface{}{
		"categories":    len(catalog.Categories),
		"output_dir":    writer.Dir(),
		"workers":       cfg.Build.Workers,
		"page_fallback": cfg.Build.PageFallback,
	})

	started := time.Now()
	report, err := orchestrator.Run(ctx, catalog)
	report.RunID = runID

	for _, c := range report.Categories {
		if c.Err == nil {
			fmt.Fprintf(stdout, "Wrote %s (%d items)\n", c.Path, len(c.Items))
		}
	}

	log.Info("Build finished", map[string]interface{}{
		"items":        report.ItemsWritten(),
		"hosts":        limiter.Hosts(),
		"cached_pages": pageCache.Len(),
		"duration":     time.Since(started).String(),
	})

	if err != nil {
		log.Error("Build failed", map[string]interface{}{"error": err.Error()})
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}
