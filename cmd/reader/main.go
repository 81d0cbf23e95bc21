// Package main provides the demo reader command: load one feed and print its articles.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"foxfeed/internal/config"
	"foxfeed/internal/crawler"
	"foxfeed/internal/formatter"
	"foxfeed/internal/logger"
	"foxfeed/internal/models"
	"foxfeed/internal/normalizer"
	"foxfeed/internal/sample"
)

const loadFailedMessage = "Failed to load RSS feed. Please check the URL and try again."

var errNoArticles = errors.New("feed load failed and sample fallback is disabled")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// 1. Define Command-Line Flags
	// ---------------------------
	fs := flag.NewFlagSet("reader", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to YAML config (optional)")
	feed := fs.String("feed", "", "Feed URL, or the name of a feed from the config")
	source := fs.String("source", "", "Feed source: proxy or direct (overrides config)")
	useSample := fs.Bool("sample", true, "Show sample articles when the feed cannot be loaded")
	limit := fs.Int("limit", -1, "Maximum articles to print (overrides config, 0 = all)")
	links := fs.Bool("links", false, "Include article links in the table")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}

	if *source != "" {
		cfg.Reader.Source = *source
	}

	if *limit >= 0 {
		cfg.Reader.Display.Limit = *limit
	}

	if *logLevel != "" {
		cfg.Reader.Logging.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewLoggerWithWriter(cfg.Reader.Logging.Level, stderr)

	opts := formatter.DefaultOptions()
	opts.Limit = cfg.Reader.Display.Limit
	opts.DescriptionWidth = cfg.Reader.Display.DescriptionWidth
	opts.ShowLinks = *links

	// 2. Resolve the feed
	// -------------------
	feedURL := resolveFeed(cfg, *feed)
	if feedURL == "" {
		log.Info("No feed given, showing sample articles")
		printArticles(stdout, "Sample articles", sample.Articles(), opts)

		return nil
	}

	// 3. Load and normalize
	// ---------------------
	scraper := crawler.NewScraperWithConfig(cfg.Reader.HTTP)

	src, err := crawler.NewSource(cfg, scraper)
	if err != nil {
		return err
	}

	client := crawler.NewClientWithDeps(src, normalizer.NewProcessor(), log)

	log.Info("Loading feed", "feed", feedURL, "source", src.Name())

	result := client.Load(ctx, feedURL)
	if result.Failed() {
		log.Error("Feed load failed", "feed", feedURL, "error", result.Err)
		fmt.Fprintln(stderr, loadFailedMessage)

		if !*useSample {
			return errNoArticles
		}

		printArticles(stdout, "Sample articles", sample.Articles(), opts)

		return nil
	}

	printArticles(stdout, feedURL, result.Articles, opts)

	return nil
}

// resolveFeed maps -feed to a URL. Without -feed the first enabled config feed is used.
func resolveFeed(cfg *config.Config, feed string) string {
	if feed != "" {
		if named, ok := cfg.FindFeed(feed); ok {
			return named.URL
		}

		return feed
	}

	if enabled := cfg.GetEnabledFeeds(); len(enabled) > 0 {
		return enabled[0].URL
	}

	return ""
}

func printArticles(w io.Writer, title string, articles []models.Article, opts formatter.Options) {
	fmt.Fprintf(w, "%s (%d articles)\n\n", title, len(articles))

	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")

		return
	}

	fmt.Fprintln(w, formatter.FormatArticles(articles, opts))
}
