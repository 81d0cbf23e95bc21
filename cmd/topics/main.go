// Package main provides the topics command: list curated topics and optionally load their feeds.
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
	"foxfeed/internal/normalizer"
	"foxfeed/internal/topics"
)

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
	fs := flag.NewFlagSet("topics", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to YAML config (optional)")
	endpoint := fs.String("endpoint", "", "Topic listing endpoint (overrides config)")
	source := fs.String("source", "", "Feed source for -articles: proxy or direct (overrides config)")
	withArticles := fs.Bool("articles", false, "Load and print the articles of every topic")
	concurrency := fs.Int("concurrency", crawler.DefaultConcurrency, "Feeds loaded in parallel with -articles")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}

	if *endpoint != "" {
		cfg.Reader.Topics.Endpoint = *endpoint
	}

	if *source != "" {
		cfg.Reader.Source = *source
	}

	if *logLevel != "" {
		cfg.Reader.Logging.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewLoggerWithWriter(cfg.Reader.Logging.Level, stderr)
	scraper := crawler.NewScraperWithConfig(cfg.Reader.HTTP)

	list, err := topics.NewClient(cfg.Reader.Topics.Endpoint, scraper, log).List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Topics (%d)\n\n", len(list))
	fmt.Fprintln(stdout, formatter.FormatTopics(list))

	if !*withArticles || len(list) == 0 {
		return nil
	}

	src, err := crawler.NewSource(cfg, scraper)
	if err != nil {
		return err
	}

	client := crawler.NewClientWithDeps(src, normalizer.NewProcessor(), log)

	urls := make([]string, len(list))
	for i, t := range list {
		urls[i] = t.URL
	}

	opts := formatter.DefaultOptions()
	opts.Limit = cfg.Reader.Display.Limit
	opts.DescriptionWidth = cfg.Reader.Display.DescriptionWidth

	for i, result := range client.LoadAll(ctx, urls, *concurrency) {
		fmt.Fprintf(stdout, "\n%s (%s)\n\n", list[i].Title, result.Status)

		switch {
		case result.Failed():
			fmt.Fprintf(stdout, "Failed to load: %v\n", result.Err)
		case len(result.Articles) == 0:
			fmt.Fprintln(stdout, "No articles found.")
		default:
			fmt.Fprintln(stdout, formatter.FormatArticles(result.Articles, opts))
		}
	}

	return nil
}
